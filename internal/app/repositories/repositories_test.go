package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestIgnoreNoRows(t *testing.T) {
	connErr := errors.New("connection reset by peer")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows is dropped", pgx.ErrNoRows, nil},
		{"wrapped no rows is dropped", fmt.Errorf("scan: %w", pgx.ErrNoRows), nil},
		{"other errors pass through", connErr, connErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ignoreNoRows(tt.in))
		})
	}
}
