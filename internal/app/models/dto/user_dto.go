package dto

// UpdateUserRequest represents profile update data. The password is not
// updatable through this endpoint.
type UpdateUserRequest struct {
	Name   string  `json:"name" binding:"required,min=2,max=100"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
}
