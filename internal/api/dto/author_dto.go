package dto

// CreateAuthorRequest: payload for author create
type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required,max=30"`
}
