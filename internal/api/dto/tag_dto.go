package dto

// CreateTagRequest: payload for tag create/update
type CreateTagRequest struct {
	Tag string `json:"tag" binding:"required,max=40"`
}
