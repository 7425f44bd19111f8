package dto

// CreateRecommendationRequest: payload for sending a recommendation. The
// media_id key is uniform across the three recommendation resources.
type CreateRecommendationRequest struct {
	MediaID     int64  `json:"media_id" binding:"required"`
	RecipientID int64  `json:"recipient_id" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// NotifyResponse: badge-polling answer for GET .../notify
type NotifyResponse struct {
	New bool `json:"new"`
}
