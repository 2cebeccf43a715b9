package dto

type PostMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

type UpdateMessageRequest struct {
	Body string `json:"body" binding:"required"`
}
