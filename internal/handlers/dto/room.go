package dto

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Topic       string `json:"topic" binding:"required,max=200"`
	Description string `json:"description"`
}

type UpdateRoomRequest struct {
	Name        string `json:"name" binding:"max=200"`
	Topic       string `json:"topic" binding:"max=200"`
	Description string `json:"description"`
}
