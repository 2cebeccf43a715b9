package dto

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"max=200"`
	Bio  string `json:"bio"`
}
