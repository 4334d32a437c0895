package dto

// UpdateProfileRequest represents the request body for updating the
// authenticated user's profile. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Currency   *string `json:"currency"`
	DateFormat *string `json:"date_format"`
	Language   *string `json:"language"`
	Theme      *string `json:"theme"`
	AvatarURL  *string `json:"avatar_url"`
}
