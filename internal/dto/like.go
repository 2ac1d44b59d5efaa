package dto

// LikeToggleResponse reports the like state after a toggle.
type LikeToggleResponse struct {
	Liked bool `json:"liked"`
}
