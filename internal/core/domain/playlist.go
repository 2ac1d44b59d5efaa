package domain

// Playlist is an ordered, duplicate-free collection of videos owned by one user.
type Playlist struct {
	PlaylistID  string
	OwnerID     string
	Name        string
	Description string
	VideoIDs    []string
	Videos      []Video
	Owner       *OwnerProfile
	Timestamps
}

// Contains reports whether videoID is already in the playlist.
func (p Playlist) Contains(videoID string) bool {
	for _, id := range p.VideoIDs {
		if id == videoID {
			return true
		}
	}
	return false
}
