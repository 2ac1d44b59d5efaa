package domain

// Comment is a remark left on a video.
type Comment struct {
	CommentID  string
	VideoID    string
	OwnerID    string
	Content    string
	Owner      *OwnerProfile
	LikesCount int64
	Timestamps
}

// PageCursor returns the keyset position of the comment.
func (c Comment) PageCursor() Cursor { return Cursor{CreatedAt: c.CreatedAt, ID: c.CommentID} }
