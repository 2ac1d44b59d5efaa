package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Video mirrors a row of the videos table joined with its owner and category.
type Video struct {
	VideoID     string          `db:"video_id"`
	OwnerID     string          `db:"owner_id"`
	CategoryID  *string         `db:"category_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	VideoFile   string          `db:"video_file"`
	Thumbnail   string          `db:"thumbnail"`
	Duration    decimal.Decimal `db:"duration"`
	Views       int64           `db:"views"`
	IsPublished bool            `db:"is_published"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	OwnerUsername string         `db:"owner_username"`
	OwnerFullName string         `db:"owner_full_name"`
	OwnerAvatar   string         `db:"owner_avatar"`
	CategoryTitle sql.NullString `db:"category_title"`
}
