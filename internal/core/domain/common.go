package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timestamps holds creation and modification times shared by persisted entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerProfile is the public projection of a user embedded in other resources.
type OwnerProfile struct {
	UserID   string `json:"_id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// Cursor is the keyset position of the last item on a page.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// PageRequest describes a cursor-paginated read.
type PageRequest struct {
	After     *Cursor
	Limit     int
	Ascending bool
}

// Page is a slice of results plus the cursor that continues after it.
type Page[T any] struct {
	Items      []T
	NextCursor *Cursor
	HasMore    bool
}

// NewPage trims a result fetched with Limit+1 rows into a page and computes the next cursor.
func NewPage[T any](items []T, limit int, key func(T) Cursor) Page[T] {
	page := Page[T]{Items: items}
	if limit > 0 && len(items) > limit {
		page.Items = items[:limit]
		page.HasMore = true
	}
	if page.HasMore && len(page.Items) > 0 {
		next := key(page.Items[len(page.Items)-1])
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page
}

// AssetKind groups uploaded media so storage can file and type it.
type AssetKind string

const (
	AssetAvatar     AssetKind = "avatars"
	AssetCoverImage AssetKind = "cover-images"
	AssetThumbnail  AssetKind = "thumbnails"
	AssetVideo      AssetKind = "videos"
)

// UploadedAsset is a file that now lives in object storage.
// Duration is set only by stores that can measure media length.
type UploadedAsset struct {
	URL         string
	Key         string
	ContentType string
	Size        int64
	Duration    *decimal.Decimal
}
