package pagecursor

import (
	"encoding/base64"

	"gorm.io/gorm"
)

var _encoder = base64.RawURLEncoding

// Token is an opaque, URL-safe position inside an ordered dataset. Tokens are
// the payloads produced by OffsetTokenFetcher and KeysetFetcher, and are
// consumed by PageQuery to load the rows of a page.
type Token interface {
	String() string
	IsEmpty() bool
	Apply(*gorm.DB) *gorm.DB
	validate(orderings Orderings) error
}
