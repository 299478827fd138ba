package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is an offset/limit window over an ordered listing
type Page struct {
	Skip  int
	Limit int
}

// Offset returns the window start as used by SQL builders
func (p Page) Offset() uint64 {
	return uint64(p.Skip)
}

// Size returns the window length as used by SQL builders
func (p Page) Size() uint64 {
	return uint64(p.Limit)
}

// NewPage normalises skip and limit: negative skip becomes 0, a non-positive limit
// becomes DefaultLimit and limits above MaxLimit are capped.
func NewPage(skip, limit int) Page {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Skip: skip, Limit: limit}
}

// ParsePaginationParams extracts the skip and limit query parameters (defaults 0/100).
// Values that are not integers fall back to their defaults.
func ParsePaginationParams(c *gin.Context) Page {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", strconv.Itoa(DefaultSkip)))
	if err != nil {
		skip = DefaultSkip
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		limit = DefaultLimit
	}

	return NewPage(skip, limit)
}
