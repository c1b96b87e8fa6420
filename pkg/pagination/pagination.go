package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows a public listing can request.
	MaxLimit = 100
)

// Bounds describes the default and ceiling for one listing.
type Bounds struct {
	Default int
	Max     int
}

// ArticleBounds applies to the public blog listing.
var ArticleBounds = Bounds{Default: DefaultLimit, Max: MaxLimit}

// AdminBounds applies to admin listings, which default to larger pages.
var AdminBounds = Bounds{Default: 100, Max: 500}

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Skip  int
	Limit int
}

// Normalize clamps the params into the given bounds.
func (p Params) Normalize(b Bounds) Params {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = b.Default
	}
	if b.Max > 0 && p.Limit > b.Max {
		p.Limit = b.Max
	}
	return p
}

// FromQuery reads skip and limit from the query string. Absent values stay zero
// so Normalize can apply defaults; malformed or negative values are rejected.
func FromQuery(query url.Values) (Params, error) {
	skip, err := parseNonNegative(query, "skip")
	if err != nil {
		return Params{}, err
	}
	limit, err := parseNonNegative(query, "limit")
	if err != nil {
		return Params{}, err
	}
	return Params{Skip: skip, Limit: limit}, nil
}

func parseNonNegative(query url.Values, key string) (int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be zero or greater", key)
	}
	return v, nil
}
