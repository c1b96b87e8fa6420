// Package visibility holds the pure rules deciding what the public catalog shows:
// promotion windows, first-publish timestamps, featured ordering and island search.
package visibility

import (
	"sort"
	"strings"
	"time"
)

// Window is the optional [Start, End] display interval of a promotion.
type Window struct {
	Active bool
	Start  *time.Time
	End    *time.Time
}

// Live reports whether the promotion is displayable at now. Bounds are inclusive
// and an absent bound leaves that side of the interval open.
func (w Window) Live(now time.Time) bool {
	if !w.Active {
		return false
	}
	if w.Start != nil && now.Before(*w.Start) {
		return false
	}
	if w.End != nil && now.After(*w.End) {
		return false
	}
	return true
}

// FirstPublishedAt returns the first-published timestamp after a write.
// current is the stored value (nil when never published), requested the
// client-supplied date. The stored value is never overwritten once set, and a
// draft never carries one.
func FirstPublishedAt(publishing bool, current, requested *time.Time, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	if !publishing {
		return nil
	}
	if requested != nil {
		return requested
	}
	ts := now
	return &ts
}

// Featured carries the fields that order a curated list.
type Featured struct {
	Order     *int
	CreatedAt time.Time
}

// SortFeatured orders items by ascending display order, unordered entries last,
// ties by creation time, and truncates to limit when limit > 0.
func SortFeatured[T any](items []T, key func(T) Featured, limit int) []T {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		switch {
		case a.Order != nil && b.Order == nil:
			return true
		case a.Order == nil && b.Order != nil:
			return false
		case a.Order != nil && b.Order != nil && *a.Order != *b.Order:
			return *a.Order < *b.Order
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// MatchesSearch reports whether term is a case-insensitive substring of the
// name, the region, or any tag. An empty term matches everything.
func MatchesSearch(term, name, region string, tags []string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(name), needle) || strings.Contains(strings.ToLower(region), needle) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
