package visibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(v int) *int              { return &v }

func TestWindowLive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	cases := []struct {
		name string
		w    Window
		want bool
	}{
		{"inactive", Window{Active: false}, false},
		{"open ended", Window{Active: true}, true},
		{"started", Window{Active: true, Start: ptrTime(before)}, true},
		{"not yet started", Window{Active: true, Start: ptrTime(after)}, false},
		{"ended", Window{Active: true, End: ptrTime(before)}, false},
		{"inside", Window{Active: true, Start: ptrTime(before), End: ptrTime(after)}, true},
		{"start bound inclusive", Window{Active: true, Start: ptrTime(now)}, true},
		{"end bound inclusive", Window{Active: true, End: ptrTime(now)}, true},
		{"inactive inside window", Window{Active: false, Start: ptrTime(before), End: ptrTime(after)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.w.Live(now))
		})
	}
}

func TestFirstPublishedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	supplied := now.Add(-48 * time.Hour)
	first := now.Add(-24 * time.Hour)

	t.Run("publish without date stamps now", func(t *testing.T) {
		got := FirstPublishedAt(true, nil, nil, now)
		require.NotNil(t, got)
		assert.True(t, got.Equal(now))
	})
	t.Run("publish with date keeps supplied", func(t *testing.T) {
		got := FirstPublishedAt(true, nil, &supplied, now)
		require.NotNil(t, got)
		assert.True(t, got.Equal(supplied))
	})
	t.Run("already stamped never changes", func(t *testing.T) {
		got := FirstPublishedAt(true, &first, &supplied, now)
		assert.True(t, got.Equal(first))
		got = FirstPublishedAt(true, &first, nil, now.Add(time.Hour))
		assert.True(t, got.Equal(first))
	})
	t.Run("draft stays empty", func(t *testing.T) {
		assert.Nil(t, FirstPublishedAt(false, nil, nil, now))
		assert.Nil(t, FirstPublishedAt(false, nil, &supplied, now))
	})
}

type featuredItem struct {
	name  string
	order *int
	at    time.Time
}

func TestSortFeatured(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []featuredItem{
		{"unordered-late", nil, base.Add(2 * time.Hour)},
		{"second", ptrInt(2), base},
		{"unordered-early", nil, base.Add(time.Hour)},
		{"first", ptrInt(1), base.Add(3 * time.Hour)},
		{"second-later", ptrInt(2), base.Add(time.Minute)},
	}
	key := func(i featuredItem) Featured { return Featured{Order: i.order, CreatedAt: i.at} }

	sorted := SortFeatured(items, key, 0)
	names := make([]string, 0, len(sorted))
	for _, item := range sorted {
		names = append(names, item.name)
	}
	assert.Equal(t, []string{"first", "second", "second-later", "unordered-early", "unordered-late"}, names)

	capped := SortFeatured(items, key, 2)
	assert.Len(t, capped, 2)
}

func TestMatchesSearch(t *testing.T) {
	tags := []string{"Surfing", "local island"}
	assert.True(t, MatchesSearch("", "Thulusdhoo", "Kaafu", tags))
	assert.True(t, MatchesSearch("thulus", "Thulusdhoo", "Kaafu", tags))
	assert.True(t, MatchesSearch("KAAFU", "Thulusdhoo", "Kaafu", tags))
	assert.True(t, MatchesSearch("surf", "Thulusdhoo", "Kaafu", tags))
	assert.False(t, MatchesSearch("diving", "Thulusdhoo", "Kaafu", tags))
}
