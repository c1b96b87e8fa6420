package enums

import (
	"fmt"
	"strings"
)

// AdPlacement is the page zone a promotion renders in.
type AdPlacement string

const (
	AdPlacementHeader       AdPlacement = "header"
	AdPlacementSidebar      AdPlacement = "sidebar"
	AdPlacementFooter       AdPlacement = "footer"
	AdPlacementBlogInline   AdPlacement = "blog-inline"
	AdPlacementIslandDetail AdPlacement = "island-detail"
)

var validAdPlacements = []AdPlacement{
	AdPlacementHeader,
	AdPlacementSidebar,
	AdPlacementFooter,
	AdPlacementBlogInline,
	AdPlacementIslandDetail,
}

func (p AdPlacement) String() string {
	return string(p)
}

func (p AdPlacement) IsValid() bool {
	for _, candidate := range validAdPlacements {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseAdPlacement converts raw input into an AdPlacement.
func ParseAdPlacement(value string) (AdPlacement, error) {
	for _, candidate := range validAdPlacements {
		if string(candidate) == strings.TrimSpace(value) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ad placement %q", value)
}
