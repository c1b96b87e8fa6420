package enums

import (
	"fmt"
	"strings"
)

// IslandType classifies an island in the catalog.
type IslandType string

const (
	IslandTypeResort      IslandType = "resort"
	IslandTypeInhabited   IslandType = "inhabited"
	IslandTypeUninhabited IslandType = "uninhabited"
	IslandTypeIndustrial  IslandType = "industrial"
)

// IslandTypeAll is the list filter sentinel meaning "no type filter".
const IslandTypeAll = "all"

var validIslandTypes = []IslandType{
	IslandTypeResort,
	IslandTypeInhabited,
	IslandTypeUninhabited,
	IslandTypeIndustrial,
}

// String implements fmt.Stringer.
func (t IslandType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known IslandType.
func (t IslandType) IsValid() bool {
	for _, candidate := range validIslandTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseIslandType converts raw input into an IslandType.
func ParseIslandType(value string) (IslandType, error) {
	for _, candidate := range validIslandTypes {
		if string(candidate) == strings.TrimSpace(value) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid island type %q", value)
}
