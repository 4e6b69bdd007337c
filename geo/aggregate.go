package geo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mediassist/mediassist-api/schema"
)

// FacilityKey is the deduplication key for a facility: its normalized
// name plus coordinates rounded to four decimal places. Records from
// different providers describing the same place collapse to one key.
func FacilityKey(f schema.Facility) string {
	return fmt.Sprintf("%s_%.4f_%.4f",
		strings.ToLower(strings.TrimSpace(f.Name)), f.Latitude, f.Longitude)
}

// AggregateFacilities merges provider result sets into a single list:
// duplicates are dropped (first seen wins), every retained record gets
// its distance from the user coordinate, and the result is sorted by
// distance ascending. The sort is stable so equidistant facilities keep
// their provider order.
func AggregateFacilities(userLat, userLon float64, resultSets ...[]schema.Facility) []schema.Facility {
	seen := make(map[string]struct{})
	merged := make([]schema.Facility, 0)

	for _, facilities := range resultSets {
		for _, f := range facilities {
			key := FacilityKey(f)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			f.DistanceKm = DistanceKm(userLat, userLon, f.Latitude, f.Longitude)
			merged = append(merged, f)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DistanceKm < merged[j].DistanceKm
	})

	return merged
}
