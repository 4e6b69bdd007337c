package geo

import (
	"context"

	"github.com/mediassist/mediassist-api/schema"
)

// FacilityFinder is implemented by external geodata providers that
// return medical facilities near a coordinate. Implementations are
// read-only and side-effect free, so callers may query several of them
// concurrently.
type FacilityFinder interface {
	Find(ctx context.Context, lat, lon, radiusKm float64) ([]schema.Facility, error)
}
