package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/mediassist/mediassist-api/geo"
	"github.com/mediassist/mediassist-api/schema"
)

const defaultRadiusKm = 5

type hospitalRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    float64  `json:"radius"`
}

// nearbyHospitals queries every facility provider concurrently, merges
// and deduplicates the results and returns them sorted by distance.
// A failing provider only shrinks the result set; it never fails the
// request.
func (s *Server) nearbyHospitals(c *gin.Context) {
	var body hospitalRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, errorMessageMissingLatLon, err)
		return
	}

	if body.Latitude == nil || body.Longitude == nil {
		abortWithError(c, http.StatusBadRequest, errorMessageMissingLatLon)
		return
	}

	lat, lon := *body.Latitude, *body.Longitude
	radius := body.Radius
	if radius <= 0 {
		radius = defaultRadiusKm
	}

	resultSets := make([][]schema.Facility, len(s.finders))

	var wg sync.WaitGroup
	for i, finder := range s.finders {
		wg.Add(1)
		go func(i int, finder geo.FacilityFinder) {
			defer wg.Done()

			facilities, err := finder.Find(c.Request.Context(), lat, lon, radius)
			if err != nil {
				log.WithError(err).Warn("facility provider failed")
				return
			}
			resultSets[i] = facilities
		}(i, finder)
	}
	wg.Wait()

	c.JSON(http.StatusOK, geo.AggregateFacilities(lat, lon, resultSets...))
}
