package photon

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mediassist/mediassist-api/geo"
	"github.com/mediassist/mediassist-api/schema"
)

const (
	logPrefix      = "photon"
	defaultURL     = "https://photon.komoot.io/api/"
	defaultTimeout = 5 * time.Second
	resultLimit    = 50
)

// retained osm_value categories
var medicalAmenities = map[string]bool{
	"hospital": true,
	"clinic":   true,
	"doctors":  true,
}

// finder queries nearby medical facilities from the Photon geocoding
// API.
type finder struct {
	url    string
	client *http.Client
}

type properties struct {
	Name     string `json:"name"`
	OsmValue string `json:"osm_value"`
	Street   string `json:"street"`
	City     string `json:"city"`
}

type feature struct {
	Geometry struct {
		// GeoJSON order: [lon, lat]
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties properties `json:"properties"`
}

type jsonResponse struct {
	Features []feature `json:"features"`
}

func (f *finder) Find(ctx context.Context, lat, lon, radiusKm float64) ([]schema.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf("%s?q=hospital&lat=%f&lon=%f&limit=%d&radius=%f",
		f.url, lat, lon, resultLimit, radiusKm)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photon responded with status %d", resp.StatusCode)
	}

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var r jsonResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return nil, err
	}

	facilities := make([]schema.Facility, 0, len(r.Features))
	for _, ft := range r.Features {
		if !medicalAmenities[ft.Properties.OsmValue] {
			continue
		}
		if len(ft.Geometry.Coordinates) < 2 {
			continue
		}

		facilities = append(facilities, schema.Facility{
			Name:      nameOrDefault(ft.Properties.Name),
			Type:      ft.Properties.OsmValue,
			Latitude:  ft.Geometry.Coordinates[1],
			Longitude: ft.Geometry.Coordinates[0],
			Address:   formatAddress(ft.Properties),
			Source:    schema.SourcePhoton,
		})
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"count":  len(facilities),
	}).Info("queried nearby facilities")

	return facilities, nil
}

func nameOrDefault(name string) string {
	if name == "" {
		return schema.UnnamedFacility
	}
	return name
}

func formatAddress(p properties) string {
	address := strings.Trim(fmt.Sprintf("%s, %s", p.Street, p.City), ", ")
	if address == "" {
		return schema.AddressNotAvailable
	}
	return address
}

// New - new FacilityFinder backed by the Photon API. url overrides the
// production endpoint and is meant for tests.
func New(url string, client *http.Client) geo.FacilityFinder {
	u := defaultURL
	if url != "" {
		u = url
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &finder{
		url:    u,
		client: client,
	}
}
