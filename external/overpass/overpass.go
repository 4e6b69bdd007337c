package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mediassist/mediassist-api/geo"
	"github.com/mediassist/mediassist-api/schema"
)

const (
	logPrefix      = "overpass"
	defaultURL     = "https://overpass-api.de/api/interpreter"
	defaultTimeout = 5 * time.Second
)

// finder queries nearby medical facilities from OpenStreetMap data via
// the Overpass API.
type finder struct {
	url    string
	client *http.Client
}

type element struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type jsonResponse struct {
	Elements []element `json:"elements"`
}

// buildQuery renders an Overpass QL statement selecting hospital and
// clinic amenities within radiusKm of the coordinate, across nodes,
// ways and relations.
func buildQuery(lat, lon, radiusKm float64) string {
	radiusMeters := int(radiusKm * 1000)
	var b strings.Builder

	b.WriteString("[out:json][timeout:25];(")
	for _, kind := range []string{"node", "way", "relation"} {
		fmt.Fprintf(&b, `%s["amenity"~"hospital|clinic"](around:%d,%f,%f);`,
			kind, radiusMeters, lat, lon)
	}
	b.WriteString(");out center;")

	return b.String()
}

func (f *finder) Find(ctx context.Context, lat, lon, radiusKm float64) ([]schema.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	form := url.Values{"data": {buildQuery(lat, lon, radiusKm)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass responded with status %d", resp.StatusCode)
	}

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var r jsonResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return nil, err
	}

	facilities := make([]schema.Facility, 0, len(r.Elements))
	for _, e := range r.Elements {
		if len(e.Tags) == 0 {
			continue
		}

		elat, elon := e.Lat, e.Lon
		if elat == 0 && elon == 0 && e.Center != nil {
			elat, elon = e.Center.Lat, e.Center.Lon
		}
		if elat == 0 && elon == 0 {
			continue
		}

		facilities = append(facilities, schema.Facility{
			Name:      tagOrDefault(e.Tags, "name", schema.UnnamedFacility),
			Type:      tagOrDefault(e.Tags, "amenity", schema.UnknownAmenity),
			Latitude:  elat,
			Longitude: elon,
			Address:   tagOrDefault(e.Tags, "addr:full", schema.AddressNotAvailable),
			Source:    schema.SourceOpenStreetMap,
		})
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"count":  len(facilities),
	}).Info("queried nearby facilities")

	return facilities, nil
}

func tagOrDefault(tags map[string]string, key, fallback string) string {
	if v, ok := tags[key]; ok && v != "" {
		return v
	}
	return fallback
}

// New - new FacilityFinder backed by the Overpass API. url overrides
// the production endpoint and is meant for tests.
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
