package schema

// Facility source labels, kept identical to the upstream provider names
// exposed to clients.
const (
	SourceOpenStreetMap = "OpenStreetMap"
	SourcePhoton        = "Photon"
)

// Placeholders for fields a provider does not return.
const (
	UnnamedFacility     = "Unnamed Facility"
	UnknownAmenity      = "N/A"
	AddressNotAvailable = "Address not available"
)

// Facility is the normalized record for a hospital or clinic returned
// by a geodata provider.
type Facility struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	Address    string  `json:"address"`
	Source     string  `json:"source"`
	DistanceKm float64 `json:"distance_km"`
}
