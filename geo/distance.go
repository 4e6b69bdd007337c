package geo

import "math"

const earthRadiusKm = 6371.0088

// DistanceKm computes the great-circle distance between two coordinates
// using the haversine formula, rounded to two decimal places. The result
// is symmetric and non-negative.
func DistanceKm(latA, lonA, latB, lonB float64) float64 {
	phiA := latA * math.Pi / 180
	phiB := latB * math.Pi / 180
	dPhi := (latB - latA) * math.Pi / 180
	dLambda := (lonB - lonA) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phiA)*math.Cos(phiB)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}
