package match

import "errors"

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Geo is an optional start location reported by the cast's device.
type Geo struct {
	latitude  float64
	longitude float64
}

func NewGeo(lat, lng float64) (Geo, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Geo{}, ErrInvalidCoordinates
	}
	return Geo{latitude: lat, longitude: lng}, nil
}

func (g Geo) Latitude() float64  { return g.latitude }
func (g Geo) Longitude() float64 { return g.longitude }
