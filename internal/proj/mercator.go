package proj

import "math"

// MaxLat is the Web-Mercator latitude clamp.
const MaxLat = 85.05112878

// MercatorLonLat converts planar world coordinates (0..size on both axes)
// to WGS84 lon/lat with a Mercator projection scaled to the world size.
// Used when hydrating feature files whose coordinates are planar game or
// scene units rather than degrees.
func MercatorLonLat(x, z, size float64) (lon, lat float64) {
	lon = x*(360.0/size) - 180.0

	mercatorY := z*((2.0*math.Pi)/size) - math.Pi
	latRad := 2.0*math.Atan(math.Exp(mercatorY)) - math.Pi*0.5
	lat = latRad * (180.0 / math.Pi)

	if lat > MaxLat {
		lat = MaxLat
	} else if lat < -MaxLat {
		lat = -MaxLat
	}
	return lon, lat
}
