// Package domain models earthquake events, plate boundaries, and the rules
// that turn an event into a styled map marker.
//
// # Data Sources
//
// Earthquake events come from the USGS GeoJSON summary feeds, e.g.
// https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson.
// Plate boundaries come from the PB2002 dataset published as GeoJSON at
// https://github.com/fraxen/tectonicplates.
//
// # USGS Feed Conventions
//
// Coordinates:
//
//	geometry.coordinates = [longitude, latitude, depth]
//	Depth is in kilometers below sea level. Negative depths are valid and mean
//	the hypocenter is above sea level (common for shallow volcanic events).
//
// Properties:
//
//	mag    magnitude, may be null for unreviewed events
//	place  human readable region, e.g. "10 km NE of Pāhala, Hawaii"
//	time   origin time in milliseconds since the Unix epoch
//	url    event page on earthquake.usgs.gov
//
// # Encoding
//
// Two presentation variants exist and each has its own encoding tables:
//
//	classic   radius = 5 × magnitude, depth bands evaluated with "<" ascending
//	tectonic  radius = 3 × magnitude, depth bands evaluated with ">" descending
//
// Because the comparison direction differs, the variants disagree on which
// band owns a depth that sits exactly on a threshold (10, 30, 50, 70, 90).
// Both behaviors are kept as-is.
package domain
