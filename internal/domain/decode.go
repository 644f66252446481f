package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFeatureCollection is returned when a feed document decodes as JSON
// but is not a GeoJSON FeatureCollection.
var ErrNotFeatureCollection = errors.New("not a GeoJSON FeatureCollection")

const featureCollectionType = "FeatureCollection"

// USGS feed wire types.

type quakeCollection struct {
	Type     string         `json:"type"`
	Features []quakeFeature `json:"features"`
}

type quakeFeature struct {
	ID         string          `json:"id"`
	Geometry   *pointGeometry  `json:"geometry"`
	Properties quakeProperties `json:"properties"`
}

type pointGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
}

type quakeProperties struct {
	Mag   *float64 `json:"mag"`
	Place string   `json:"place"`
	Time  *int64   `json:"time"` // epoch milliseconds
	URL   string   `json:"url"`
}

// PB2002 wire types.

type boundaryCollection struct {
	Type     string            `json:"type"`
	Features []boundaryFeature `json:"features"`
}

type boundaryFeature struct {
	Geometry   json.RawMessage `json:"geometry"`
	Properties struct {
		Name string `json:"Name"`
	} `json:"properties"`
}

// DecodeEarthquakes parses a USGS GeoJSON feed into earthquakes.
//
// Features without at least a longitude and latitude cannot be placed on a
// map and are skipped; the number skipped is returned alongside the events.
// A missing depth or magnitude defaults to 0.
func DecodeEarthquakes(data []byte) ([]Earthquake, int, error) {
	var fc quakeCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, 0, fmt.Errorf("decode earthquake feed: %w", err)
	}
	if fc.Type != featureCollectionType {
		return nil, 0, fmt.Errorf("decode earthquake feed: %w (type %q)", ErrNotFeatureCollection, fc.Type)
	}

	quakes := make([]Earthquake, 0, len(fc.Features))
	skipped := 0
	for _, f := range fc.Features {
		q, ok := earthquakeFromFeature(f)
		if !ok {
			skipped++
			continue
		}
		quakes = append(quakes, q)
	}
	return quakes, skipped, nil
}

func earthquakeFromFeature(f quakeFeature) (Earthquake, bool) {
	if f.Geometry == nil || len(f.Geometry.Coordinates) < 2 {
		return Earthquake{}, false
	}

	coords := f.Geometry.Coordinates
	q := Earthquake{
		ID:    f.ID,
		Lon:   coords[0],
		Lat:   coords[1],
		Place: f.Properties.Place,
		URL:   f.Properties.URL,
	}
	if len(coords) > 2 {
		q.Depth = coords[2]
	}
	if f.Properties.Mag != nil {
		q.Magnitude = *f.Properties.Mag
	}
	if f.Properties.Time != nil {
		q.Time = time.UnixMilli(*f.Properties.Time).UTC()
	}
	return q, true
}

// DecodeBoundaries parses a plate boundary GeoJSON document. Features with a
// null geometry are dropped since there is nothing to draw.
func DecodeBoundaries(data []byte) ([]Boundary, error) {
	var fc boundaryCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode boundary feed: %w", err)
	}
	if fc.Type != featureCollectionType {
		return nil, fmt.Errorf("decode boundary feed: %w (type %q)", ErrNotFeatureCollection, fc.Type)
	}

	boundaries := make([]Boundary, 0, len(fc.Features))
	for _, f := range fc.Features {
		if len(f.Geometry) == 0 || string(f.Geometry) == "null" {
			continue
		}
		boundaries = append(boundaries, Boundary{
			Name:     f.Properties.Name,
			Geometry: f.Geometry,
		})
	}
	return boundaries, nil
}
