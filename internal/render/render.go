// Package render writes a composed map as a standalone Leaflet page or as a
// JSON document.
package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/mapview"
)

// Leaflet assets loaded by the page.
const (
	LeafletCSS = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	LeafletJS  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
)

//go:embed page.html.tmpl
var pageSource string

var pageTmpl = template.Must(template.New("page").Parse(pageSource))

type pageData struct {
	Title      string
	LeafletCSS string
	LeafletJS  string
	Doc        mapview.Map
}

// HTML writes m as a self-contained page that builds the map in the browser.
func HTML(w io.Writer, m mapview.Map) error {
	data := pageData{
		Title:      Title(m.Variant),
		LeafletCSS: LeafletCSS,
		LeafletJS:  LeafletJS,
		Doc:        m,
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// JSON writes m as an indented JSON document.
func JSON(w io.Writer, m mapview.Map) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

// Title returns the page title for a variant.
func Title(v domain.Variant) string {
	switch v {
	case domain.VariantTectonic:
		return "Earthquakes and Tectonic Plates"
	default:
		return "Earthquakes in the Past Day"
	}
}
