// internal/output/formatter.go - metadata.json formatting implementation
package output

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tilegen/tilegen/internal/generate"
)

// TippecanoeFormatter renders a TileSet's metadata into the tippecanoe
// metadata.json convention: name, description, version, minzoom, maxzoom,
// center, bounds, type, format, and a json field holding a nested
// document with vector_layers and tilestats.
type TippecanoeFormatter struct {
	config *FormatterConfig
}

// NewTippecanoeFormatter creates a formatter using config.
func NewTippecanoeFormatter(config *FormatterConfig) *TippecanoeFormatter {
	return &TippecanoeFormatter{config: config}
}

// vectorLayer describes one MVT layer's schema, per the TileJSON
// vector_layers convention.
type vectorLayer struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// layerStats mirrors tippecanoe's per-layer tilestats entry.
type layerStats struct {
	Layer        string   `json:"layer"`
	Count        int      `json:"count"`
	AttributeCount int    `json:"attributeCount"`
	Attributes   []string `json:"attributes"`
}

type tileStats struct {
	LayerCount int          `json:"layerCount"`
	Layers     []layerStats `json:"layers"`
}

type embeddedJSON struct {
	VectorLayers []vectorLayer `json:"vector_layers"`
	TileStats    tileStats     `json:"tilestats"`
}

// metadataDoc is the top-level tippecanoe metadata.json shape.
type metadataDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	MinZoom     string `json:"minzoom"`
	MaxZoom     string `json:"maxzoom"`
	Center      string `json:"center"`
	Bounds      string `json:"bounds"`
	Type        string `json:"type"`
	Format      string `json:"format"`
	JSON        string `json:"json"`
}

// Format builds the metadata.json document for ts.
func (f *TippecanoeFormatter) Format(ts *generate.TileSet) ([]byte, error) {
	md := ts.Metadata()

	fields := make(map[string]string, len(md.AttributeNames))
	for _, name := range md.AttributeNames {
		// The property model here does not track a single static type per
		// key across features, so every attribute is reported as "String"
		// per the tippecanoe convention for mixed-type fields.
		fields[name] = "String"
	}

	embedded := embeddedJSON{
		VectorLayers: []vectorLayer{{ID: md.LayerName, Fields: fields}},
	}
	if f.config.IncludeStats {
		embedded.TileStats = tileStats{
			LayerCount: 1,
			Layers: []layerStats{{
				Layer:          md.LayerName,
				Count:          md.FeatureCount,
				AttributeCount: len(md.AttributeNames),
				Attributes:     md.AttributeNames,
			}},
		}
	}

	embeddedBytes, err := json.Marshal(embedded)
	if err != nil {
		return nil, fmt.Errorf("failed to encode embedded json field: %w", err)
	}

	doc := metadataDoc{
		Name:        f.config.Name,
		Description: f.config.Description,
		Version:     "1",
		MinZoom:     strconv.Itoa(int(md.MinZoom)),
		MaxZoom:     strconv.Itoa(int(md.MaxZoom)),
		Center:      joinFloats(md.Center[0], md.Center[1], float64(md.MaxZoom)),
		Bounds:      joinFloats(md.Bounds[0], md.Bounds[1], md.Bounds[2], md.Bounds[3]),
		Type:        "overlay",
		Format:      "pbf",
		JSON:        string(embeddedBytes),
	}

	if f.config.Pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func joinFloats(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
