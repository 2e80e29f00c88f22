package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/turtle"
)

// EntityRecord is the exported form of one entity in the final frame.
type EntityRecord struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Size  float64 `json:"size"`
	Angle float64 `json:"angle"`
	Shape string  `json:"shape"`
	Color string  `json:"color"`
}

func entityRecord(e turtle.Entity) EntityRecord {
	return EntityRecord{
		X:     e.Pos.X,
		Y:     e.Pos.Y,
		VX:    e.Vel.X,
		VY:    e.Vel.Y,
		Size:  e.Size,
		Angle: e.Angle,
		Shape: e.Shape.String(),
		Color: fmt.Sprintf("#%02x%02x%02x", e.Color.R, e.Color.G, e.Color.B),
	}
}

type ExportData struct {
	ID       string             `json:"id"`
	Mode     string             `json:"mode"`
	Seed     int64              `json:"seed"`
	Width    float64            `json:"width"`
	Height   float64            `json:"height"`
	Frames   int                `json:"frames"`
	Samples  []metrics.Sample   `json:"samples"`
	Entities []EntityRecord     `json:"entities"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a stored run as a single JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}
	ents, err := s.LoadEntities(runID)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	records := make([]EntityRecord, 0, len(ents))
	for _, e := range ents {
		records = append(records, entityRecord(e))
	}

	data := ExportData{
		ID:       meta.ID,
		Mode:     meta.Mode,
		Seed:     meta.Seed,
		Width:    meta.Width,
		Height:   meta.Height,
		Frames:   meta.Frames,
		Samples:  samples,
		Entities: records,
		Metrics:  meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
