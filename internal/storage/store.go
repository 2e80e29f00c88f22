package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/turtle"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Recording is a headless run: per-frame samples plus the final entities.
type Recording struct {
	Options  turtle.Options
	Width    float64
	Height   float64
	Samples  []metrics.Sample
	Entities []turtle.Entity
	Metrics  map[string]float64
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Mode      string             `json:"mode"`
	Scheme    string             `json:"scheme,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Count     int                `json:"count"`
	Frames    int                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

var (
	sampleHeader = []string{"frame", "speed", "links", "particle_life", "pulse"}
	entityHeader = []string{"x", "y", "vx", "vy", "size", "angle", "shape", "color"}
)

func (s *Store) Save(rec *Recording) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", rec.Options.Mode, now.UnixMilli())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Mode:      string(rec.Options.Mode),
		Scheme:    rec.Options.Scheme,
		Timestamp: now,
		Seed:      rec.Options.Seed,
		Width:     rec.Width,
		Height:    rec.Height,
		Count:     len(rec.Entities),
		Frames:    len(rec.Samples),
		Metrics:   rec.Metrics,
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(rec.Samples))
	for _, smp := range rec.Samples {
		rows = append(rows, []string{
			strconv.Itoa(smp.Frame),
			formatFloat(smp.Speed),
			strconv.Itoa(smp.Links),
			formatFloat(smp.Particles),
			formatFloat(smp.Pulse),
		})
	}
	if err := writeCSV(filepath.Join(runDir, "samples.csv"), sampleHeader, rows); err != nil {
		return "", err
	}

	rows = rows[:0]
	for _, e := range rec.Entities {
		rows = append(rows, []string{
			formatFloat(e.Pos.X),
			formatFloat(e.Pos.Y),
			formatFloat(e.Vel.X),
			formatFloat(e.Vel.Y),
			formatFloat(e.Size),
			formatFloat(e.Angle),
			e.Shape.String(),
			fmt.Sprintf("#%02x%02x%02x", e.Color.R, e.Color.G, e.Color.B),
		})
	}
	if err := writeCSV(filepath.Join(runDir, "entities.csv"), entityHeader, rows); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]metrics.Sample, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}

	samples := make([]metrics.Sample, 0, len(records))
	for _, rec := range records {
		// runs recorded before the pulse column carry four fields
		if len(rec) < 4 {
			continue
		}
		frame, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		speed, _ := strconv.ParseFloat(rec[1], 64)
		links, _ := strconv.Atoi(rec[2])
		life, _ := strconv.ParseFloat(rec[3], 64)
		smp := metrics.Sample{Frame: frame, Speed: speed, Links: links, Particles: life}
		if len(rec) > 4 {
			smp.Pulse, _ = strconv.ParseFloat(rec[4], 64)
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

// LoadEntities returns the final entity snapshot of a run. Rows whose
// shape or color cannot be read keep the circle shape and a zero color.
func (s *Store) LoadEntities(runID string) ([]turtle.Entity, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, "entities.csv"))
	if err != nil {
		return nil, err
	}

	out := make([]turtle.Entity, 0, len(records))
	for _, rec := range records {
		if len(rec) < len(entityHeader) {
			continue
		}
		vals := make([]float64, 6)
		ok := true
		for i := range vals {
			v, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		e := turtle.Entity{
			Pos:   turtle.Vec{X: vals[0], Y: vals[1]},
			Vel:   turtle.Vec{X: vals[2], Y: vals[3]},
			Size:  vals[4],
			Angle: vals[5],
		}
		e.Shape, _ = turtle.ParseShape(rec[6])
		if pal, err := turtle.ParsePalette([]string{rec[7]}); err == nil {
			e.Color = pal[0]
		}
		out = append(out, e)
	}
	return out, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

// readCSV returns the data rows, header dropped.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]string{}, nil
	}
	return records[1:], nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
