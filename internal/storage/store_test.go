package storage

import (
	"bytes"
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/turtle"
)

func testRecording() *Recording {
	return &Recording{
		Options: turtle.Options{Mode: turtle.ModeNetwork, Seed: 42},
		Width:   800,
		Height:  600,
		Samples: []metrics.Sample{
			{Frame: 1, Speed: 0.5, Links: 12, Particles: 48.25, Pulse: 0.5},
			{Frame: 2, Speed: 0.6, Links: 12, Particles: 47.25, Pulse: 0.75},
		},
		Entities: []turtle.Entity{
			{
				Pos:   turtle.Vec{X: 10, Y: 20},
				Vel:   turtle.Vec{X: 1, Y: -1},
				Size:  4,
				Angle: 1.5,
				Shape: turtle.ShapeTriangle,
				Color: color.NRGBA{R: 0xf5, G: 0xb4, B: 0x00, A: 255},
			},
		},
		Metrics: map[string]float64{"links": 12},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Mode != "network" {
		t.Errorf("expected mode 'network', got '%s'", meta.Mode)
	}
	if meta.Seed != 42 || meta.Frames != 2 || meta.Count != 1 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Metrics["links"] != 12 {
		t.Errorf("expected links 12, got %f", meta.Metrics["links"])
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[1].Frame != 2 || samples[1].Links != 12 || samples[1].Particles != 47.25 || samples[1].Pulse != 0.75 {
		t.Errorf("unexpected sample %+v", samples[1])
	}

	ents, err := st.LoadEntities(runID)
	if err != nil {
		t.Fatalf("load entities failed: %v", err)
	}
	if len(ents) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(ents))
	}
	want := testRecording().Entities[0]
	got := ents[0]
	if got.Pos != want.Pos || got.Vel != want.Vel || got.Size != want.Size || got.Angle != want.Angle {
		t.Errorf("expected geometry %+v, got %+v", want, got)
	}
	if got.Shape != want.Shape {
		t.Errorf("expected shape %v, got %v", want.Shape, got.Shape)
	}
	if got.Color != want.Color {
		t.Errorf("expected color %v, got %v", want.Color, got.Color)
	}
}

func TestLoadEntities_BadShapeAndColor(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	runID, err := st.Save(testRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	csv := "x,y,vx,vy,size,angle,shape,color\n1,2,0,0,3,0,hexagon,nope\n1,2,0,0\n"
	if err := os.WriteFile(filepath.Join(tmpDir, runID, "entities.csv"), []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	ents, err := st.LoadEntities(runID)
	if err != nil {
		t.Fatalf("load entities failed: %v", err)
	}
	if len(ents) != 1 {
		t.Fatalf("expected short row skipped, got %d entities", len(ents))
	}
	if ents[0].Shape != turtle.ShapeCircle || ents[0].Color != (color.NRGBA{}) {
		t.Errorf("expected circle with zero color, got %v %v", ents[0].Shape, ents[0].Color)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(testRecording()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(testRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "samples.csv", "entities.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(testRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != runID || len(got.Samples) != 2 {
		t.Errorf("unexpected export %+v", got)
	}
	wantEnt := EntityRecord{X: 10, Y: 20, VX: 1, VY: -1, Size: 4, Angle: 1.5, Shape: "triangle", Color: "#f5b400"}
	if len(got.Entities) != 1 || got.Entities[0] != wantEnt {
		t.Errorf("expected entities [%+v], got %+v", wantEnt, got.Entities)
	}

	if err := st.ExportJSON(&buf, "missing"); err == nil {
		t.Error("expected error for missing run")
	}
}
