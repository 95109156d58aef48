package config

import (
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Problem != "decay" || cfg.Degree != DefaultDegree || cfg.Steps != DefaultSteps {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Y0 != nil {
		t.Error("default config must not override y0")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	y0 := 7.5
	cfg := &Config{
		Problem:       "ripple",
		T0:            1,
		T1:            9,
		Steps:         33,
		Degree:        3,
		Y0:            &y0,
		Target:        0.25,
		AdjointDegree: 2,
		AdjointSteps:  12,
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Problem != cfg.Problem || got.Steps != cfg.Steps || got.Degree != cfg.Degree ||
		got.Target != cfg.Target || got.AdjointSteps != cfg.AdjointSteps {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Y0 == nil || *got.Y0 != 7.5 {
		t.Errorf("y0 override lost: %v", got.Y0)
	}
}

func TestMesh(t *testing.T) {
	cfg := &Config{T0: 0, T1: 2, Steps: 4}
	mesh := cfg.Mesh()
	if len(mesh) != 5 || mesh[0] != 0 || mesh[4] != 2 {
		t.Errorf("unexpected mesh: %v", mesh)
	}
	if err := mesh.Validate(); err != nil {
		t.Errorf("mesh invalid: %v", err)
	}
}
