package flock

import (
	"os"
	"path/filepath"
	"testing"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["worldWidth", "worldHeight", "numBoids", "maxSpeed", "maxForce"],
  "properties": {
    "worldWidth": {"type": "number", "exclusiveMinimum": 0},
    "worldHeight": {"type": "number", "exclusiveMinimum": 0},
    "numBoids": {"type": "integer", "minimum": 1},
    "maxSpeed": {"type": "number", "exclusiveMinimum": 0},
    "maxForce": {"type": "number", "exclusiveMinimum": 0}
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	schemaFile := writeFile(t, dir, "schema.json", testSchema)
	configFile := writeFile(t, dir, "config.json", `{
		"worldWidth": 640,
		"worldHeight": 480,
		"numBoids": 50,
		"maxSpeed": 3.0,
		"maxForce": 0.2
	}`)

	cfg, err := LoadConfig(configFile, schemaFile)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.WorldWidth != 640 || cfg.WorldHeight != 480 {
		t.Errorf("world = %vx%v; want 640x480", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.NumBoids != 50 {
		t.Errorf("NumBoids = %d; want 50", cfg.NumBoids)
	}
	if cfg.MaxSpeed != 3.0 || cfg.MaxForce != 0.2 {
		t.Errorf("MaxSpeed/MaxForce = %v/%v; want 3.0/0.2", cfg.MaxSpeed, cfg.MaxForce)
	}
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	schemaFile := writeFile(t, dir, "schema.json", testSchema)
	// numBoids must be an integer >= 1
	configFile := writeFile(t, dir, "config.json", `{
		"worldWidth": 640,
		"worldHeight": 480,
		"numBoids": 0,
		"maxSpeed": 3.0,
		"maxForce": 0.2
	}`)

	if _, err := LoadConfig(configFile, schemaFile); err == nil {
		t.Fatal("LoadConfig() accepted a config violating the schema")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	dir := t.TempDir()
	schemaFile := writeFile(t, dir, "schema.json", testSchema)

	if _, err := LoadConfig(filepath.Join(dir, "nope.json"), schemaFile); err == nil {
		t.Fatal("LoadConfig() did not report a missing config file")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	schemaFile := writeFile(t, dir, "schema.json", testSchema)
	configFile := writeFile(t, dir, "config.json", `{not json`)

	if _, err := LoadConfig(configFile, schemaFile); err == nil {
		t.Fatal("LoadConfig() accepted malformed JSON")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NumBoids <= 0 {
		t.Errorf("DefaultConfig().NumBoids = %d; want positive", cfg.NumBoids)
	}
	if cfg.MaxSpeed <= 0 || cfg.MaxForce <= 0 {
		t.Errorf("DefaultConfig() physics = %v/%v; want positive", cfg.MaxSpeed, cfg.MaxForce)
	}
	if cfg.SeparationRadius >= cfg.NeighborRadius {
		t.Errorf("SeparationRadius %v should be below NeighborRadius %v",
			cfg.SeparationRadius, cfg.NeighborRadius)
	}
}
