package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config bundles every tunable of the simulation. It is passed
// explicitly into New and Tick and never mutated by the core, so the
// same flock can be ticked with varied parameter sets in tests.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// Physics
	MaxSpeed float64 `json:"maxSpeed"` // cruise speed, velocity is renormalized to this every tick
	MaxForce float64 `json:"maxForce"` // per-rule steering clamp

	// Interaction Radii
	NeighborRadius   float64 `json:"neighborRadius"`   // alignment + cohesion range
	SeparationRadius float64 `json:"separationRadius"` // personal space range

	// Rule Weights
	CohesionWeight   float64 `json:"cohesionWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	SeparationWeight float64 `json:"separationWeight"`
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:       1200,
		WorldHeight:      800,
		NumBoids:         1000,
		MaxSpeed:         2.5,
		MaxForce:         0.1,
		NeighborRadius:   100,
		SeparationRadius: 20,
		CohesionWeight:   0.5,
		AlignmentWeight:  0.1,
		SeparationWeight: 0.2,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
