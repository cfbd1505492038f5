package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Modes for the triangle rasterizer.
const (
	ModeSolid     = "solid"
	ModeWireframe = "wireframe"
)

// Face color selection modes.
const (
	ColorFixed   = "fixed"   // single model color
	ColorPalette = "palette" // deterministic palette cycle by face index
	ColorRandom  = "random"  // per-face palette pick, process-seeded
)

// Config holds all configurable paths and viewer settings.
type Config struct {
	ModelPath string `json:"model_path"`

	// Window and projection
	Width  int     `json:"width"`
	Height int     `json:"height"`
	FOV    float64 `json:"fov"` // degrees
	Near   float64 `json:"near"`
	Far    float64 `json:"far"`

	// Camera
	Speed   float64 `json:"speed"`    // units per tick
	CameraZ float64 `json:"camera_z"` // start distance on +Z

	// Appearance
	Mode      string `json:"mode"`       // solid | wireframe
	ColorMode string `json:"color_mode"` // fixed | palette | random

	// Snapshot settings
	SnapshotSize int    `json:"snapshot_size"`
	Supersample  int    `json:"supersample"`
	OutputDir    string `json:"output_dir"`
	Workers      int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ModelPath string
	OutputDir string
	Width     int
	Height    int
	Speed     float64
	Mode      string
	ColorMode string
	Workers   int
}

// Resolve applies flag overrides, then fills any remaining empty fields
// with defaults matching the reference viewer.
func (c *Config) Resolve(flags Flags) {
	if flags.ModelPath != "" {
		c.ModelPath = flags.ModelPath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Speed > 0 {
		c.Speed = flags.Speed
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.ColorMode != "" {
		c.ColorMode = flags.ColorMode
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.ModelPath == "" {
		c.ModelPath = "model.obj"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.FOV <= 0 {
		c.FOV = 45
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= 0 {
		c.Far = 500
	}
	if c.Speed <= 0 {
		c.Speed = 0.5
	}
	if c.CameraZ == 0 {
		c.CameraZ = 50
	}
	if c.Mode == "" {
		c.Mode = ModeSolid
	}
	if c.ColorMode == "" {
		c.ColorMode = ColorPalette
	}
	if c.SnapshotSize <= 0 {
		c.SnapshotSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
