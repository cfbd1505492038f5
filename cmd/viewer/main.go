package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/alchy/Head1919/internal/config"
	"github.com/alchy/Head1919/internal/mesh"
	"github.com/alchy/Head1919/internal/obj"
	"github.com/alchy/Head1919/internal/viewer"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	model := flag.String("model", "", "Path to OBJ model (default: model.obj)")
	width := flag.Int("width", 0, "Window width (default: 800)")
	height := flag.Int("height", 0, "Window height (default: 600)")
	speed := flag.Float64("speed", 0, "Camera speed in units per tick (default: 0.5)")
	mode := flag.String("mode", "", "Render mode: solid or wireframe")
	colors := flag.String("colors", "", "Face colors: fixed, palette or random")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ModelPath: *model,
		Width:     *width,
		Height:    *height,
		Speed:     *speed,
		Mode:      *mode,
		ColorMode: *colors,
	})

	// Load and triangulate the model, once, before the frame loop.
	m, err := obj.Load(cfg.ModelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	tris := mesh.Triangulate(m, mesh.ColorsForMode(cfg.ColorMode))

	fmt.Printf("Model: %s (%d vertices, %d faces, %d triangles)\n",
		cfg.ModelPath, len(m.Verts), len(m.Faces), len(tris))
	fmt.Printf("Window: %dx%d, mode=%s, colors=%s\n", cfg.Width, cfg.Height, cfg.Mode, cfg.ColorMode)
	fmt.Println("Keys: W/S forward/back, Q/E up/down, A/D left/right, Esc quits")

	if err := viewer.Run(cfg, tris); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
