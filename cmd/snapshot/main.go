package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alchy/Head1919/internal/config"
	"github.com/alchy/Head1919/internal/mesh"
	"github.com/alchy/Head1919/internal/obj"
	"github.com/alchy/Head1919/internal/snapshot"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	model := flag.String("model", "", "Path to OBJ model (default: model.obj)")
	out := flag.String("out", "", "Output file (still) or directory (turntable)")
	size := flag.Int("size", 0, "Output image size (default: 512)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 2)")
	yaw := flag.Float64("yaw", 0, "Model yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Model pitch in degrees")
	wireframe := flag.Bool("wireframe", false, "Render edges only")
	turntable := flag.Int("turntable", 0, "Render N frames around the Y axis")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
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

	// -out names a directory unless it ends in .webp (single still).
	outDir := *out
	if strings.HasSuffix(outDir, ".webp") {
		outDir = ""
	}
	cfg.Resolve(config.Flags{
		ModelPath: *model,
		OutputDir: outDir,
		ColorMode: *colors,
		Workers:   *workers,
	})
	if *size > 0 {
		cfg.SnapshotSize = *size
	}
	if *supersample > 0 {
		cfg.Supersample = *supersample
	}

	m, err := obj.Load(cfg.ModelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}
	tris := mesh.Triangulate(m, mesh.ColorsForMode(cfg.ColorMode))

	opt := snapshot.Options{
		Size:        cfg.SnapshotSize,
		Supersample: cfg.Supersample,
		Yaw:         *yaw,
		Pitch:       *pitch,
		Wireframe:   *wireframe,
		FOV:         cfg.FOV,
	}

	stem := strings.TrimSuffix(filepath.Base(cfg.ModelPath), filepath.Ext(cfg.ModelPath))
	start := time.Now()

	if *turntable > 0 {
		outDir := filepath.Join(cfg.OutputDir, stem)
		results := snapshot.Turntable(tris, opt, *turntable, cfg.Workers, outDir)

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "  frame %d: %v\n", r.Frame, r.Err)
			}
		}
		fmt.Printf("Rendered %d/%d frames to %s in %.1fs\n",
			len(results)-failed, len(results), outDir, time.Since(start).Seconds())
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	outPath := *out
	if outPath == "" || !strings.HasSuffix(outPath, ".webp") {
		outPath = filepath.Join(cfg.OutputDir, stem+".webp")
	}
	img := snapshot.Render(tris, opt)
	if err := snapshot.Write(outPath, img); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %s (%d triangles) in %.1fs\n", outPath, len(tris), time.Since(start).Seconds())
}
