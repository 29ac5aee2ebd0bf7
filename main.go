package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "cover":
		return scene.NewCoverScene(rand.New(rand.NewSource(seed))), nil
	case "three-spheres":
		return scene.NewThreeSphereScene(), nil
	case "single-sphere":
		return scene.NewSingleSphereScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func validateConfig(config scene.RenderConfig) error {
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", config.MaxDepth)
	}
	return nil
}

func main() {
	sceneType := flag.String("scene", "cover", "Scene type: 'cover', 'three-spheres' or 'single-sphere'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("spp", 0, "Samples per pixel (0 = scene default)")
	maxDepth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	seed := flag.Int64("seed", 42, "Random seed for scene generation and sampling")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("output", "", "Output file; .ppm writes plain PPM, anything else PNG (default output/<scene>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: go-sphere-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	selectedScene, err := createScene(*sceneType, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Apply command-line overrides on top of the scene defaults
	config := selectedScene.RenderConfig
	config.Seed = *seed
	if *width > 0 {
		config.Width = *width
		config.Height = int(float64(*width) / selectedScene.CameraConfig.AspectRatio)
	}
	if *samples > 0 {
		config.SamplesPerPixel = *samples
	}
	if *maxDepth > 0 {
		config.MaxDepth = *maxDepth
	}

	if err := validateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := selectedScene.CameraConfig.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, config.Width, config.Height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: config.SamplesPerPixel,
		MaxDepth:        config.MaxDepth,
		Seed:            config.Seed,
	})

	pool := renderer.NewWorkerPool(raytracer, *workers)
	fmt.Fprintf(os.Stderr, "Rendering %dx%d, %d spp, depth %d (%d workers)...\n",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, pool.GetNumWorkers())

	img, stats := pool.Render()
	fmt.Fprintf(os.Stderr, "\nDone in %v (%d rays).\n", stats.ElapsedTime, stats.TotalSamples)

	outputPath := *output
	if outputPath == "" {
		if err := os.MkdirAll("output", 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		outputPath = filepath.Join("output", *sceneType+".png")
	}

	if strings.EqualFold(filepath.Ext(outputPath), ".ppm") {
		file, err := os.Create(outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		if err := renderer.WritePPM(file, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PPM: %v\n", err)
			os.Exit(1)
		}
	} else {
		dc := gg.NewContextForRGBA(img)
		if err := dc.SavePNG(outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "Render saved as %s\n", outputPath)
}
