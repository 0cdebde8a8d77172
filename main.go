package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/softsphere/raytracer/pkg/renderer"
	"github.com/softsphere/raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene to render: 'default', 'matte' or 'single'")
	width := flag.Int("width", 600, "Raster width in pixels")
	height := flag.Int("height", 600, "Raster height in pixels")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three shiny spheres on a yellow ground sphere")
		fmt.Println("  matte   - Same arrangement with specular highlights disabled")
		fmt.Println("  single  - One red sphere under full ambient light")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Phong Raytracer...")

	selectedScene, err := createScene(*sceneName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Create output directory for this scene
	outputDir := filepath.Join("output", *sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	// Render the single pass
	raytracer := renderer.NewRaytracer(selectedScene, *width, *height)
	sink := renderer.NewImageSink(*width, *height)
	stats := raytracer.Render(sink)

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Rays cast: %d (%d hits, %d background)\n", stats.Rays, stats.Hits, stats.Misses)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, sink.Img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named scene, validating the name
func createScene(name string) (*scene.Scene, error) {
	return scene.ByName(name)
}
