package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/softsphere/raytracer/pkg/renderer"
	"github.com/softsphere/raytracer/pkg/scene"
)

// viewer displays a single finished frame. The render happens once before
// the window opens; Draw only blits the result.
type viewer struct {
	frame  *ebiten.Image
	width  int
	height int
}

func (v *viewer) Update() error {
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: 'default', 'matte' or 'single'")
	width := flag.Int("width", 600, "Raster width in pixels")
	height := flag.Int("height", 600, "Raster height in pixels")
	flag.Parse()

	selectedScene, err := scene.ByName(*sceneName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, *width, *height)
	sink := renderer.NewImageSink(*width, *height)
	stats := raytracer.Render(sink)
	fmt.Printf("Render completed in %v (%d rays)\n", stats.Elapsed, stats.Rays)

	v := &viewer{
		frame:  ebiten.NewImageFromImage(sink.Img),
		width:  *width,
		height: *height,
	}

	ebiten.SetWindowTitle(fmt.Sprintf("Phong Raytracer - %s", *sceneName))
	ebiten.SetWindowSize(*width, *height)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatalf("Error running viewer: %v", err)
	}
}
