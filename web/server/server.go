package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/softsphere/raytracer/pkg/core"
	"github.com/softsphere/raytracer/pkg/renderer"
	"github.com/softsphere/raytracer/pkg/scene"
)

// maxDimension caps requested raster sizes so a stray query parameter cannot
// ask for a multi-gigabyte render.
const maxDimension = 4096

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, logger: log.Default()}
}

// renderParams represents a validated render request
type renderParams struct {
	Scene  string
	Width  int
	Height int
}

// Handler returns the route table for the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the scene names the server can render
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.Names()})
}

// handleRender renders the requested scene once and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseRenderParams(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.ByName(params.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, params.Width, params.Height)
	sink := renderer.NewImageSink(params.Width, params.Height)

	stats := raytracer.Render(sink)
	s.logger.Printf("Rendered %s at %dx%d in %v (%d rays, %d hits)",
		params.Scene, stats.Width, stats.Height, stats.Elapsed, stats.Rays, stats.Hits)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Millis", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	if err := png.Encode(w, sink.Img); err != nil {
		// Headers are already out; all we can do is log
		s.logger.Printf("Error encoding PNG response: %v", err)
	}
}

// parseRenderParams extracts and validates render parameters from the query string
func (s *Server) parseRenderParams(r *http.Request) (renderParams, error) {
	params := renderParams{
		Scene:  "default",
		Width:  600,
		Height: 600,
	}

	query := r.URL.Query()
	if name := query.Get("scene"); name != "" {
		params.Scene = name
	}

	var err error
	if params.Width, err = parseDimension(query.Get("width"), params.Width); err != nil {
		return params, fmt.Errorf("width: %v", err)
	}
	if params.Height, err = parseDimension(query.Get("height"), params.Height); err != nil {
		return params, fmt.Errorf("height: %v", err)
	}

	return params, nil
}

// parseDimension parses a raster dimension query value, keeping the fallback
// for an absent value and rejecting non-positive or oversized ones.
func parseDimension(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", value)
	}
	if n <= 0 || n > maxDimension {
		return 0, fmt.Errorf("must be between 1 and %d, got %d", maxDimension, n)
	}
	return n, nil
}
