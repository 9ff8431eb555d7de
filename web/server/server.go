package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const (
	DefaultTileSize = 64
	MaxLevels       = 8  // Longest accepted pass schedule
	MaxSuperSample  = 16 // Largest accepted per-axis super-sampling factor
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger *slog.Logger
}

// NewServer creates a new web server. A nil logger uses slog.Default().
func NewServer(port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string  `json:"scene"`    // Registered scene ID (e.g., "default")
	Width    int     `json:"width"`    // Image width
	Height   int     `json:"height"`   // Image height
	Levels   []int   `json:"levels"`   // Super-sampling factor of each pass
	TileSize int     `json:"tileSize"` // Tile edge in pixels
	Gamma    float64 `json:"gamma"`    // Gamma applied to streamed images
}

// Handler returns the HTTP handler with every route registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting web server", "url", "http://localhost"+addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the registered scenes grouped by category
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, scene.ListAllScenes())
}

// handleSceneConfig returns the default camera of a scene with validation limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default" // Default scene
	}

	sceneObj, err := scene.Create(sceneName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	cam := sceneObj.CameraConfig
	response := map[string]interface{}{
		"scene": sceneObj.Name,
		"defaults": map[string]interface{}{
			"width":         cam.Width,
			"height":        cam.Height,
			"superSampling": cam.SuperSampling,
			"near":          cam.Near,
			"far":           cam.Far,
			"vfov":          cam.VFov,
			"objects":       sceneObj.GetPrimitiveCount(),
		},
		"limits": map[string]interface{}{
			"width":         map[string]int{"min": 16, "max": 2000},
			"height":        map[string]int{"min": 16, "max": 2000},
			"superSampling": map[string]int{"min": 1, "max": MaxSuperSample},
			"levels":        map[string]int{"min": 1, "max": MaxLevels},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// parseCommonSceneParams parses the parameters shared by render and inspect
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	// Parse scene name (string parameter, validated when the scene is created)
	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = "default" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 16, 2000); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 16, 2000); err != nil {
		return err
	}
	return nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	// Parse common scene parameters using shared function
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	query := r.URL.Query()
	var err error
	if req.Levels, err = parseLevelsParam(query, "levels", []int{1, 2, 4}); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tileSize", DefaultTileSize, 8, 512); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", 1.0, 0.1, 5.0); err != nil {
		return nil, err
	}

	// Performance warning
	finalSS := req.Levels[len(req.Levels)-1]
	if req.Width*req.Height*finalSS*finalSS > 2000*2000 {
		s.logger.Warn("large render requested, may render slowly",
			"width", req.Width, "height", req.Height, "ss", finalSS)
	}

	return req, nil
}

// createScene builds the requested scene. A zero width or height keeps the
// scene's own raster; changing it keeps pixels square.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene, geometry.CameraConfig{Width: req.Width, Height: req.Height})
	if err != nil {
		return nil, err
	}
	if req.Width > 0 || req.Height > 0 {
		cam := &sceneObj.CameraConfig
		cam.AspectRatio = float64(cam.Width) / float64(cam.Height)
	}
	req.Width, req.Height = sceneObj.CameraConfig.Width, sceneObj.CameraConfig.Height
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseLevelsParam parses a comma-separated list of super-sampling factors
func parseLevelsParam(values url.Values, key string, defaultValue []int) ([]int, error) {
	value := values.Get(key)
	if value == "" {
		return defaultValue, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) > MaxLevels {
		return nil, fmt.Errorf("%s accepts at most %d passes, got: %d", key, MaxLevels, len(parts))
	}
	levels := make([]int, 0, len(parts))
	for _, part := range parts {
		ss, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %s", key, value)
		}
		if ss < 1 || ss > MaxSuperSample {
			return nil, fmt.Errorf("%s entries must be between 1 and %d, got: %d", key, MaxSuperSample, ss)
		}
		levels = append(levels, ss)
	}
	return levels, nil
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
