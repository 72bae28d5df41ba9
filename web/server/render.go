package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Request limits
const (
	maxWidth   = 1920
	maxSamples = 1000
	maxDepth   = 100
)

// RenderRequest represents the query parameters of a render
type RenderRequest struct {
	Scene   string
	Width   int
	Samples int
	Depth   int
	Seed    int64
	Format  string // "png" or "ppm"
	Normals bool
}

// parseRenderRequest parses and bounds the query parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: "png"}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}
	if format := query.Get("format"); format != "" {
		if format != "png" && format != "ppm" {
			return nil, fmt.Errorf("format must be png or ppm, got: %s", format)
		}
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, maxWidth); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 10, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 10, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Seed, err = parseSeedParam(query, renderer.DefaultSeed); err != nil {
		return nil, err
	}
	if req.Normals, err = parseBoolParam(query, "normals"); err != nil {
		return nil, err
	}

	return req, nil
}

// createScene builds the requested scene with the request's camera overrides
func createScene(req *RenderRequest) (*scene.Scene, error) {
	s, err := scene.NewScene(req.Scene, req.Seed, renderer.CameraConfig{
		Width:           req.Width,
		SamplesPerPixel: req.Samples,
	})
	if err != nil {
		return nil, err
	}
	// Depth 0 is a valid request but would be ignored by the override merge
	s.CameraConfig.MaxDepth = req.Depth
	return s, nil
}

// handleRender renders a scene synchronously and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := createScene(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	rt, err := sceneObj.NewRaytracer()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rt.SetSampler(core.NewSeededSampler(req.Seed))
	if req.Normals {
		rt.SetIntegrator(integrator.NewNormalIntegrator(sceneObj.Background))
	}

	renderID := fmt.Sprintf("render-%d", s.renderID.Add(1))
	logger := NewWebLogger(renderID, s.logger)
	rt.SetLogger(logger)

	logger.Printf("Rendering %s at width %d, %d samples, depth %d\n", req.Scene, req.Width, req.Samples, req.Depth)
	img, stats := rt.Render()
	logger.Printf("Completed in %v\n", stats.Elapsed)

	var buf bytes.Buffer
	contentType := "image/png"
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = output.WritePPM(&buf, img)
	} else {
		err = output.EncodePNG(&buf, img)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
