package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Config holds command line options
type Config struct {
	SceneType string
	Width     int
	Samples   int
	MaxDepth  int
	Seed      int64
	Format    string
	Output    string // Empty writes to stdout
	Normals   bool
	Quiet     bool
	List      bool
	Help      bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp(os.Stdout)
		return
	}
	if config.List {
		listScenes(os.Stdout)
		return
	}

	if err := run(config, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene to render (see -list)")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 keeps the scene default)")
	flag.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 keeps the scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum bounce depth (0 keeps the scene default)")
	flag.Int64Var(&config.Seed, "seed", renderer.DefaultSeed, "Random seed for sampling and random scene layouts")
	flag.StringVar(&config.Format, "format", "ppm", "Output format: 'ppm' or 'png'")
	flag.StringVar(&config.Output, "output", "", "Output file (default stdout)")
	flag.BoolVar(&config.Normals, "normals", false, "Color surfaces by normal instead of path tracing")
	flag.BoolVar(&config.Quiet, "quiet", false, "Suppress progress output")
	flag.BoolVar(&config.List, "list", false, "List available scenes")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "Weekend Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintln(w)
	listScenes(w)
}

func listScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-16s %s\n", info.Name, info.Description)
	}
}

// createScene builds the named scene with command line overrides applied
func createScene(config Config) (*scene.Scene, error) {
	overrides := renderer.CameraConfig{
		Width:           config.Width,
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
	}
	return scene.NewScene(config.SceneType, config.Seed, overrides)
}

// run renders the configured scene, writing the image to stdout or the output file
// and progress to stderr
func run(config Config, stdout, stderr io.Writer) error {
	format := strings.ToLower(config.Format)
	if format != "ppm" && format != "png" {
		return fmt.Errorf("unsupported format %q", config.Format)
	}
	if config.Width < 0 || config.Samples < 0 || config.MaxDepth < 0 {
		return fmt.Errorf("width, samples and depth must not be negative")
	}

	s, err := createScene(config)
	if err != nil {
		return err
	}

	rt, err := s.NewRaytracer()
	if err != nil {
		return err
	}
	rt.SetSampler(core.NewSeededSampler(config.Seed))
	if config.Normals {
		rt.SetIntegrator(integrator.NewNormalIntegrator(s.Background))
	}

	var logger core.Logger = renderer.NopLogger{}
	if !config.Quiet {
		logger = renderer.NewWriterLogger(stderr)
	}
	rt.SetLogger(logger)

	camera := rt.Camera()
	logger.Printf("Rendering scene %s at %dx%d, %d samples, depth %d\n",
		s.Name, camera.ImageWidth(), camera.ImageHeight(), camera.SamplesPerPixel(), camera.MaxDepth())

	img, stats := rt.Render()
	logger.Printf("Render completed in %v (%d samples, %.1f per pixel)\n",
		stats.Elapsed, stats.TotalSamples, stats.AverageSamples)

	if err := writeImage(img, format, config.Output, stdout); err != nil {
		return err
	}
	if config.Output != "" {
		logger.Printf("Render saved as %s\n", config.Output)
	}
	return nil
}

func writeImage(img *core.Image, format, path string, stdout io.Writer) error {
	if path == "" {
		if format == "png" {
			return output.EncodePNG(stdout, img)
		}
		return output.WritePPM(stdout, img)
	}

	if format == "png" {
		return output.SavePNG(path, img)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	if err := output.WritePPM(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
