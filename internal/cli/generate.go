package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/framesketch/framesketch/pkg/pipeline"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	archetype string   // page archetype override (empty defers to the classifier)
	style     string   // visual fidelity: low-fi, mid-fi, high-fi, sketch
	width     int      // canvas width override in pixels
	height    int      // canvas height override in pixels
	annotate  bool     // draw component labels on the raster output
	enhance   bool     // run the diffusion enhancement pass
	steps     int      // diffusion inference steps
	guidance  float64  // diffusion guidance scale
	output    string   // output file or base path
	formats   []string // output formats: png, svg, json
	noCache   bool     // disable the result cache
	refresh   bool     // recompute even when a cached result exists
}

// generateCommand creates the generate command, the main entry point of the
// tool: prompt in, wireframe files out.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Compile a text prompt into wireframe files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runGenerate(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.archetype, "archetype", "a", "", "page archetype (landing_page, dashboard, form_page, ...)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "visual fidelity: low-fi (default), mid-fi, high-fi, sketch")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels (200-2000)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels (200-2000)")
	cmd.Flags().BoolVar(&opts.annotate, "annotate", true, "draw component labels on the PNG output")
	cmd.Flags().BoolVar(&opts.enhance, "enhance", true, "refine the PNG with the diffusion sidecar when available")
	cmd.Flags().IntVar(&opts.steps, "steps", 0, "diffusion inference steps (1-50)")
	cmd.Flags().Float64Var(&opts.guidance, "guidance", 0, "diffusion guidance scale (1-20)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png, svg (default both), json (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the local result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")

	return cmd
}

// runGenerate executes the pipeline and writes one file per requested format.
func (c *CLI) runGenerate(cmd *cobra.Command, prompt string, opts *generateOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Prompt:        prompt,
		Archetype:     wireframe.Archetype(opts.archetype),
		Width:         opts.width,
		Height:        opts.height,
		Fidelity:      wireframe.Fidelity(opts.style),
		Annotations:   &opts.annotate,
		Enhance:       &opts.enhance,
		Steps:         opts.steps,
		GuidanceScale: opts.guidance,
		Refresh:       opts.refresh,
	}

	sp := newSpinner("Generating wireframe")
	sp.Start()

	result, err := runner.Execute(cmd.Context(), pipeOpts)
	if err != nil {
		sp.Stop()
		return err
	}

	sp.StopWithSuccess(fmt.Sprintf("Generated %s wireframe (%s)",
		result.Classification.Archetype, result.Meta.CanvasSize))

	if opts.enhance && !result.Meta.AIEnhanced && cmd.Flags().Changed("enhance") {
		printWarning("Enhancement unavailable, keeping the algorithmic rendering")
	}

	base := basePath(opts.output, prompt)
	for _, format := range opts.formats {
		path, err := writeArtifact(base, format, result)
		if err != nil {
			return err
		}
		printFile(path)
	}

	printStats(result.Meta.ComponentCount, result.Meta.GenerationTimeMS, result.CacheInfo.ResultHit)
	return nil
}

// writeArtifact writes one output format next to base and returns the path.
func writeArtifact(base, format string, result *pipeline.Result) (string, error) {
	var data []byte
	switch format {
	case "png":
		data = result.PNG
	case "svg":
		data = result.SVG
	case "json":
		var err error
		data, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
	}

	path := base + "." + format
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
