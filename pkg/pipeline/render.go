package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/observability"
	"github.com/matzehuels/kalamapona/pkg/render/sink"
)

// Render generates output artifacts in the requested formats, keyed by
// format. An empty format list renders [DefaultFormats].
func (r *Runner) Render(ctx context.Context, res *Result, formats []string) (map[string][]byte, error) {
	if res == nil || res.Canvas == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{
		sink.WithText(res.Text),
		sink.WithSources(res.Sources),
		sink.WithFill(r.Config.Fill),
	}

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		start := time.Now()
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(res.Canvas, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(res.Canvas,
				sink.WithJSONText(res.Text),
				sink.WithJSONSources(res.Sources))
		case FormatPNG:
			data, err = sink.RenderPNG(res.Canvas, sink.WithPNGSVGOptions(svgOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(res.Canvas, svgOpts...)
		}

		observability.Compose().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			if errors.GetCode(err) == "" {
				err = errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
			}
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// Write renders res and writes one file per format into dir, creating dir
// if needed. It returns the written paths in format order. The phrase is
// validated as a file name before anything is rendered.
func (r *Runner) Write(ctx context.Context, res *Result, dir string, formats []string) ([]string, error) {
	if res == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to write")
	}
	if err := errors.ValidateOutputName(res.Text); err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		formats = DefaultFormats
	}

	artifacts, err := r.Render(ctx, res, formats)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create output directory %s", dir)
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := filepath.Join(dir, OutputName(res.Text, format))
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		r.Logger.Debug("wrote output", "path", path, "bytes", len(artifacts[format]))
		paths = append(paths, path)
	}
	return paths, nil
}
