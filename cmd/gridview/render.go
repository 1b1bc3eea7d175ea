package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gridview"
)

// renderAll renders every frame file to a PNG preview, cfg.Jobs at a time.
// Each frame gets its own surface and renderer.
func renderAll(ctx context.Context, cfg *config, files []string) error {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for _, file := range files {
		g.Go(func() error {
			return renderFile(ctx, cfg, file)
		})
	}
	return g.Wait()
}

func renderFile(ctx context.Context, cfg *config, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	frame, err := gridview.DecodeFrame(data)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer dc.Close()

	r := gridview.NewRenderer(dc, cfg.Width, cfg.Height, cfg.GridWidth, cfg.GridHeight,
		gridview.WithResourceDir(cfg.Resources),
		gridview.WithFontSize(cfg.FontSize),
		gridview.WithGridLines(cfg.GridLines),
		gridview.WithGridColor(cfg.GridColor),
	)
	for _, layer := range cfg.HideLayers {
		r.HideLayer(layer)
	}
	r.DrawFrame(frame)

	waitCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := r.Wait(waitCtx); err != nil {
		return fmt.Errorf("%s: waiting for images: %w", file, err)
	}

	out := filepath.Join(cfg.OutDir, strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))+".png")
	if err := dc.SavePNG(out); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	shapes := 0
	for _, layer := range frame {
		shapes += len(layer)
	}
	slog.Info("rendered frame", "in", file, "out", out, "layers", len(frame), "shapes", shapes)
	return nil
}
