// Command gridview renders portrayal frames to PNG previews.
//
// Each argument is a JSON file holding one frame, keyed by layer. The
// preview is written to the output directory under the same base name.
//
//	gridview --grid-width 20 --grid-height 20 --grid-lines step-*.json
//
// Flags can also be set through GRIDVIEW_* environment variables
// (GRIDVIEW_GRID_WIDTH=20) or a YAML file passed with --config.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"
	"github.com/spf13/pflag"

	"github.com/gogpu/gridview"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, files, err := loadConfig(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.level()}))
	slog.SetDefault(logger)
	gridview.SetLogger(logger)
	gg.SetLogger(logger)

	if len(files) == 0 {
		newFlagSet().Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := renderAll(ctx, cfg, files); err != nil {
		slog.Error("render failed", "err", err)
		return 1
	}
	return 0
}
