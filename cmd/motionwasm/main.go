//go:build js && wasm

// Command motionwasm drives the portfolio page's scroll animation, nav
// highlighting and section reveals in the browser. Build with
// GOOS=js GOARCH=wasm.
package main

import (
	"context"

	"github.com/tharindu1999/portfolio/internal/dom"
	"github.com/tharindu1999/portfolio/internal/logger"
	"github.com/tharindu1999/portfolio/internal/view"
)

func main() {
	w := dom.NewWindow()
	cfg, problems := dom.ReadSettings(w.Dataset)
	_ = logger.Init(cfg.LogLevel)
	log := logger.Named("motion")
	ctx := context.Background()
	for _, p := range problems {
		log.Warn(ctx, "bad page setting, using default", logger.String("value", p))
	}

	v := view.New(w, dom.NewRenderer(w, cfg.Hero),
		view.WithReferenceY(cfg.ReferenceY),
		view.WithHero(cfg.Hero),
		view.WithLogger(log),
	)
	v.Mount(ctx)
	w.BindNavigation(v.ScrollTo)
	log.Info(ctx, "scroll tracking started",
		logger.Float64("reference_y", cfg.ReferenceY),
		logger.String("hero", string(cfg.Hero)))

	select {}
}
