//go:build js && wasm

package engine

import (
	"context"
	"fmt"

	"hearth/internal/logger"
	"hearth/pkg/config"
)

type webPlatform struct {
	cfg        *config.Config
	canvasSize Size
}

// DefaultPlatform returns the canvas-backed browser platform
func DefaultPlatform(cfg *config.Config) Platform {
	return &webPlatform{cfg: cfg}
}

func (p *webPlatform) WindowAttributes(base WindowAttributes) (WindowAttributes, error) {
	id := p.cfg.Web.CanvasID
	canvas, err := LookupCanvas(id)
	if err != nil {
		return base, err
	}

	p.canvasSize = CanvasSize(canvas)
	base.CanvasID = id
	base.Size = p.canvasSize
	base.Title = p.cfg.Window.Title
	return base, nil
}

func (p *webPlatform) OnFirstWindow(ctx context.Context, _ Window, task StartupTask) (Size, error) {
	logger.InstallPanicHook()
	if err := logger.InitConsole(p.cfg.Log.Level); err != nil {
		return p.canvasSize, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.Default()
	log.Infof("Canvas dimensions: (%d x %d)", p.canvasSize.Width, p.canvasSize.Height)

	Spawn(ctx, task, func(err error) {
		if err != nil {
			log.Errorf("startup task: %v", err)
		}
	})
	return p.canvasSize, nil
}
