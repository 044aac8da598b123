//go:build !js

package engine

import (
	"context"
	"fmt"

	"hearth/internal/logger"
	"hearth/pkg/config"
)

type desktopPlatform struct {
	cfg *config.Config
}

// DefaultPlatform returns the native window platform
func DefaultPlatform(cfg *config.Config) Platform {
	return &desktopPlatform{cfg: cfg}
}

func (p *desktopPlatform) WindowAttributes(base WindowAttributes) (WindowAttributes, error) {
	base.Title = p.cfg.Window.Title
	base.Size = Size{Width: p.cfg.Window.Width, Height: p.cfg.Window.Height}
	base.Resizable = p.cfg.Window.Resizable
	base.VSync = p.cfg.Window.VSync
	return base, nil
}

func (p *desktopPlatform) OnFirstWindow(ctx context.Context, w Window, task StartupTask) (Size, error) {
	size := w.InnerSize()

	err := logger.Init(logger.Options{
		Level:  p.cfg.Log.Level,
		File:   p.cfg.Log.File,
		Colors: p.cfg.Log.Colors,
	})
	if err != nil {
		return size, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := BlockOn(ctx, task); err != nil {
		return size, fmt.Errorf("startup task: %w", err)
	}
	return size, nil
}
