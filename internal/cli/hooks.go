package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports library events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnArrange(_ context.Context, axis string, count int) {
	h.logger.Debug("arranging modules", "axis", axis, "count", count)
}

func (h *logHooks) OnBuildComplete(_ context.Context, board string, components int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("board build failed", "board", board, "err", err)
		return
	}
	h.logger.Debug("board built", "board", board, "components", components, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
