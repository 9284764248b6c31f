package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kalamapona/pkg/errors"
	"github.com/matzehuels/kalamapona/pkg/observability"
)

// logHooks reports pipeline events through the CLI logger at debug level.
type logHooks struct {
	observability.NoopComposeHooks
	logger *log.Logger
}

func (h logHooks) OnComposeComplete(_ context.Context, text string, placements int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("compose failed", "text", text, "code", errors.GetCode(err), "duration", d)
		return
	}
	h.logger.Debug("compose finished", "text", text, "placements", placements, "duration", d)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "duration", d.Round(time.Microsecond))
}
