package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nfsf/pkg/observability"
)

// debugHooks traces pipeline stages at debug level. It is registered for
// --verbose runs only.
type debugHooks struct {
	observability.NoopPipelineHooks
	logger *log.Logger
}

func (h debugHooks) OnParseStart(_ context.Context, input string) {
	h.logger.Debug("parse started", "file", input)
}

func (h debugHooks) OnParseComplete(_ context.Context, input string, definitions int, d time.Duration, err error) {
	h.done("parse", err, "file", input, "definitions", definitions, "duration", d)
}

func (h debugHooks) OnExpandStart(_ context.Context, root string) {
	h.logger.Debug("expand started", "root", root)
}

func (h debugHooks) OnExpandComplete(_ context.Context, root string, pairs int, d time.Duration, err error) {
	h.done("expand", err, "root", root, "pairs", pairs, "duration", d)
}

func (h debugHooks) OnRenderStart(_ context.Context, format string, polylines int) {
	h.logger.Debug("render started", "format", format, "polylines", polylines)
}

func (h debugHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.done("render", err, "format", format, "bytes", size, "duration", d)
}

func (h debugHooks) done(stage string, err error, kv ...any) {
	if err != nil {
		h.logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" finished", kv...)
}
