package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/captionstyle/pkg/observability"
)

// logHooks reports pipeline and file events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.FileHooks     = logHooks{}
)

// EnableTracing registers hooks that log every pipeline stage and file access
// at debug level. main calls it for --verbose.
func (c *CLI) EnableTracing() {
	h := logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetFileHooks(h)
}

func (h logHooks) OnResolveStart(_ context.Context, source string) {
	h.logger.Debug("resolve", "source", source)
}

func (h logHooks) OnResolveComplete(_ context.Context, source string, d time.Duration, err error) {
	h.done("resolved", err, "source", source, "duration", d)
}

func (h logHooks) OnCompileStart(_ context.Context, profile string) {
	h.logger.Debug("compile", "profile", profile)
}

func (h logHooks) OnCompileComplete(_ context.Context, profile string, features int, d time.Duration, err error) {
	h.done("compiled", err, "profile", profile, "features", features, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("rendered", err, "formats", formats, "duration", d)
}

func (h logHooks) OnFileLoad(_ context.Context, kind, path string, d time.Duration, err error) {
	h.done("loaded "+kind+" file", err, "path", path, "duration", d)
}

func (h logHooks) OnArtifactWrite(_ context.Context, path string, size int, err error) {
	h.done("wrote artifact", err, "path", path, "bytes", size)
}

func (h logHooks) done(msg string, err error, keyvals ...any) {
	if err != nil {
		keyvals = append(keyvals, "err", err)
	}
	h.logger.Debug(msg, keyvals...)
}
