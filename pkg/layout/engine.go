package layout

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
)

// engineArgs request plain-format output with the y axis inverted so the
// origin is top-left.
var engineArgs = []string{"-Tplain", "-y"}

// Engine invokes the external layout process.
type Engine struct {
	binary string
}

// EngineOptions configures the external process.
type EngineOptions struct {
	// Binary overrides the engine executable. Empty selects the
	// platform default ("dot", or "dot.exe" on Windows).
	Binary string
}

// NewEngine creates an engine invoker.
func NewEngine(opts EngineOptions) *Engine {
	binary := opts.Binary
	if binary == "" {
		binary = defaultBinary()
	}
	return &Engine{binary: binary}
}

// Binary returns the executable this engine invokes.
func (e *Engine) Binary() string { return e.binary }

// Run pipes the document through the engine and returns its full plain
// output. The document is written to the process's stdin, which is then
// closed; stdout is read to end-of-stream and the process runs to
// completion.
func (e *Engine) Run(ctx context.Context, document string) (string, error) {
	path, err := exec.LookPath(e.binary)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEngineMissing, err,
			"failed to run %q: check that it is installed and on the PATH", e.binary)
	}

	cmd := exec.CommandContext(ctx, path, engineArgs...)
	cmd.Stdin = strings.NewReader(document)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.Wrap(errors.ErrCodeEngineIO, err, "layout engine failed: %s", msg)
	}
	return stdout.String(), nil
}

func defaultBinary() string {
	if runtime.GOOS == "windows" {
		return "dot.exe"
	}
	return "dot"
}
