package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/utils"
)

// outputTailLines is how many trailing output lines a successful
// regeneration reports.
const outputTailLines = 20

// Regenerator invokes the external catalog generation script through an
// injected command runner. Its timeout is independent of any HTTP request
// timeout.
type Regenerator struct {
	script  string
	timeout time.Duration
	runner  domain.CommandRunner
	log     *utils.Logger
}

// NewRegenerator creates a regenerator for the given script path.
func NewRegenerator(script string, timeout time.Duration, runner domain.CommandRunner, log *utils.Logger) *Regenerator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if log == nil {
		log = utils.NopLogger()
	}
	return &Regenerator{
		script:  script,
		timeout: timeout,
		runner:  runner,
		log:     log.WithComponent("regenerator"),
	}
}

// Run executes the generation script and returns the tail of its combined
// output. A missing script is ErrScriptNotFound; a failed run surfaces the
// captured output as the error message.
func (r *Regenerator) Run(ctx context.Context) (string, error) {
	if _, err := os.Stat(r.script); err != nil {
		return "", &domain.ScriptNotFoundError{Path: r.script}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	output, err := r.runner.Run(ctx, r.script)
	if err != nil {
		r.log.Error().
			Err(err).
			Dur("elapsed", time.Since(start)).
			Msg("catalog regeneration failed")
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("catalog regeneration failed: %s", detail)
	}

	r.log.Info().
		Dur("elapsed", time.Since(start)).
		Msg("catalog regenerated")

	return tailLines(string(output), outputTailLines), nil
}

func tailLines(output string, n int) string {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
