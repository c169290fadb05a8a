// Package dbinit runs the application's optional database initialization script.
package dbinit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mumega/launchpad/pkg/check"
	"github.com/mumega/launchpad/pkg/runner"
)

// FileStater provides file system stat operations for testing.
type FileStater interface {
	Stat(path string) (os.FileInfo, error)
}

// DefaultTimeout applies when Timeout is zero.
const DefaultTimeout = 5 * time.Minute

// Initializer runs `<python> <script>` when the script exists.
type Initializer struct {
	Python     string        // interpreter, already resolved against the runtime
	Script     string        // script as shown to the operator
	ScriptPath string        // script path on disk
	Timeout    time.Duration // script deadline (default: 5m)
	Env        []string      // runtime environment
	Runner     runner.Runner // injected for testing
	FS         FileStater    // injected for testing
}

// Run executes the script. A missing script is skipped silently and a
// failing one produces a warning: the sequence continues either way.
func (i *Initializer) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name: "Database initialization",
	}

	info, err := i.FS.Stat(i.ScriptPath)
	if err != nil || info.IsDir() {
		return result.Skip(fmt.Sprintf("no %s", i.Script))
	}

	timeout := i.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, stderr, err := i.Runner.Run(ctx, runner.Command{
		Name: i.Python,
		Args: []string{i.ScriptPath},
		Env:  i.Env,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return result.Warnf("%s timed out after %s, continuing", i.Script, timeout)
		}
		result.Warn(fmt.Sprintf("%s failed, continuing: %v", i.Script, err), err)
		for _, line := range runner.Tail(stderr, 3) {
			result.AddDetail(line)
		}
		return result
	}

	result.AddDetailf("ran %s", i.Script)
	return result.Pass()
}
