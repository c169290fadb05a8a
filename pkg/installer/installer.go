// Package installer installs the application's dependencies into the runtime.
package installer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mumega/launchpad/pkg/check"
	"github.com/mumega/launchpad/pkg/runner"
)

// StampFile is the name of the digest file kept inside the runtime directory.
const StampFile = ".launchpad-manifest"

// DefaultTimeout applies when Timeout is zero.
const DefaultTimeout = 10 * time.Minute

// stderrTail is how many installer stderr lines are attached to a failure.
const stderrTail = 5

// Progress is shown while the installer runs.
type Progress interface {
	Start()
	Stop()
}

// Installer runs `<pip> install -r <manifest>`.
type Installer struct {
	Pip          string        // installer executable, already resolved against the runtime
	Manifest     string        // manifest as shown to the operator
	ManifestPath string        // manifest path on disk
	StampPath    string        // where the manifest digest is recorded; empty disables it
	Cache        bool          // skip the installer when the digest is unchanged
	Timeout      time.Duration // installer deadline (default: 10m)
	Env          []string      // runtime environment
	Runner       runner.Runner // injected for testing
	Files        Files         // injected for testing
	Progress     Progress      // optional
}

// Run installs the dependencies. Any installer failure is fatal.
func (i *Installer) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:  "Dependencies",
		Fatal: true,
	}

	digest, err := Digest(i.Files, i.ManifestPath)
	if err != nil {
		return result.Fail(fmt.Sprintf("cannot read manifest %s", i.Manifest), err)
	}

	if i.Cache && i.StampPath != "" && readStamp(i.Files, i.StampPath) == digest {
		result.AddDetailf("manifest unchanged: %s", i.Manifest)
		return result.Pass()
	}

	timeout := i.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if i.Progress != nil {
		i.Progress.Start()
	}
	_, stderr, err := i.Runner.Run(ctx, runner.Command{
		Name: i.Pip,
		Args: []string{"install", "-r", i.ManifestPath},
		Env:  i.Env,
	})
	if i.Progress != nil {
		i.Progress.Stop()
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return result.Failf("Dependency installation timed out after %s", timeout)
		}
		if code := runner.ExitCode(err); code > 0 {
			result.Fail(fmt.Sprintf("Dependency installation failed (exit %d)", code), err)
		} else {
			result.Fail(fmt.Sprintf("Dependency installation failed: %v", err), err)
		}
		for _, line := range runner.Tail(stderr, stderrTail) {
			result.AddDetail(line)
		}
		return result
	}

	result.AddDetailf("installed from %s", i.Manifest)
	if i.StampPath != "" {
		if err := i.Files.WriteFile(i.StampPath, []byte(digest+"\n")); err != nil {
			result.AddDetailf("could not record manifest digest: %v", err)
		}
	}
	return result.Pass()
}
