package venv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumega/launchpad/pkg/check"
	"github.com/mumega/launchpad/pkg/runner"
	"github.com/mumega/launchpad/pkg/testutil"
)

type statFS = testutil.StatFS

func pythonRunner(out string, err error) *runner.MockRunner {
	return &runner.MockRunner{RunFunc: func(_ context.Context, cmd runner.Command) (string, string, error) {
		return out, "", err
	}}
}

func TestActivate_InheritedRuntimeSkipsActivation(t *testing.T) {
	fs := statFS{}
	a := &Activator{
		Dir:     "venv",
		Display: "venv",
		Active:  "/opt/venv",
		Environ: []string{"PATH=/usr/bin"},
		FS:      fs,
	}

	rt, result := a.Activate(context.Background())

	assert.Equal(t, check.StatusOK, result.Status)
	assert.False(t, rt.Activated)
	assert.Equal(t, "/opt/venv", rt.Dir)
	assert.Equal(t, []string{"PATH=/usr/bin"}, rt.Environ)
	assert.True(t, testutil.ContainsDetail(result.Details, "active: /opt/venv"))
}

func TestActivate_MissingRuntimeIsFatal(t *testing.T) {
	tests := []struct {
		name string
		fs   statFS
	}{
		{"absent", statFS{}},
		{"file instead of directory", statFS{"venv": false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Activator{Dir: "venv", Display: "venv", FS: tt.fs, Runner: pythonRunner("Python 3.11.4", nil), Python: "python"}

			_, result := a.Activate(context.Background())

			assert.True(t, result.Aborts())
			assert.True(t, errors.Is(result.Err, ErrRuntimeMissing))
			assert.True(t, testutil.ContainsDetail(result.Details, "Virtual environment not found: venv"))
		})
	}
}

func TestActivate_LocalRuntime(t *testing.T) {
	dir := t.TempDir()
	venvDir := filepath.Join(dir, "venv")
	require.NoError(t, os.Mkdir(venvDir, 0o755))

	a := &Activator{
		Dir:     venvDir,
		Display: "venv",
		Environ: []string{"HOME=/root", "PATH=/usr/bin", "PYTHONHOME=/usr", "VIRTUAL_ENV="},
		FS:      &RealFileStater{},
	}

	rt, result := a.Activate(context.Background())

	require.Equal(t, check.StatusOK, result.Status, result.Details)
	assert.True(t, rt.Activated)
	assert.Equal(t, venvDir, rt.Dir)

	venv, _ := lookup(rt.Environ, "VIRTUAL_ENV")
	assert.Equal(t, venvDir, venv)
	path, _ := lookup(rt.Environ, "PATH")
	assert.True(t, strings.HasPrefix(path, binDir(venvDir)+string(os.PathListSeparator)), path)
	_, hasHome := lookup(rt.Environ, "PYTHONHOME")
	assert.False(t, hasHome)
	home, _ := lookup(rt.Environ, "HOME")
	assert.Equal(t, "/root", home)
	assert.Equal(t, "PYTHONHOME=/usr", a.Environ[2], "snapshot must not be modified")
}

func TestActivate_InterpreterVersion(t *testing.T) {
	tests := []struct {
		name       string
		out        string
		err        error
		wantStatus check.Status
		wantDetail string
	}{
		{"recent", "Python 3.11.4\n", nil, check.StatusOK, "python: 3.11.4"},
		{"too old", "Python 3.6.9\n", nil, check.StatusWarn, "older than required 3.8.0"},
		{"not runnable", "", errors.New("exec: not found"), check.StatusWarn, "not runnable"},
		{"garbage", "hello", nil, check.StatusWarn, "could not read interpreter version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Activator{
				Active:    "/opt/venv",
				Python:    "python",
				MinPython: "3.8",
				FS:        statFS{},
				Runner:    pythonRunner(tt.out, tt.err),
			}

			_, result := a.Activate(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status, result.Details)
			assert.False(t, result.Aborts())
			assert.True(t, testutil.ContainsDetail(result.Details, tt.wantDetail), result.Details)
		})
	}
}

func TestActivate_Python2VersionOnStderr(t *testing.T) {
	r := &runner.MockRunner{RunFunc: func(context.Context, runner.Command) (string, string, error) {
		return "", "Python 2.7.18\n", nil
	}}
	a := &Activator{Active: "/opt/venv", Python: "python", MinPython: "3.8", FS: statFS{}, Runner: r}

	_, result := a.Activate(context.Background())

	assert.Equal(t, check.StatusWarn, result.Status)
	assert.True(t, testutil.ContainsDetail(result.Details, "python: 2.7.18"))
}

func TestRuntimeExecutable(t *testing.T) {
	bin := binDir("/opt/venv")
	name := "pip"
	if filepath.Separator == '\\' {
		name = "pip.exe"
	}
	rt := Runtime{Dir: "/opt/venv", BinDir: bin}

	assert.Equal(t, filepath.Join(bin, name), rt.Executable("pip", statFS{filepath.Join(bin, name): false}))
	assert.Equal(t, "pip", rt.Executable("pip", statFS{}))
	assert.Equal(t, "pip", Runtime{}.Executable("pip", statFS{}))
}

func TestActivatedEnviron_NoPath(t *testing.T) {
	env := activatedEnviron([]string{"HOME=/root"}, "/opt/venv")
	path, ok := lookup(env, "PATH")
	assert.True(t, ok)
	assert.Equal(t, binDir("/opt/venv"), path)
}
