package config

import (
	"path/filepath"
	"runtime"
	"time"
)

// Layout names the files and directories of the application checkout.
// Relative paths are resolved against the directory passed to Load.
type Layout struct {
	// Root is the application directory. Not read from the environment.
	Root string `mapstructure:"-"`
	// Venv is the local isolated runtime directory.
	Venv string `mapstructure:"venv" default:"venv"`
	// Entrypoint is the application's main script.
	Entrypoint string `mapstructure:"entrypoint" default:"app.py"`
	// Manifest lists the dependencies to install.
	Manifest string `mapstructure:"manifest" default:"requirements.txt"`
	// Models is the domain-models module the application imports at startup.
	Models string `mapstructure:"models" default:"models/frc_models.py"`
	// InitScript is the optional database initialization script.
	InitScript string `mapstructure:"init_script" default:"init_db.py"`
	// EnvFile is the optional configuration file.
	EnvFile string `mapstructure:"env_file" default:".env"`
}

// Path resolves rel against the layout root.
func (l Layout) Path(rel string) string {
	if filepath.IsAbs(rel) || l.Root == "" || l.Root == "." {
		return rel
	}
	return filepath.Join(l.Root, rel)
}

// RequiredFiles returns the files whose absence aborts startup, in check order.
func (l Layout) RequiredFiles() []string {
	return []string{l.Entrypoint, l.Manifest, l.Models}
}

// Runtime configures the external tools driven by the launcher.
type Runtime struct {
	// Python is the interpreter used for the init script and the application.
	Python string `mapstructure:"python" default:"python"`
	// Pip is the dependency installer.
	Pip string `mapstructure:"pip" default:"pip"`
	// MinPython is the lowest interpreter version accepted without a warning.
	MinPython string `mapstructure:"min_python" default:"3.8"`
	// InstallCache skips the installer when the manifest digest is unchanged.
	InstallCache bool `mapstructure:"install_cache" default:"false"`
	// InstallTimeout bounds the installer run.
	InstallTimeout time.Duration `mapstructure:"install_timeout" default:"10m"`
	// InitTimeout bounds the database initialization script.
	InitTimeout time.Duration `mapstructure:"init_timeout" default:"5m"`
}

// Server describes where the launched application listens. It only feeds the banner.
type Server struct {
	Name      string `mapstructure:"name" default:"Mumega FRC Platform"`
	Host      string `mapstructure:"host" default:"localhost"`
	Port      string `mapstructure:"port" default:"8000"`
	AdminPath string `mapstructure:"admin_path" default:"/admin"`
	DocsPath  string `mapstructure:"docs_path" default:"/docs"`
	UIPath    string `mapstructure:"ui_path" default:"/static/index_user_friendly.html"`
}

// URL returns the absolute URL of path on the application server.
func (s Server) URL(path string) string {
	return "http://" + s.Host + ":" + s.Port + path
}

// Handoff modes.
const (
	HandoffExec      = "exec"
	HandoffSupervise = "supervise"
)

// Handoff selects how control passes to the application.
type Handoff struct {
	// Mode is exec (replace the launcher) or supervise (run as a child).
	Mode string `mapstructure:"mode" default:""`
}

// DefaultHandoffMode returns exec where the platform can replace the process.
func DefaultHandoffMode() string {
	if runtime.GOOS == "windows" {
		return HandoffSupervise
	}
	return HandoffExec
}
