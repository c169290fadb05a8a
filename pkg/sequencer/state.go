package sequencer

// State is a stage of the startup sequence. States only move forward.
type State int

const (
	StateCheckingEnv State = iota
	StateCheckingFiles
	StateCheckingConfig
	StateInstallingDeps
	StateCheckingDB
	StateInitDB
	StateLaunching
	StateRunning
	StateAborted
)

var stateNames = [...]string{
	StateCheckingEnv:    "CHECKING_ENV",
	StateCheckingFiles:  "CHECKING_FILES",
	StateCheckingConfig: "CHECKING_CONFIG",
	StateInstallingDeps: "INSTALLING_DEPS",
	StateCheckingDB:     "CHECKING_DB",
	StateInitDB:         "INIT_DB",
	StateLaunching:      "LAUNCHING",
	StateRunning:        "RUNNING",
	StateAborted:        "ABORTED",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateRunning || s == StateAborted
}

// Process exit codes.
const (
	ExitOK             = 0
	ExitRuntimeMissing = 2
	ExitFileMissing    = 3
	ExitInstallFailed  = 4
	ExitDatabaseConfig = 5
	ExitLaunchFailed   = 6
)
