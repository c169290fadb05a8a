package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// Result holds the outcome of a single startup step.
type Result struct {
	Name    string   // e.g., "Virtual environment", "Required files"
	Status  Status   // OK, WARN, FAIL or SKIP
	Fatal   bool     // a FAIL result aborts the sequence when set
	Message string   // the failure or warning, set by Fail and Warn
	Details []string // human-readable details
	Err     error    // underlying error for failures and warnings
}

// OK returns true if the step passed without reservations.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Passed returns true unless the step failed. Warnings and skips pass.
func (r Result) Passed() bool {
	return r.Status != StatusFail
}

// Aborts reports whether the result must halt the sequence.
func (r Result) Aborts() bool {
	return r.Status == StatusFail && r.Fatal
}
