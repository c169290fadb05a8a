package check

import "context"

// Checker is implemented by every startup step that only reports a Result.
//
// Implementations:
//   - filecheck.Check: required and optional file presence
//   - dbinit.Initializer: optional database initialization script
//   - installer.Installer: dependency installation
type Checker interface {
	Run(ctx context.Context) Result
}
