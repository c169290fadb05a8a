package check

import "testing"

func TestStatus(t *testing.T) {
	tests := map[Status]string{
		StatusOK:   "OK",
		StatusWarn: "WARN",
		StatusFail: "FAIL",
		StatusSkip: "SKIP",
	}
	for status, want := range tests {
		if string(status) != want {
			t.Errorf("status = %q, want %q", status, want)
		}
	}
}

func TestResultOK(t *testing.T) {
	result := Result{Status: StatusOK}
	if !result.OK() {
		t.Error("OK() = false, want true for StatusOK")
	}

	result.Status = StatusFail
	if result.OK() {
		t.Error("OK() = true, want false for StatusFail")
	}
}

func TestResultAborts(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   bool
	}{
		{"fatal failure", Result{Status: StatusFail, Fatal: true}, true},
		{"non-fatal failure", Result{Status: StatusFail}, false},
		{"fatal step passed", Result{Status: StatusOK, Fatal: true}, false},
		{"warning", Result{Status: StatusWarn, Fatal: true}, false},
		{"skip", Result{Status: StatusSkip}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Aborts(); got != tt.want {
				t.Errorf("Aborts() = %v, want %v", got, tt.want)
			}
		})
	}
}
