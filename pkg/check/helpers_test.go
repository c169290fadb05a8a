package check

import (
	"errors"
	"testing"
)

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "test"}
	err := errors.New("test error")

	result := r.Fail("something failed", err)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "something failed" {
		t.Errorf("Details = %v, want [something failed]", result.Details)
	}
	if result.Message != "something failed" {
		t.Errorf("Message = %q, want %q", result.Message, "something failed")
	}
	if result.Err != err {
		t.Errorf("Err = %v, want %v", result.Err, err)
	}
}

func TestResult_Failf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Failf("Required file missing: %s", "app.py")

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "Required file missing: app.py" {
		t.Errorf("Details = %v, want [Required file missing: app.py]", result.Details)
	}
	if result.Err == nil || result.Err.Error() != "Required file missing: app.py" {
		t.Errorf("Err = %v, want error with message 'Required file missing: app.py'", result.Err)
	}
}

func TestResult_Warnf(t *testing.T) {
	r := &Result{Name: "test", Fatal: true}

	result := r.Warnf("%s not found", ".env")

	if result.Status != StatusWarn {
		t.Errorf("Status = %v, want %v", result.Status, StatusWarn)
	}
	if result.Aborts() {
		t.Error("Aborts() = true, a warning must never abort")
	}
	if result.Err == nil {
		t.Error("Err = nil, want warning error")
	}
	if result.Message != ".env not found" {
		t.Errorf("Message = %q, want %q", result.Message, ".env not found")
	}
}

func TestResult_Skip(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Skip("nothing to do")

	if result.Status != StatusSkip {
		t.Errorf("Status = %v, want %v", result.Status, StatusSkip)
	}
	if !result.Passed() {
		t.Error("Passed() = false, want true for skipped result")
	}
}

func TestResult_Pass(t *testing.T) {
	r := &Result{Name: "test"}
	if got := r.Pass(); got.Status != StatusOK {
		t.Errorf("Status = %v, want %v", got.Status, StatusOK)
	}

	w := &Result{Name: "test"}
	w.Warn("old interpreter", nil)
	if got := w.Pass(); got.Status != StatusWarn {
		t.Errorf("Pass() after Warn: Status = %v, want %v", got.Status, StatusWarn)
	}
}

func TestResult_AddDetail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetail("first detail").AddDetail("second detail")

	if len(result.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(result.Details))
	}
	if result.Details[0] != "first detail" || result.Details[1] != "second detail" {
		t.Errorf("Details = %v, want [first detail, second detail]", result.Details)
	}
	if result != r {
		t.Error("AddDetail should return the same Result pointer")
	}
}

func TestResult_AddDetailf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetailf("path: %s", "venv/bin/python")

	if len(result.Details) != 1 || result.Details[0] != "path: venv/bin/python" {
		t.Errorf("Details = %v, want [path: venv/bin/python]", result.Details)
	}
}
