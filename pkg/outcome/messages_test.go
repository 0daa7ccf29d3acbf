package outcome

import "testing"

type shoutingMessages struct{}

func (shoutingMessages) SuccessMessage() string { return "DONE" }

func (shoutingMessages) ErrorMessage(detail string) string { return "FAILED: " + detail }

func TestDefaultMessages(t *testing.T) {
	t.Parallel()
	m := DefaultMessages{}

	if m.SuccessMessage() != "Operation completed successfully." {
		t.Fatalf("unexpected success message: %q", m.SuccessMessage())
	}
	if m.ErrorMessage("db down") != "An error occurred: db down" {
		t.Fatalf("unexpected error message: %q", m.ErrorMessage("db down"))
	}
}

func TestInjectedMessages(t *testing.T) {
	t.Parallel()

	ok := SuccessWith(shoutingMessages{}, 1)
	if ok.Message() != "DONE" {
		t.Fatalf("expected injected success message, got: %q", ok.Message())
	}

	bad := FailDetail[int](shoutingMessages{}, "db down")
	if bad.Err().Message() != "FAILED: db down" {
		t.Fatalf("expected injected error message, got: %q", bad.Err().Message())
	}
}
