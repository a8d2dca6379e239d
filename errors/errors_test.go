package errors

import (
	stderrors "errors"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := New(PhaseCreate, KindNotReady, "engine not available")
	want := "[create] not_ready: engine not available"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_FormatWithCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(PhaseStore, KindIO, cause, "save settings")
	want := "[store] io: save settings (caused by: disk full)"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_FormatWithoutDetail(t *testing.T) {
	err := &Error{Phase: PhaseHost, Kind: KindRejected}
	if got := err.Error(); got != "[host] rejected" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestNew_FormatsArgs(t *testing.T) {
	err := New(PhaseUpdate, KindInvalidData, "bad fps %d", 500)
	if err.Detail != "bad fps 500" {
		t.Fatalf("Detail = %q", err.Detail)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(PhaseCreate, KindIO, cause, "context")
	if !stderrors.Is(err, cause) {
		t.Fatal("errors.Is did not find the cause")
	}
}

func TestError_IsMatchesPhaseAndKind(t *testing.T) {
	err := Store("save settings for x", stderrors.New("io fail"))
	if !stderrors.Is(err, &Error{Phase: PhaseStore, Kind: KindIO}) {
		t.Fatal("Is should match on phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseCreate, Kind: KindIO}) {
		t.Fatal("Is matched a different phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseStore, Kind: KindRejected}) {
		t.Fatal("Is matched a different kind")
	}
}

func TestNotReady(t *testing.T) {
	err := NotReady(PhaseCreate, "engine")
	if err.Kind != KindNotReady {
		t.Fatalf("Kind = %q", err.Kind)
	}
	if err.Detail != "engine not available" {
		t.Fatalf("Detail = %q", err.Detail)
	}
}
