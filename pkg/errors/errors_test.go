package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	sentinel := stderrors.New("boom")

	tests := []struct {
		name        string
		value       any
		wantMessage string
		wantNil     bool
	}{
		{
			name:        "error value is wrapped as-is",
			value:       sentinel,
			wantMessage: "boom",
		},
		{
			name:        "string value keeps its string form",
			value:       "x",
			wantMessage: "x",
		},
		{
			name:        "int value keeps its string form",
			value:       42,
			wantMessage: "42",
		},
		{
			name:    "nil yields nil",
			value:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Normalize("test.Op", KindOperation, tt.value)

			if tt.wantNil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Kind != KindOperation {
				t.Errorf("expected KindOperation, got %v", err.Kind)
			}
			if err.Err.Error() != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, err.Err.Error())
			}
			if err.Timestamp.IsZero() {
				t.Error("expected timestamp to be set")
			}
		})
	}
}

func TestNormalizeWrapsErrorsTransparently(t *testing.T) {
	sentinel := stderrors.New("underlying")
	err := Normalize("test.Op", KindPlatform, sentinel)

	if !stderrors.Is(err, sentinel) {
		t.Error("normalized error should unwrap to the underlying error")
	}

	var opErr *OpError
	if !stderrors.As(error(err), &opErr) {
		t.Error("errors.As should find *OpError")
	}
}

func TestErrorKindStrings(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnavailable, "capability-unavailable"},
		{KindOperation, "operation-failed"},
		{KindPlatform, "platform"},
		{KindParsing, "parsing"},
		{KindPanic, "panic"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "clipboard.Copy", Kind: KindUnavailable, Err: stderrors.New("missing")}

	msg := err.Error()
	if !strings.Contains(msg, "clipboard.Copy") || !strings.Contains(msg, "capability-unavailable") {
		t.Errorf("unexpected message %q", msg)
	}
}

// recordingHandler captures reported errors.
type recordingHandler struct {
	reported []*OpError
}

func (h *recordingHandler) HandleError(err *OpError) {
	h.reported = append(h.reported, err)
}

func TestReportUsesGlobalHandler(t *testing.T) {
	handler := &recordingHandler{}
	SetHandler(handler)
	t.Cleanup(func() { SetHandler(nil) })

	Report(nil)
	Report(&OpError{Op: "test", Kind: KindOperation, Err: stderrors.New("bad")})

	if len(handler.reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.reported))
	}
	if handler.reported[0].Timestamp.IsZero() {
		t.Error("Report should fill in a zero timestamp")
	}
}
