package platform

import (
	"errors"
	"testing"
)

func TestClipboardServiceInitialization(t *testing.T) {
	if Clipboard == nil {
		t.Fatal("Clipboard service is nil")
	}

	if Clipboard.channel == nil {
		t.Error("Clipboard.channel is nil")
	}

	if Clipboard.channel.Name() != "drift/clipboard" {
		t.Errorf("expected channel name %q, got %q", "drift/clipboard", Clipboard.channel.Name())
	}
}

// clipboardBridge returns a canned response or error for method calls.
type clipboardBridge struct {
	response any
	err      error

	lastMethod string
	lastArgs   any
}

func (b *clipboardBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	b.lastMethod = method
	b.lastArgs, _ = DefaultCodec.Decode(args)
	if b.err != nil {
		return nil, b.err
	}
	return DefaultCodec.Encode(b.response)
}

func TestClipboardUnavailableWithoutBridge(t *testing.T) {
	t.Cleanup(ResetForTest)
	SetNativeBridge(nil)

	if Clipboard.Available() {
		t.Error("Available should be false without a bridge")
	}

	if err := Clipboard.SetText("hello"); !errors.Is(err, ErrPlatformUnavailable) {
		t.Errorf("expected ErrPlatformUnavailable, got %v", err)
	}
}

func TestClipboardSetText(t *testing.T) {
	bridge := &clipboardBridge{}
	SetNativeBridge(bridge)
	t.Cleanup(ResetForTest)

	if err := Clipboard.SetText("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bridge.lastMethod != "setText" {
		t.Errorf("expected method setText, got %q", bridge.lastMethod)
	}
	args, ok := bridge.lastArgs.(map[string]any)
	if !ok || args["text"] != "hello" {
		t.Errorf("expected text argument 'hello', got %v", bridge.lastArgs)
	}
}

func TestClipboardGetText(t *testing.T) {
	tests := []struct {
		name      string
		response  any
		want      string
		wantError bool
	}{
		{
			name:     "map response",
			response: map[string]any{"text": "copied"},
			want:     "copied",
		},
		{
			name:     "plain string response",
			response: "copied",
			want:     "copied",
		},
		{
			name:     "nil response means empty clipboard",
			response: nil,
			want:     "",
		},
		{
			name:      "missing text key",
			response:  map[string]any{"other": 1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetNativeBridge(&clipboardBridge{response: tt.response})
			t.Cleanup(ResetForTest)

			got, err := Clipboard.GetText()

			if tt.wantError {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClipboardHasText(t *testing.T) {
	SetNativeBridge(&clipboardBridge{response: map[string]any{"hasText": true}})
	t.Cleanup(ResetForTest)

	has, err := Clipboard.HasText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !has {
		t.Error("expected hasText true")
	}
}

func TestClipboardBridgeErrorPropagates(t *testing.T) {
	bridgeErr := NewChannelError("denied", "clipboard access denied")
	SetNativeBridge(&clipboardBridge{err: bridgeErr})
	t.Cleanup(ResetForTest)

	err := Clipboard.SetText("hello")
	if err == nil {
		t.Fatal("expected error")
	}
	var chErr *ChannelError
	if !errors.As(err, &chErr) || chErr.Code != "denied" {
		t.Errorf("expected ChannelError 'denied', got %v", err)
	}
}
