// Package desktop provides an in-process NativeBridge for desktop
// development and test environments. It serves the clipboard channel through
// the operating system clipboard and the storage channel through a local
// state file, so hooks behave on a workstation the way they do on device.
package desktop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"

	hookerrors "github.com/go-drift/hooks/pkg/errors"
	"github.com/go-drift/hooks/pkg/platform"
)

// Bridge implements platform.NativeBridge for desktop environments.
type Bridge struct {
	mu        sync.Mutex
	values    map[string]string
	statePath string
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithStateFile persists storage channel values to the YAML file at path.
// Without this option storage is in-memory only.
func WithStateFile(path string) Option {
	return func(b *Bridge) {
		b.statePath = path
	}
}

// New creates a desktop bridge. If a state file is configured and exists,
// its contents seed the storage values.
func New(opts ...Option) *Bridge {
	b := &Bridge{values: make(map[string]string)}
	for _, opt := range opts {
		opt(b)
	}
	if b.statePath != "" {
		if err := b.load(); err != nil {
			hookerrors.Report(&hookerrors.OpError{
				Op:   "desktop.load",
				Kind: hookerrors.KindPlatform,
				Err:  err,
			})
		}
	}
	return b
}

// Install creates a desktop bridge, registers it as the native bridge, and
// registers a synchronous dispatcher. Desktop hosts run hook callbacks
// inline on the calling goroutine.
func Install(opts ...Option) *Bridge {
	b := New(opts...)
	platform.SetNativeBridge(b)
	platform.RegisterDispatch(func(cb func()) { cb() })
	return b
}

// InvokeMethod implements platform.NativeBridge.
func (b *Bridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	decoded, err := platform.DefaultCodec.Decode(args)
	if err != nil {
		return nil, err
	}
	params, _ := decoded.(map[string]any)

	var result any
	switch channel {
	case "drift/clipboard":
		result, err = b.handleClipboard(method, params)
	case "drift/storage":
		result, err = b.handleStorage(method, params)
	default:
		err = platform.ErrChannelNotFound
	}
	if err != nil {
		return nil, err
	}
	return platform.DefaultCodec.Encode(result)
}

func (b *Bridge) handleClipboard(method string, params map[string]any) (any, error) {
	if clipboard.Unsupported {
		return nil, platform.ErrPlatformUnavailable
	}

	switch method {
	case "setText":
		text, ok := params["text"].(string)
		if !ok {
			return nil, platform.ErrInvalidArguments
		}
		return nil, clipboard.WriteAll(text)
	case "getText":
		text, err := clipboard.ReadAll()
		if err != nil {
			return nil, err
		}
		return map[string]any{"text": text}, nil
	case "hasText":
		text, err := clipboard.ReadAll()
		if err != nil {
			return nil, err
		}
		return map[string]any{"hasText": text != ""}, nil
	case "clear":
		return nil, clipboard.WriteAll("")
	default:
		return nil, platform.ErrMethodNotFound
	}
}

func (b *Bridge) handleStorage(method string, params map[string]any) (any, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, platform.ErrInvalidArguments
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch method {
	case "getString":
		value, present := b.values[key]
		return map[string]any{"present": present, "value": value}, nil
	case "setString":
		value, ok := params["value"].(string)
		if !ok {
			return nil, platform.ErrInvalidArguments
		}
		b.values[key] = value
		return nil, b.saveLocked()
	case "remove":
		delete(b.values, key)
		return nil, b.saveLocked()
	default:
		return nil, platform.ErrMethodNotFound
	}
}

// load reads the state file into the value map.
func (b *Bridge) load() error {
	data, err := os.ReadFile(b.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", b.statePath, err)
	}
	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse %s: %w", b.statePath, err)
	}
	b.values = values
	return nil
}

// saveLocked writes the value map to the state file. Callers hold b.mu.
func (b *Bridge) saveLocked() error {
	if b.statePath == "" {
		return nil
	}
	data, err := yaml.Marshal(b.values)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(b.statePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(b.statePath, data, 0o644)
}

var _ platform.NativeBridge = (*Bridge)(nil)
