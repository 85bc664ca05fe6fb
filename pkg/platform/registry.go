package platform

import (
	"sync"

	"github.com/go-drift/hooks/pkg/errors"
)

// channelRegistry manages all registered platform channels.
type channelRegistry struct {
	methodChannels map[string]*MethodChannel
	mu             sync.RWMutex
}

var registry = &channelRegistry{
	methodChannels: make(map[string]*MethodChannel),
}

func (r *channelRegistry) registerMethod(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.methodChannels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) getMethodChannel(name string) *MethodChannel {
	r.mu.RLock()
	ch := r.methodChannels[name]
	r.mu.RUnlock()
	return ch
}

// NativeBridge defines the interface for calling native platform code.
type NativeBridge interface {
	// InvokeMethod calls a method on the native side.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge
)

// SetNativeBridge sets the native bridge implementation.
// Called by a bridge package during initialization. Pass nil to remove the
// bridge, after which invocations fail with ErrPlatformUnavailable.
func SetNativeBridge(bridge NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = bridge
	bridgeMu.Unlock()
}

// BridgeAvailable reports whether a native bridge is installed.
func BridgeAvailable() bool {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return nativeBridge != nil
}

// invokeNative calls a method on the native side.
func invokeNative(channel, method string, args any) (any, error) {
	bridgeMu.RLock()
	bridge := nativeBridge
	bridgeMu.RUnlock()

	if bridge == nil {
		return nil, ErrPlatformUnavailable
	}

	argsData, err := DefaultCodec.Encode(args)
	if err != nil {
		return nil, err
	}

	resultData, err := bridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Decode(resultData)
}

// HandleMethodCall is called from the bridge when native invokes a Go method.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := registry.getMethodChannel(channel)
	if ch == nil {
		errors.Report(&errors.OpError{
			Op:   "platform.HandleMethodCall",
			Kind: errors.KindPlatform,
			Err:  ErrChannelNotFound,
		})
		return nil, ErrChannelNotFound
	}

	args, err := DefaultCodec.Decode(argsData)
	if err != nil {
		return nil, err
	}

	result, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Encode(result)
}

// ResetForTest resets all global platform state for test isolation.
// It clears the native bridge and the dispatch function. Registered channels
// are kept: services create their channels once at package init.
// This should only be called from tests.
func ResetForTest() {
	SetNativeBridge(nil)

	dispatchMu.Lock()
	dispatchFunc = nil
	dispatchMu.Unlock()
}
