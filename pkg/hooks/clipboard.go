package hooks

import (
	stderrors "errors"

	"github.com/go-drift/hooks/pkg/core"
	"github.com/go-drift/hooks/pkg/errors"
	"github.com/go-drift/hooks/pkg/platform"
)

// CopySuccess is passed to the success callback of ClipboardController.Copy.
type CopySuccess struct {
	// Text is the text that was written to the clipboard.
	Text string
}

// CopyFailure is passed to the error callback of ClipboardController.Copy.
type CopyFailure struct {
	// Err is the normalized failure. Its kind is KindUnavailable when the
	// clipboard capability is missing, KindOperation otherwise.
	Err error
	// Text is the text that failed to copy.
	Text string
}

type copyConfig struct {
	onSuccess func(CopySuccess)
	onError   func(CopyFailure)
}

// CopyOption configures a single Copy call.
type CopyOption func(*copyConfig)

// OnCopySuccess invokes fn after a verified successful write.
func OnCopySuccess(fn func(CopySuccess)) CopyOption {
	return func(c *copyConfig) {
		c.onSuccess = fn
	}
}

// OnCopyError invokes fn when the write fails or the capability is missing.
func OnCopyError(fn func(CopyFailure)) CopyOption {
	return func(c *copyConfig) {
		c.onError = fn
	}
}

// ClipboardController wraps the platform clipboard with copy bookkeeping.
// It remembers the last text that was verifiably written.
type ClipboardController struct {
	base       *core.StateBase
	copiedText string
	hasCopied  bool
}

// UseClipboard creates a clipboard writer bound to the host's lifecycle.
func UseClipboard(s core.StateHost) *ClipboardController {
	return &ClipboardController{base: s.State()}
}

// Copy attempts to write text to the system clipboard and returns whether
// the write succeeded. The boolean result and the optional callbacks carry
// the same outcome; callers may use either or both.
//
// Failures are never raised: a missing capability or a failed write clears
// the copied-text marker, invokes the error callback, and returns false.
// Each call is independent — no retry, no debouncing, no queueing.
func (c *ClipboardController) Copy(text string, opts ...CopyOption) bool {
	var cfg copyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !platform.Clipboard.Available() {
		c.fail(cfg, text, &errors.OpError{
			Op:   "clipboard.Copy",
			Kind: errors.KindUnavailable,
			Err:  platform.ErrPlatformUnavailable,
		})
		return false
	}

	if err := platform.Clipboard.SetText(text); err != nil {
		kind := errors.KindOperation
		if stderrors.Is(err, platform.ErrPlatformUnavailable) {
			kind = errors.KindUnavailable
		}
		c.fail(cfg, text, errors.Normalize("clipboard.Copy", kind, err))
		return false
	}

	c.base.SetState(func() {
		c.copiedText = text
		c.hasCopied = true
	})
	if cfg.onSuccess != nil {
		cfg.onSuccess(CopySuccess{Text: text})
	}
	return true
}

// fail records a copy failure: the copied-text marker is cleared, the error
// is reported, and the error callback (if any) runs.
func (c *ClipboardController) fail(cfg copyConfig, text string, err *errors.OpError) {
	c.base.SetState(func() {
		c.copiedText = ""
		c.hasCopied = false
	})
	errors.Report(err)
	if cfg.onError != nil {
		cfg.onError(CopyFailure{Err: err, Text: text})
	}
}

// CopiedText returns the last successfully copied text. The second return
// value is false when nothing has been copied since creation, the last copy
// failed, or Reset was called.
func (c *ClipboardController) CopiedText() (string, bool) {
	return c.copiedText, c.hasCopied
}

// Reset clears the copied-text marker. It does not touch the system
// clipboard itself.
func (c *ClipboardController) Reset() {
	c.base.SetState(func() {
		c.copiedText = ""
		c.hasCopied = false
	})
}
