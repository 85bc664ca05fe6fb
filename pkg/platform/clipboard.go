package platform

import "github.com/go-drift/hooks/pkg/errors"

// Clipboard provides access to the system clipboard.
var Clipboard = &ClipboardService{
	channel: NewMethodChannel("drift/clipboard"),
}

// ClipboardService manages clipboard operations.
type ClipboardService struct {
	channel *MethodChannel
}

// Available reports whether the clipboard capability can be reached at all.
// It is false when no native bridge is installed.
func (s *ClipboardService) Available() bool {
	return BridgeAvailable()
}

// SetText writes text to the system clipboard.
func (s *ClipboardService) SetText(text string) error {
	_, err := s.channel.Invoke("setText", map[string]any{
		"text": text,
	})
	return err
}

// GetText returns the current text contents of the system clipboard.
// An empty clipboard yields an empty string and no error.
func (s *ClipboardService) GetText() (string, error) {
	result, err := s.channel.Invoke("getText", nil)
	if err != nil {
		return "", err
	}

	switch v := result.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case map[string]any:
		if text, ok := v["text"].(string); ok {
			return text, nil
		}
	}

	errors.Report(&errors.OpError{
		Op:   "clipboard.GetText",
		Kind: errors.KindParsing,
		Err:  NewChannelError("bad_result", "unexpected getText result shape"),
	})
	return "", ErrInvalidArguments
}

// HasText reports whether the clipboard currently holds any text.
func (s *ClipboardService) HasText() (bool, error) {
	result, err := s.channel.Invoke("hasText", nil)
	if err != nil {
		return false, err
	}

	if m, ok := result.(map[string]any); ok {
		if has, ok := m["hasText"].(bool); ok {
			return has, nil
		}
	}
	if b, ok := result.(bool); ok {
		return b, nil
	}

	return false, ErrInvalidArguments
}

// Clear removes any contents from the system clipboard.
func (s *ClipboardService) Clear() error {
	_, err := s.channel.Invoke("clear", nil)
	return err
}
