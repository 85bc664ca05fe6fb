package platform

// Storage provides simple key-value persistence backed by the platform.
// On mobile this maps to SharedPreferences/UserDefaults; the desktop bridge
// backs it with a local state file.
var Storage = &StorageService{
	channel: NewMethodChannel("drift/storage"),
}

// StorageService manages key-value storage operations.
type StorageService struct {
	channel *MethodChannel
}

// GetString returns the stored value for key. The second return value is
// false when the key is absent.
func (s *StorageService) GetString(key string) (string, bool, error) {
	result, err := s.channel.Invoke("getString", map[string]any{
		"key": key,
	})
	if err != nil {
		return "", false, err
	}

	m, ok := result.(map[string]any)
	if !ok {
		return "", false, ErrInvalidArguments
	}
	if present, ok := m["present"].(bool); !ok || !present {
		return "", false, nil
	}
	value, _ := m["value"].(string)
	return value, true, nil
}

// SetString stores value under key.
func (s *StorageService) SetString(key, value string) error {
	_, err := s.channel.Invoke("setString", map[string]any{
		"key":   key,
		"value": value,
	})
	return err
}

// Remove deletes the value stored under key, if any.
func (s *StorageService) Remove(key string) error {
	_, err := s.channel.Invoke("remove", map[string]any{
		"key": key,
	})
	return err
}
