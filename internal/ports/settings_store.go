package ports

import "context"

// SettingsStore persists the single settings blob owned by the host.
// Load returns (nil, nil) when nothing has been saved yet.
type SettingsStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	GetStoreName() string
}
