package preferences

import "context"

type Repository interface {
	Load(ctx context.Context) (*Preferences, error)
	Save(ctx context.Context, prefs *Preferences) error
}
