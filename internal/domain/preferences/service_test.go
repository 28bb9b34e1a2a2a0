package preferences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreferencesRepository struct {
	saved *Preferences
}

func (f *fakePreferencesRepository) Load(_ context.Context) (*Preferences, error) {
	if f.saved == nil {
		return nil, nil
	}
	copied := *f.saved
	return &copied, nil
}

func (f *fakePreferencesRepository) Save(_ context.Context, prefs *Preferences) error {
	copied := *prefs
	f.saved = &copied
	return nil
}

func TestGetReturnsDefaultsWhenUnset(t *testing.T) {
	svc := NewService(&fakePreferencesRepository{})

	prefs, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, prefs.UpcomingDays)
	assert.Equal(t, 10, prefs.PageSize)
	assert.True(t, prefs.SortByDate)
}

func TestUpdateRoundTrip(t *testing.T) {
	repo := &fakePreferencesRepository{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, &Preferences{UpcomingDays: 14, PageSize: 25, SortByDate: false})
	require.NoError(t, err)

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 14, prefs.UpcomingDays)
	assert.Equal(t, 25, prefs.PageSize)
	assert.False(t, prefs.SortByDate)
}

func TestUpdateNormalizesOutOfRange(t *testing.T) {
	svc := NewService(&fakePreferencesRepository{})

	prefs, err := svc.Update(context.Background(), &Preferences{UpcomingDays: -1, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 7, prefs.UpcomingDays)
	assert.Equal(t, 100, prefs.PageSize)
}
