package settings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/assist-notify/internal/mocks/settings"
)

const testKey = "assist_settings"

type recordingCache struct {
	stored map[string]string
	getErr error
}

func newRecordingCache() *recordingCache {
	return &recordingCache{stored: map[string]string{}}
}

func (c *recordingCache) GetWithRetry(_ context.Context, _ retry.Strategy, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.stored[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (c *recordingCache) SetWithRetry(_ context.Context, _ retry.Strategy, key string, value interface{}) error {
	c.stored[key] = value.(string)
	return nil
}

func TestStore_Load_FirstRunUsesDefaults(t *testing.T) {
	s := NewStore(newRecordingCache(), retry.Strategy{}, testKey)

	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, Defaults(), s.Snapshot())
}

func TestStore_Load_MergesOverDefaults(t *testing.T) {
	cache := newRecordingCache()
	// An older blob knowing only some of the keys.
	cache.stored[testKey] = `{"notifications":{"sound":false,"volume":25}}`

	s := NewStore(cache, retry.Strategy{}, testKey)
	require.NoError(t, s.Load(context.Background()))

	got := s.Snapshot()
	assert.False(t, got.Notifications.Sound)
	assert.Equal(t, 25, got.Notifications.Volume)
	assert.True(t, got.Notifications.Enabled, "missing keys fall back to defaults")
	assert.Equal(t, "22:00", got.Notifications.QuietHours.Start)
}

func TestStore_Load_CorruptBlobFallsBack(t *testing.T) {
	cache := newRecordingCache()
	cache.stored[testKey] = `{not json`

	s := NewStore(cache, retry.Strategy{}, testKey)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, Defaults(), s.Snapshot())
}

func TestStore_Update_PersistsAndNotifies(t *testing.T) {
	cache := newRecordingCache()
	s := NewStore(cache, retry.Strategy{}, testKey)

	var notified []Settings
	s.Subscribe(func(st Settings) {
		notified = append(notified, st)
	})

	updated := s.Update(context.Background(), func(st *Settings) {
		st.Notifications.Volume = 80
	})

	assert.Equal(t, 80, updated.Notifications.Volume)
	assert.Equal(t, updated, s.Snapshot())

	require.Len(t, notified, 1)
	assert.Equal(t, 80, notified[0].Notifications.Volume)

	var stored Settings
	require.NoError(t, json.Unmarshal([]byte(cache.stored[testKey]), &stored))
	assert.Equal(t, 80, stored.Notifications.Volume)
}

func TestStore_Reset(t *testing.T) {
	cache := newRecordingCache()
	s := NewStore(cache, retry.Strategy{}, testKey)

	s.Update(context.Background(), func(st *Settings) {
		st.Notifications.Enabled = false
	})
	got := s.Reset(context.Background())

	assert.Equal(t, Defaults(), got)
	assert.Equal(t, Defaults(), s.Snapshot())
}

func TestStore_PersistFailureKeepsInMemoryState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockcache(ctrl)
	cache.EXPECT().
		SetWithRetry(gomock.Any(), gomock.Any(), testKey, gomock.Any()).
		Return(errors.New("redis down"))

	s := NewStore(cache, retry.Strategy{}, testKey)

	updated := s.Update(context.Background(), func(st *Settings) {
		st.Notifications.Volume = 10
	})

	assert.Equal(t, 10, updated.Notifications.Volume)
	assert.Equal(t, 10, s.Snapshot().Notifications.Volume, "persistence failures do not roll back")
}
