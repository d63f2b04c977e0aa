package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("key", "value"))
	v, ok, err := kv.Get("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "value", v)

	// Перезапись
	require.NoError(t, kv.Set("key", "updated"))
	v, _, _ = kv.Get("key")
	assert.Equal(t, "updated", v)

	require.NoError(t, kv.Delete("key"))
	_, ok, err = kv.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Close())
	assert.ErrorIs(t, kv.Set("key", "value"), ErrClosed)
	_, _, err = kv.Get("key")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("key", "value"))
	require.NoError(t, kv.Set("key", "updated"))
	v, ok, err := kv.Get("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "updated", v)

	require.NoError(t, kv.Delete("key"))
	_, ok, _ = kv.Get("key")
	assert.False(t, ok)

	require.NoError(t, kv.Close())

	// Значения переживают переоткрытие базы
	kv, err = NewSQLiteKV(path)
	require.NoError(t, err)
	defer kv.Close()
	require.NoError(t, kv.Set("persisted", "yes"))
}

func TestLoadJSON(t *testing.T) {
	log := slog.Default()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("absent key keeps fallback", func(t *testing.T) {
		kv := NewMemoryKV()
		dst := payload{Name: "default"}
		assert.False(t, LoadJSON(kv, log, "missing", &dst))
		assert.Equal(t, "default", dst.Name)
	})

	t.Run("corrupt value is swallowed", func(t *testing.T) {
		kv := NewMemoryKV()
		require.NoError(t, kv.Set("key", "{broken"))
		dst := payload{Name: "default"}
		// Ошибка декодирования не поднимается к вызывающему
		assert.False(t, LoadJSON(kv, log, "key", &dst))
		assert.Equal(t, "default", dst.Name)
	})

	t.Run("valid value decodes", func(t *testing.T) {
		kv := NewMemoryKV()
		require.NoError(t, kv.Set("key", `{"name":"corp.local"}`))
		var dst payload
		assert.True(t, LoadJSON(kv, log, "key", &dst))
		assert.Equal(t, "corp.local", dst.Name)
	})
}

func TestSaveJSON(t *testing.T) {
	log := slog.Default()

	kv := NewMemoryKV()
	SaveJSON(kv, log, "key", map[string]string{"name": "corp.local"})
	v, ok, err := kv.Get("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"corp.local"}`, v)

	// Сбой записи не паникует и не поднимается
	require.NoError(t, kv.Close())
	SaveJSON(kv, log, "key", map[string]string{"name": "x"})
}
