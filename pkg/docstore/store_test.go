package docstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	N int `json:"n"`
}

// runStoreContract exercises the behaviour every backend must share.
// Postgres stores jsonb and rejects invalid bodies at write time, so the
// malformed case only runs where raw bytes survive.
func runStoreContract(t *testing.T, s Store, rawBodies bool) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		var c counter
		exists, err := GetJSON(ctx, s, "missing", &c)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, PutJSON(ctx, s, "doc", counter{N: 3}))

		var c counter
		exists, err := GetJSON(ctx, s, "doc", &c)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 3, c.N)
	})

	t.Run("update creates and mutates", func(t *testing.T) {
		err := UpdateJSON(ctx, s, "fresh", func(c *counter, exists bool) error {
			assert.False(t, exists)
			c.N = 1
			return nil
		})
		require.NoError(t, err)

		err = UpdateJSON(ctx, s, "fresh", func(c *counter, exists bool) error {
			assert.True(t, exists)
			c.N++
			return nil
		})
		require.NoError(t, err)

		var c counter
		_, err = GetJSON(ctx, s, "fresh", &c)
		require.NoError(t, err)
		assert.Equal(t, 2, c.N)
	})

	t.Run("failed update leaves document untouched", func(t *testing.T) {
		require.NoError(t, PutJSON(ctx, s, "keep", counter{N: 7}))

		boom := errors.New("boom")
		err := UpdateJSON(ctx, s, "keep", func(c *counter, exists bool) error {
			c.N = 100
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var c counter
		_, err = GetJSON(ctx, s, "keep", &c)
		require.NoError(t, err)
		assert.Equal(t, 7, c.N)
	})

	t.Run("malformed document", func(t *testing.T) {
		if !rawBodies {
			t.Skip("backend validates JSON on write")
		}
		require.NoError(t, s.Put(ctx, "broken", []byte("{not json")))

		var c counter
		_, err := GetJSON(ctx, s, "broken", &c)
		assert.ErrorIs(t, err, ErrMalformed)

		err = UpdateJSON(ctx, s, "broken", func(c *counter, exists bool) error { return nil })
		assert.ErrorIs(t, err, ErrMalformed)

		raw, err := s.Get(ctx, "broken")
		require.NoError(t, err)
		assert.Equal(t, "{not json", string(raw))
	})

	t.Run("concurrent updates do not lose writes", func(t *testing.T) {
		_, err := s.Get(ctx, "race")
		require.ErrorIs(t, err, ErrNotFound, "first writers must race on a missing key")

		const workers = 20
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := UpdateJSON(ctx, s, "race", func(c *counter, exists bool) error {
					c.N++
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		var c counter
		_, err = GetJSON(ctx, s, "race", &c)
		require.NoError(t, err)
		assert.Equal(t, workers, c.N)
	})

	t.Run("concurrent first writes keep every field", func(t *testing.T) {
		_, err := s.Get(ctx, "fields")
		require.ErrorIs(t, err, ErrNotFound)

		const workers = 10
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := UpdateJSON(ctx, s, "fields", func(doc *map[string]int, exists bool) error {
					if *doc == nil {
						*doc = map[string]int{}
					}
					(*doc)[fmt.Sprintf("Q%d", i)] = i
					return nil
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		var doc map[string]int
		_, err = GetJSON(ctx, s, "fields", &doc)
		require.NoError(t, err)
		assert.Len(t, doc, workers)
	})
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	runStoreContract(t, s, true)
}

func TestFileStore_EmptyFileIsMalformed(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path("empty"), nil, 0o644))

	var c counter
	_, err = GetJSON(context.Background(), s, "empty", &c)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFileStore_WritesPrettyJSON(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, PutJSON(context.Background(), s, "pretty", counter{N: 1}))

	raw, err := os.ReadFile(s.Path("pretty"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"n\": 1\n}", string(raw))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	runStoreContract(t, s, true)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}
	s, err := NewRedisStoreFromURL(context.Background(), url, fmt.Sprintf("soulful-home-test:%d:", time.Now().UnixNano()))
	require.NoError(t, err)
	defer s.Close()
	runStoreContract(t, s, true)
}

func TestRedisOptions(t *testing.T) {
	opt, err := redisOptions("localhost:6379")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opt.Addr)

	opt, err = redisOptions("redis://:secret@cache:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opt.Addr)
	assert.Equal(t, "secret", opt.Password)
	assert.Equal(t, 2, opt.DB)

	_, err = redisOptions("redsi://cache:6380")
	assert.ErrorContains(t, err, "parse redis url")

	_, err = NewRedisStoreFromURL(context.Background(), "redis://cache:6380/notadb", "")
	assert.ErrorContains(t, err, "parse redis url")
}
