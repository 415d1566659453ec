package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/fadilmartias/job-board/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryStorage(t *testing.T) {
	store := repository.NewSessionRepository(testutil.NewDB(t))

	val, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, store.Set("abc", []byte("one"), time.Hour))
	val, err = store.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), val)

	require.NoError(t, store.Set("abc", []byte("two"), time.Hour))
	val, err = store.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), val)

	require.NoError(t, store.Delete("abc"))
	val, err = store.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, val)
	require.NoError(t, store.Delete("abc"))

	require.NoError(t, store.Set("forever", []byte("x"), 0))
	require.NoError(t, store.Reset())
	val, err = store.Get("forever")
	require.NoError(t, err)
	assert.Nil(t, val)

	assert.NoError(t, store.Close())
}

func TestSessionRepositoryExpiry(t *testing.T) {
	ctx := context.Background()
	store := repository.NewSessionRepository(testutil.NewDB(t))

	require.NoError(t, store.Set("short", []byte("x"), time.Millisecond))
	require.NoError(t, store.Set("long", []byte("y"), time.Hour))
	require.NoError(t, store.Set("forever", []byte("z"), 0))
	time.Sleep(10 * time.Millisecond)

	val, err := store.Get("short")
	require.NoError(t, err)
	assert.Nil(t, val, "expired sessions read as missing")

	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	val, err = store.Get("long")
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), val)
	val, err = store.Get("forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("z"), val)
}
