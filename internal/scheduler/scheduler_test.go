package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	calls int
	n     int64
	err   error
}

func (f *fakePurger) DeleteExpired(ctx context.Context) (int64, error) {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("missing deadline")
	}
	return f.n, f.err
}

func TestPurgeSessions(t *testing.T) {
	p := &fakePurger{n: 3}
	PurgeSessions(p)()
	assert.Equal(t, 1, p.calls)

	failing := &fakePurger{err: errors.New("db down")}
	assert.NotPanics(t, PurgeSessions(failing))
	assert.Equal(t, 1, failing.calls)
}

func TestNew(t *testing.T) {
	c, err := New("@hourly", &fakePurger{})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	_, err = New("not a schedule", &fakePurger{})
	assert.Error(t, err)
}
