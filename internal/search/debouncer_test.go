package search

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

func echoLookup(calls *int32) Lookup {
	return func(ctx context.Context, query string) ([]models.Barber, error) {
		atomic.AddInt32(calls, 1)
		return []models.Barber{{Username: query}}, nil
	}
}

func TestDebouncer_LatestWinsDuringDelay(t *testing.T) {
	d := NewDebouncer(80 * time.Millisecond)
	var calls int32
	lookup := echoLookup(&calls)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = d.Search(context.Background(), "sid-1", "An", lookup)
	}()

	time.Sleep(20 * time.Millisecond)
	res, err := d.Search(context.Background(), "sid-1", "Ana", lookup)
	wg.Wait()

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Ana", res[0].Username)
	assert.ErrorIs(t, firstErr, ErrSuperseded)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_StaleInFlightResponseDropped(t *testing.T) {
	d := NewDebouncer(0)
	started := make(chan struct{})

	slow := func(ctx context.Context, query string) ([]models.Barber, error) {
		close(started)
		<-ctx.Done()
		return []models.Barber{{Username: "stale"}}, nil
	}

	var wg sync.WaitGroup
	var staleRes []models.Barber
	var staleErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		staleRes, staleErr = d.Search(context.Background(), "sid-1", "A", slow)
	}()

	<-started
	var calls int32
	res, err := d.Search(context.Background(), "sid-1", "Ana", echoLookup(&calls))
	wg.Wait()

	require.NoError(t, err)
	assert.Equal(t, "Ana", res[0].Username)
	assert.ErrorIs(t, staleErr, ErrSuperseded)
	assert.Nil(t, staleRes)
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32
	lookup := echoLookup(&calls)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, key := range []string{"sid-1", "sid-2"} {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			_, errs[i] = d.Search(context.Background(), key, "Ana", lookup)
		}(i, key)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDebouncer_BlankQuerySkipsDelay(t *testing.T) {
	d := NewDebouncer(time.Hour)
	var calls int32

	start := time.Now()
	res, err := d.Search(context.Background(), "sid-1", "   ", echoLookup(&calls))

	require.NoError(t, err)
	assert.Equal(t, "", res[0].Username)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDebouncer_ParentCancelled(t *testing.T) {
	d := NewDebouncer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	_, err := d.Search(ctx, "sid-1", "Ana", echoLookup(&calls))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
