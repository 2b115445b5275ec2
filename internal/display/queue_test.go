package display

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_NextTimesOutWhenEmpty(t *testing.T) {
	q := NewQueue(1)

	_, ok, err := q.Next(context.Background(), time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueue_NextReturnsContextError(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := q.Next(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueue_PreservesOrder(t *testing.T) {
	q := NewQueue(4)
	ctx := context.Background()
	require.NoError(t, q.Push(ctx, NewDraw(PageState)))
	require.NoError(t, q.Push(ctx, NewDraw(PageHelp)))

	first, ok, err := q.Next(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	second, _, _ := q.Next(ctx, time.Second)

	assert.Equal(t, string(PageState), first.Target)
	assert.Equal(t, string(PageHelp), second.Target)
}

func TestQueue_TryPushFull(t *testing.T) {
	q := NewQueue(1)
	require.NoError(t, q.TryPush(NewRedraw()))
	assert.ErrorIs(t, q.TryPush(NewRedraw()), ErrQueueFull)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_WaitTracksAcks(t *testing.T) {
	q := NewQueue(4)
	ctx := context.Background()
	require.NoError(t, q.Wait(ctx), "empty queue is idle")

	require.NoError(t, q.Push(ctx, NewRedraw()))
	short, cancel := context.WithTimeout(ctx, 5*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.Wait(short), context.DeadlineExceeded)

	_, _, _ = q.Next(ctx, time.Second)
	q.Ack()
	assert.NoError(t, q.Wait(ctx))
}

func TestQueue_PushCancelledDoesNotLeavePending(t *testing.T) {
	q := NewQueue(1)
	ctx := context.Background()
	require.NoError(t, q.Push(ctx, NewRedraw()))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, q.Push(cancelled, NewRedraw()), context.Canceled)

	_, _, _ = q.Next(ctx, time.Second)
	q.Ack()
	assert.NoError(t, q.Wait(ctx))
}
