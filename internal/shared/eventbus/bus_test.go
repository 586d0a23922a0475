package eventbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	name string
	data interface{}
	at   time.Time
}

func (e testEvent) Name() string          { return e.name }
func (e testEvent) Payload() interface{}  { return e.data }
func (e testEvent) OccurredAt() time.Time { return e.at }

func TestPublish_DeliversToNamedSubscribers(t *testing.T) {
	bus := New(nil)
	var got []interface{}

	bus.Subscribe("employee.created", func(ctx context.Context, ev Event) error {
		got = append(got, ev.Payload())
		return nil
	})

	err := bus.Publish(context.Background(), testEvent{name: "employee.created", data: 42})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{42}, got)
}

func TestPublish_WildcardReceivesEverything(t *testing.T) {
	bus := New(nil)
	var names []string

	bus.Subscribe(Wildcard, func(ctx context.Context, ev Event) error {
		names = append(names, ev.Name())
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "a"}))
	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "b"}))
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestPublish_HandlerErrorAbortsDelivery(t *testing.T) {
	bus := New(nil)
	boom := errors.New("boom")
	secondCalled := false

	bus.Subscribe("ev", func(ctx context.Context, ev Event) error { return boom })
	bus.Subscribe("ev", func(ctx context.Context, ev Event) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(context.Background(), testEvent{name: "ev"})
	assert.ErrorIs(t, err, boom)
	assert.False(t, secondCalled)
}

func TestPublishAndForget_ContinuesPastErrors(t *testing.T) {
	bus := New(nil)
	secondCalled := false

	bus.Subscribe("ev", func(ctx context.Context, ev Event) error { return errors.New("boom") })
	bus.Subscribe("ev", func(ctx context.Context, ev Event) error {
		secondCalled = true
		return nil
	})

	bus.PublishAndForget(context.Background(), testEvent{name: "ev"})
	assert.True(t, secondCalled)
}

func TestUnsubscribe_RemovesOnlyThatHandler(t *testing.T) {
	bus := New(nil)
	first, second := 0, 0

	unsub := bus.Subscribe("ev", func(ctx context.Context, ev Event) error {
		first++
		return nil
	})
	bus.Subscribe("ev", func(ctx context.Context, ev Event) error {
		second++
		return nil
	})

	require.Equal(t, 2, bus.SubscriberCount("ev"))
	unsub()
	require.Equal(t, 1, bus.SubscriberCount("ev"))

	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "ev"}))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}
