package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cssplay/internal/logger"
)

func newDebugLogger(t *testing.T, buf *bytes.Buffer) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return log
}

func TestPublisherLogsEvents(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewPublisher(newDebugLogger(t, buf))

	publisher.Publish(context.Background(), Event{
		Type:    PresetApplied,
		Editor:  "gradient",
		Payload: map[string]any{"preset": "mesh"},
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "editor event", entry["message"])
	require.Equal(t, PresetApplied, entry["event_type"])
	require.Equal(t, "gradient", entry["editor"])
	require.Equal(t, "mesh", entry["preset"])
}

func TestPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	publisher := NewPublisher(logger.Nop())

	var got []string
	sub := publisher.Subscribe(CSSChanged, func(_ context.Context, e Event) error {
		got = append(got, "typed:"+e.Editor)
		return nil
	})
	publisher.Subscribe(All, func(_ context.Context, e Event) error {
		got = append(got, "all:"+e.Type)
		return nil
	})

	publisher.Publish(context.Background(), Event{Type: CSSChanged, Editor: "border"})
	publisher.Publish(context.Background(), Event{Type: CSSCopied, Editor: "border"})
	require.Equal(t, []string{"typed:border", "all:css.changed", "all:css.copied"}, got)

	sub.Unsubscribe()
	got = nil
	publisher.Publish(context.Background(), Event{Type: CSSChanged, Editor: "border"})
	require.Equal(t, []string{"all:css.changed"}, got)
}

func TestPublisherContinuesAfterHandlerError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewPublisher(newDebugLogger(t, buf))

	called := false
	publisher.Subscribe(CSSCopyFailed, func(context.Context, Event) error {
		return errors.New("projection broke")
	})
	publisher.Subscribe(CSSCopyFailed, func(context.Context, Event) error {
		called = true
		return nil
	})

	publisher.Publish(context.Background(), Event{Type: CSSCopyFailed})
	require.True(t, called)
	require.True(t, strings.Contains(buf.String(), "projection broke"))
}

func TestPublisherIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	publisher := NewPublisher(nil)

	var (
		mu    sync.Mutex
		count int
	)
	publisher.Subscribe(All, func(context.Context, Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := publisher.Subscribe(CSSChanged, func(context.Context, Event) error { return nil })
			publisher.Publish(context.Background(), Event{Type: CSSChanged})
			sub.Unsubscribe()
		}()
	}
	wg.Wait()
	require.Equal(t, 20, count)
}

func TestNilPublisherIsNoop(t *testing.T) {
	t.Parallel()

	var publisher *Publisher
	publisher.Publish(context.Background(), Event{Type: CSSChanged})
	publisher.Subscribe(CSSChanged, func(context.Context, Event) error { return nil }).Unsubscribe()
}
