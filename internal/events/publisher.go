// Package events distributes editor changes to projections such as the
// terminal view, the HTTP metrics and the log. Dispatch is synchronous:
// Publish returns once every handler ran.
package events

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/cssplay/internal/logger"
)

const (
	// CSSChanged is published after any editor state change.
	CSSChanged = "css.changed"
	// PresetApplied is published when a preset replaced an editor's state.
	PresetApplied = "preset.applied"
	// CSSCopied is published when CSS text reached the clipboard.
	CSSCopied = "css.copied"
	// CSSCopyFailed is published when the clipboard refused the text.
	CSSCopyFailed = "css.copy_failed"

	// All subscribes a handler to every event type.
	All = "*"
)

// Event is a change notification. Payload keys are flat so they can be
// written as log fields.
type Event struct {
	Type    string
	Editor  string
	Payload map[string]any
}

// Handler processes one event. Returned errors are logged and do not stop
// delivery to the remaining handlers.
type Handler func(context.Context, Event) error

// Subscription is a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Publisher fans events out to subscribers and logs each one at debug
// level. It is safe for concurrent use.
type Publisher struct {
	logger *logger.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewPublisher creates a publisher writing events to log. A nil logger
// disables event logging.
func NewPublisher(log *logger.Logger) *Publisher {
	return &Publisher{
		logger: log,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and runs the handlers subscribed to its type, then
// those subscribed to All.
func (p *Publisher) Publish(ctx context.Context, event Event) {
	if p == nil || event.Type == "" {
		return
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.Type]...)
	handlers = append(handlers, p.subs[All]...)
	p.mu.RUnlock()

	fields := make(map[string]any, len(event.Payload)+2)
	for key, value := range event.Payload {
		fields[key] = value
	}
	fields["event_type"] = event.Type
	if event.Editor != "" {
		fields["editor"] = event.Editor
	}
	p.logger.DebugFields("editor event", fields)

	for _, entry := range handlers {
		if entry.handler == nil {
			continue
		}
		if err := entry.handler(ctx, event); err != nil {
			p.logger.WithFields(map[string]any{"event_type": event.Type}).Error(err, "event handler failed")
		}
	}
}

// Subscribe registers a handler for eventType, or for every event when
// eventType is All.
func (p *Publisher) Subscribe(eventType string, handler Handler) Subscription {
	if p == nil || handler == nil {
		return noopSubscription{}
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
