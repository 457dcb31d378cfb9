// Package events provides the publish/subscribe relay that connects collision
// handlers to entity state changes.
//
// Delivery is synchronous: Publish returns after every handler ran, in the
// order handlers subscribed. A handler may subscribe, unsubscribe or publish
// from inside a callback; dispatch iterates over a snapshot of the handler list.
package events

import "sync"

// Topic names a kind of event.
type Topic string

// Event is anything that can be published on a Bus.
type Event interface {
	Topic() Topic
}

// Handler receives published events.
type Handler func(Event)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus routes events to subscribed handlers.
// The zero value is not usable; create buses with NewBus.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]subscription
	nextID   uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Topic][]subscription),
	}
}

// Subscribe registers a handler for a topic.
// The returned function removes the subscription; calling it twice is a no-op.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[topic] = append(b.handlers[topic], subscription{id: id, handler: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(topic, id) })
	}
}

func (b *Bus) remove(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[topic]
	for i, s := range subs {
		if s.id == id {
			// Copy so in-flight snapshots keep their view
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, topic)
			} else {
				b.handlers[topic] = next
			}
			return
		}
	}
}

// Publish delivers an event to every handler subscribed to its topic.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := b.handlers[e.Topic()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(e)
	}
}

// Off removes every handler for a topic.
func (b *Bus) Off(topic Topic) {
	b.mu.Lock()
	delete(b.handlers, topic)
	b.mu.Unlock()
}

// Reset removes every handler on every topic.
func (b *Bus) Reset() {
	b.mu.Lock()
	b.handlers = make(map[Topic][]subscription)
	b.mu.Unlock()
}

// Count returns the number of handlers subscribed to a topic.
func (b *Bus) Count(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}

// Group collects unsubscribe functions so a scene can tear down all of its
// listeners at shutdown.
type Group struct {
	bus   *Bus
	unsub []func()
}

// NewGroup creates a subscription group on a bus.
func NewGroup(b *Bus) *Group {
	return &Group{bus: b}
}

// On subscribes a handler and remembers how to remove it.
func (g *Group) On(topic Topic, h Handler) {
	g.unsub = append(g.unsub, g.bus.Subscribe(topic, h))
}

// Close removes every subscription made through the group.
func (g *Group) Close() {
	for _, u := range g.unsub {
		u()
	}
	g.unsub = nil
}
