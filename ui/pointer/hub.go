// Package pointer holds the application-wide pointer listeners. It plays the
// part of the document: components that need every move and release while a
// drag is in progress subscribe here instead of relying on events addressed
// to them.
package pointer

import (
	"slices"
	"sync"
)

// A Listener receives global pointer events.
type Listener interface {
	PointerMove(x, y float64)
	PointerUp(x, y float64)
}

// Hub delivers pointer events to all subscribed listeners, synchronously and
// in arrival order.
type Hub struct {
	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
}

func NewHub() *Hub {
	return &Hub{listeners: make(map[int]Listener)}
}

// A Subscription is the handle returned by Subscribe. Release removes the
// listener; it may be called any number of times.
type Subscription struct {
	hub *Hub
	id  int

	once sync.Once
}

// Subscribe registers l and returns the handle that removes it.
func (h *Hub) Subscribe(l Listener) *Subscription {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = l
	h.mu.Unlock()

	return &Subscription{hub: h, id: id}
}

func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.listeners, s.id)
		s.hub.mu.Unlock()
	})
}

// Move forwards a pointer move to every listener.
func (h *Hub) Move(x, y float64) {
	for _, l := range h.snapshot() {
		l.PointerMove(x, y)
	}
}

// Up forwards a button release to every listener. Listeners commonly release
// their own subscription from here.
func (h *Hub) Up(x, y float64) {
	for _, l := range h.snapshot() {
		l.PointerUp(x, y)
	}
}

// Count returns the number of live subscriptions.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// snapshot copies the listeners in subscription order so that dispatch does
// not hold the lock while callbacks run.
func (h *Hub) snapshot() []Listener {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Listener, len(ids))
	for i, id := range ids {
		out[i] = h.listeners[id]
	}
	return out
}
