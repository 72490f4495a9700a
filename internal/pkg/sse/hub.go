package sse

import (
	"sync"
)

// Event represents an SSE event to be sent to subscribers of a batch job
type Event struct {
	JobID string
	Event string
	Data  interface{}
}

// Hub manages SSE subscribers and event broadcasting, keyed by job ID
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber for a job and returns the event
// channel and a cleanup function
func (h *Hub) Subscribe(jobID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)

	if h.subscribers[jobID] == nil {
		h.subscribers[jobID] = make(map[chan Event]struct{})
	}
	h.subscribers[jobID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[jobID][ch]; !ok {
			return
		}
		delete(h.subscribers[jobID], ch)
		close(ch)
		if len(h.subscribers[jobID]) == 0 {
			delete(h.subscribers, jobID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a job
func (h *Hub) Publish(jobID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[jobID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a job
func (h *Hub) SubscriberCount(jobID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[jobID]; ok {
		return len(subs)
	}
	return 0
}
