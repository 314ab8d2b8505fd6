package profile

import "sync"

// subscriberBuffer bounds how many undelivered events a subscriber may
// accumulate before further events are dropped for it.
const subscriberBuffer = 8

// notifier fans session events out to subscribers. Sends never block: a
// subscriber that stops draining its channel misses events instead of
// stalling sign-in or sign-out.
type notifier struct {
	mu   sync.Mutex
	subs map[<-chan Event]chan Event
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[<-chan Event]chan Event)}
}

func (n *notifier) subscribe() <-chan Event {
	ch := make(chan Event, subscriberBuffer)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs[ch] = ch
	return ch
}

func (n *notifier) unsubscribe(ch <-chan Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if sub, ok := n.subs[ch]; ok {
		delete(n.subs, ch)
		close(sub)
	}
}

func (n *notifier) broadcast(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, sub := range n.subs {
		select {
		case sub <- e:
		default:
		}
	}
}
