package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// Watcher detects identity changes. It polls on a fixed interval and also
// reacts to filesystem change events on the local store, so an external
// write to the identity keys is picked up without waiting a full tick.
// The observer interface hides polling as an implementation detail.
type Watcher struct {
	manager  *Manager
	interval time.Duration

	mu        sync.Mutex
	last      models.Identity
	callbacks []func(old, current models.Identity)

	stop chan struct{}
	done chan struct{}
}

func NewWatcher(manager *Manager, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		manager:  manager,
		interval: interval,
		last:     manager.CurrentIdentity(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// OnIdentityChanged registers an observer. Callbacks run on the watcher
// goroutine, in registration order.
func (w *Watcher) OnIdentityChanged(fn func(old, current models.Identity)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Start begins watching. watchPath, when non-empty, is the local store file
// observed for change signals; a failed filesystem watch degrades to
// polling only and is never fatal.
func (w *Watcher) Start(watchPath string) {
	var fsEvents chan fsnotify.Event
	fw, err := fsnotify.NewWatcher()
	if err == nil && watchPath != "" {
		if err := fw.Add(watchPath); err != nil {
			log.Printf("⚠️ Could not watch local store file, polling only: %v", err)
			fw.Close()
			fw = nil
		} else {
			fsEvents = make(chan fsnotify.Event, 1)
			go forwardEvents(fw, fsEvents)
		}
	} else if err != nil {
		log.Printf("⚠️ fsnotify unavailable, polling only: %v", err)
		fw = nil
	}

	go func() {
		defer close(w.done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		if fw != nil {
			defer fw.Close()
		}
		for {
			select {
			case <-ticker.C:
				w.Check()
			case <-fsEvents:
				w.Check()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop shuts the watcher down and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	close(w.stop)
	<-w.done
}

// Check compares the stored identity against the last-observed one and
// fires the observers on a difference. Exposed so the tick source is not
// the only way to trigger a check.
func (w *Watcher) Check() {
	current := w.manager.CurrentIdentity()

	w.mu.Lock()
	old := w.last
	if current == old {
		w.mu.Unlock()
		return
	}
	w.last = current
	callbacks := make([]func(old, current models.Identity), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	if current.Anonymous() {
		log.Printf("👤 Identity change detected: %s → guest", old.Email)
	} else {
		log.Printf("👤 Identity change detected: → %s", current.Email)
	}
	for _, fn := range callbacks {
		fn(old, current)
	}
}

func forwardEvents(fw *fsnotify.Watcher, out chan<- fsnotify.Event) {
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			select {
			case out <- ev:
			default: // a pending signal already queued is enough
			}
		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// UserData is what the watcher drives on an identity change: the state
// container's clear/reload cycle.
type UserData interface {
	ClearUserData()
	RefreshUserData(ctx context.Context)
}

// Bind wires the reaction to an identity change: clear immediately, and on
// login reload for the new identity after a short settle delay. Logout only
// clears; the guest view reloads from the local store on its next Load.
func Bind(w *Watcher, data UserData, settle time.Duration) {
	w.OnIdentityChanged(func(_, current models.Identity) {
		data.ClearUserData()
		if current.Anonymous() {
			return
		}
		time.AfterFunc(settle, func() {
			data.RefreshUserData(context.Background())
		})
	})
}
