// Package views keeps the navigation state of every open page view.
package views

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/navigation"
)

// ErrViewNotFound is returned for unknown or expired view ids.
var ErrViewNotFound = errors.New("view not found")

// scrollQueue is the surface of a server-side view. Scroll requests are
// queued and handed to the client after the command completes.
type scrollQueue struct {
	pending []content.Section
}

func (q *scrollQueue) ScrollTo(section content.Section) {
	q.pending = append(q.pending, section)
}

func (q *scrollQueue) drain() []content.Section {
	out := q.pending
	q.pending = nil
	return out
}

// Result is the outcome of one command.
type Result struct {
	State   navigation.State  `json:"state"`
	Scrolls []content.Section `json:"scrolls,omitempty"`
}

// View is one page view. Commands are applied one at a time.
type View struct {
	ID      string
	Created time.Time

	reg     *Registry
	mu      sync.Mutex
	nav     *navigation.Navigator
	surface *scrollQueue

	lastSeen time.Time // guarded by Registry.mu
}

// State returns a snapshot of the view's state.
func (v *View) State() navigation.State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nav.State()
}

// Apply runs cmd and returns the resulting state together with the scroll
// requests it produced. A rejected command leaves the state unchanged.
// Every command counts as activity; a view that has already expired
// returns ErrViewNotFound.
func (v *View) Apply(cmd navigation.Command) (Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.reg.touch(v); err != nil {
		return Result{State: v.nav.State()}, err
	}
	err := v.nav.Dispatch(cmd)
	res := Result{State: v.nav.State(), Scrolls: v.surface.drain()}
	return res, err
}

// Options configures a Registry.
type Options struct {
	TTL      time.Duration // idle time after which a view expires
	MaxViews int           // least recently used views are evicted beyond this
}

// Registry owns all live views.
type Registry struct {
	content *content.Registry
	opts    Options
	now     func() time.Time

	mu    sync.Mutex
	views map[string]*View
}

// NewRegistry creates an empty Registry.
func NewRegistry(reg *content.Registry, opts Options) *Registry {
	return &Registry{
		content: reg,
		opts:    opts,
		now:     time.Now,
		views:   make(map[string]*View),
	}
}

// Create opens a new view in the initial state.
func (r *Registry) Create() *View {
	surface := &scrollQueue{}
	now := r.now()
	v := &View{
		ID:       uuid.New().String(),
		Created:  now,
		reg:      r,
		nav:      navigation.New(r.content, surface),
		surface:  surface,
		lastSeen: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.opts.MaxViews > 0 && len(r.views) >= r.opts.MaxViews {
		r.evictOldestLocked()
	}
	r.views[v.ID] = v
	return v
}

// Get returns the view with the given id and marks it as recently used.
func (r *Registry) Get(id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	now := r.now()
	if r.expiredLocked(v, now) {
		delete(r.views, id)
		return nil, ErrViewNotFound
	}
	v.lastSeen = now
	return v, nil
}

// touch marks v as used now. It fails if v expired or was evicted.
func (r *Registry) touch(v *View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.views[v.ID]; !ok || cur != v {
		return ErrViewNotFound
	}
	now := r.now()
	if r.expiredLocked(v, now) {
		delete(r.views, v.ID)
		return ErrViewNotFound
	}
	v.lastSeen = now
	return nil
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep removes expired views and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, v := range r.views {
		if r.expiredLocked(v, now) {
			delete(r.views, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired views every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("views: expired %d idle views", n)
			}
		}
	}
}

func (r *Registry) expiredLocked(v *View, now time.Time) bool {
	return r.opts.TTL > 0 && now.Sub(v.lastSeen) > r.opts.TTL
}

func (r *Registry) evictOldestLocked() {
	var oldest *View
	for _, v := range r.views {
		if oldest == nil || v.lastSeen.Before(oldest.lastSeen) {
			oldest = v
		}
	}
	if oldest != nil {
		delete(r.views, oldest.ID)
	}
}
