// Package menu holds the navigation dropdown state: which category menu is
// open and which category tour lists have been fetched.
package menu

import (
	"sync"
	"time"

	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/pkg/logger"
)

const (
	DefaultHoverDelay = 150 * time.Millisecond
	DefaultLimit      = 8
)

// TourSource is satisfied by service.CategoryService.
type TourSource interface {
	MenuTours(categorySlug string, limit int) ([]content.Summary, error)
}

// Dropdown is one mounted navigation menu. Opening a category waits for the
// hover delay before fetching its tours; fetched lists are cached for the
// lifetime of this instance only. Separate instances never share a cache or
// coalesce fetches.
type Dropdown struct {
	mu        sync.Mutex
	source    TourSource
	delay     time.Duration
	limit     int
	pending   map[string]*pendingOpen
	cache     map[string][]content.Summary
	open      string
	unmounted bool
	wg        sync.WaitGroup
}

type pendingOpen struct {
	timer *time.Timer
}

func NewDropdown(source TourSource, delay time.Duration, limit int) *Dropdown {
	if delay < 0 {
		delay = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Dropdown{
		source:  source,
		delay:   delay,
		limit:   limit,
		pending: make(map[string]*pendingOpen),
		cache:   make(map[string][]content.Summary),
	}
}

// Open schedules the menu for categorySlug to open after the hover delay.
// Re-opening a category that is still pending restarts its delay.
func (d *Dropdown) Open(categorySlug string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.unmounted {
		return
	}
	d.cancelLocked(categorySlug)

	p := &pendingOpen{}
	d.wg.Add(1)
	p.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.fire(categorySlug, p)
	})
	d.pending[categorySlug] = p
}

// Close cancels a pending open and closes the menu if it is showing categorySlug.
func (d *Dropdown) Close(categorySlug string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked(categorySlug)
	if d.open == categorySlug {
		d.open = ""
	}
}

// Unmount stops every pending open. Fetches already in flight run to
// completion but their results are dropped.
func (d *Dropdown) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.unmounted = true
	for slug := range d.pending {
		d.cancelLocked(slug)
	}
	d.open = ""
}

// OpenCategory is the category currently shown, or "".
func (d *Dropdown) OpenCategory() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Items returns the cached tours for categorySlug.
func (d *Dropdown) Items(categorySlug string) ([]content.Summary, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	tours, ok := d.cache[categorySlug]
	return tours, ok
}

// Wait blocks until every fired open, including its fetch, has finished.
func (d *Dropdown) Wait() {
	d.wg.Wait()
}

func (d *Dropdown) cancelLocked(categorySlug string) {
	p, ok := d.pending[categorySlug]
	if !ok {
		return
	}
	delete(d.pending, categorySlug)
	if p.timer.Stop() {
		d.wg.Done()
	}
}

func (d *Dropdown) fire(categorySlug string, p *pendingOpen) {
	d.mu.Lock()
	if d.unmounted || d.pending[categorySlug] != p {
		d.mu.Unlock()
		return
	}
	delete(d.pending, categorySlug)
	d.open = categorySlug
	_, cached := d.cache[categorySlug]
	d.mu.Unlock()

	if cached {
		return
	}

	tours, err := d.source.MenuTours(categorySlug, d.limit)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.unmounted {
		logger.Debug("Dropping menu fetch for unmounted dropdown", map[string]interface{}{
			"category": categorySlug,
		})
		return
	}
	if err != nil {
		logger.Warn("Failed to load menu tours", map[string]interface{}{
			"category": categorySlug,
			"error":    err.Error(),
		})
		return
	}
	d.cache[categorySlug] = tours
}
