package post

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/clock"
	"github.com/dailyexamresult/admin/internal/pkg/debounce"
	"github.com/dailyexamresult/admin/internal/pkg/pagination"
	"go.uber.org/zap"
)

const (
	loadFailed   = "Failed to load posts"
	deleteFailed = "Failed to delete post"

	// FilterAll disables a status or category filter.
	FilterAll = "all"
)

// ErrNotConfirmed is returned by Delete when the caller has not confirmed.
var ErrNotConfirmed = errors.New("delete requires confirmation")

// Phase is the list view's load state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// ListState is the parameter set of one posts query.
type ListState struct {
	Page     int
	Limit    int
	Status   string
	Category string
	Search   string
}

// DefaultListState is page 1 of everything at the default page size.
func DefaultListState() ListState {
	return ListState{Page: pagination.DefaultPage, Limit: pagination.DefaultLimit, Status: FilterAll, Category: FilterAll}
}

func (s ListState) normalized() ListState {
	if s.Page < 1 {
		s.Page = pagination.DefaultPage
	}
	s.Limit = pagination.NormalizeLimit(s.Limit)
	if s.Status == "" {
		s.Status = FilterAll
	}
	if s.Category == "" {
		s.Category = FilterAll
	}
	s.Search = strings.TrimSpace(s.Search)
	return s
}

// Values encodes the backend query, omitting "all" filters and empty search.
func (s ListState) Values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(s.Page))
	q.Set("limit", strconv.Itoa(s.Limit))
	if s.Status != "" && s.Status != FilterAll {
		q.Set("status", s.Status)
	}
	if s.Category != "" && s.Category != FilterAll {
		q.Set("category", s.Category)
	}
	if s.Search != "" {
		q.Set("search", s.Search)
	}
	return q
}

// Lister is the backend surface the list view needs.
type Lister interface {
	List(ctx context.Context, q url.Values) (*models.PostList, error)
	Delete(ctx context.Context, id string) error
}

// SupersededObserver counts responses dropped for arriving after a newer request.
type SupersededObserver interface {
	ObserveSuperseded(view string)
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	State ListState
	Phase Phase
	Posts []models.Post
	Total int64
	Pages int
	Err   string
	Seq   uint64
}

// Loading reports whether a fetch is in flight.
func (s Snapshot) Loading() bool { return s.Phase == PhaseLoading }

// Empty reports whether the view should show the empty-state message.
func (s Snapshot) Empty() bool { return s.Phase == PhaseSuccess && s.Total == 0 }

// RowNumber numbers rows across pages.
func (s Snapshot) RowNumber(index int) int {
	return pagination.RowNumber(s.State.Page, s.State.Limit, index)
}

// Window is the pagination bar for the snapshot.
func (s Snapshot) Window() []pagination.Item {
	return pagination.Window(s.State.Page, s.Pages)
}

// ControllerOptions tune a Controller.
type ControllerOptions struct {
	Debounce time.Duration
	Clock    clock.Clock
	Log      *zap.Logger
	Observer SupersededObserver
}

// Controller drives the posts list of one browser session. Every fetch gets
// a sequence number; a response older than the latest issued request is
// dropped. Search input is debounced.
type Controller struct {
	lister   Lister
	debounce *debounce.Debouncer
	log      *zap.Logger
	observer SupersededObserver
	ctx      context.Context
	cancel   context.CancelFunc

	mu      sync.Mutex
	state   ListState
	phase   Phase
	posts   []models.Post
	total   int64
	pages   int
	errMsg  string
	issued  uint64
	applied uint64

	searchGen   uint64 // bumped per keystroke
	queuedGen   uint64 // gen whose text is in state
	settledGen  uint64 // gen covered by the last applied response
	pendingText string
	changed     chan struct{}
}

func NewController(lister Lister, opts ControllerOptions) *Controller {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		lister:   lister,
		debounce: debounce.New(opts.Debounce, opts.Clock),
		log:      log,
		observer: opts.Observer,
		ctx:      ctx,
		cancel:   cancel,
		state:    DefaultListState(),
		changed:  make(chan struct{}),
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State: c.state,
		Phase: c.phase,
		Posts: append([]models.Post(nil), c.posts...),
		Total: c.total,
		Pages: c.pages,
		Err:   c.errMsg,
		Seq:   c.applied,
	}
}

// Navigate moves to want. On the first load want is taken as is. Afterwards
// any change of limit, status, category or search resets the page to 1 and
// only a bare page change keeps the requested page.
func (c *Controller) Navigate(ctx context.Context, want ListState) Snapshot {
	want = want.normalized()
	c.mu.Lock()
	if c.phase != PhaseIdle {
		cur := c.state
		if want.Limit != cur.Limit || want.Status != cur.Status ||
			want.Category != cur.Category || want.Search != cur.Search {
			want.Page = 1
		}
	}
	if want.Search != c.state.Search {
		c.queuedGen = c.searchGen
	}
	c.state = want
	c.mu.Unlock()
	return c.fetch(ctx)
}

// SetPage moves to page p, at least 1.
func (c *Controller) SetPage(ctx context.Context, p int) Snapshot {
	return c.update(ctx, func(s *ListState) {
		if p < 1 {
			p = 1
		}
		s.Page = p
	})
}

// SetLimit changes the page size and resets to page 1.
func (c *Controller) SetLimit(ctx context.Context, limit int) Snapshot {
	return c.update(ctx, func(s *ListState) {
		s.Limit = pagination.NormalizeLimit(limit)
		s.Page = 1
	})
}

// SetStatus changes the status filter and resets to page 1.
func (c *Controller) SetStatus(ctx context.Context, status string) Snapshot {
	return c.update(ctx, func(s *ListState) {
		s.Status = status
		s.Page = 1
	})
}

// SetCategory changes the category filter and resets to page 1.
func (c *Controller) SetCategory(ctx context.Context, category string) Snapshot {
	return c.update(ctx, func(s *ListState) {
		s.Category = category
		s.Page = 1
	})
}

// Refresh refetches the current state.
func (c *Controller) Refresh(ctx context.Context) Snapshot {
	return c.fetch(ctx)
}

func (c *Controller) update(ctx context.Context, mutate func(*ListState)) Snapshot {
	c.mu.Lock()
	mutate(&c.state)
	c.state = c.state.normalized()
	c.mu.Unlock()
	return c.fetch(ctx)
}

// SetSearch buffers text. The fetch fires once no input has arrived for the
// debounce window; it resets the page to 1 and is the only request issued.
// The returned ticket identifies this input for Await.
func (c *Controller) SetSearch(text string) uint64 {
	c.mu.Lock()
	c.searchGen++
	gen := c.searchGen
	c.pendingText = text
	c.notifyLocked()
	c.mu.Unlock()

	c.debounce.Trigger(func() { c.applySearch(gen) })
	return gen
}

func (c *Controller) applySearch(gen uint64) {
	c.mu.Lock()
	if gen != c.searchGen {
		c.mu.Unlock()
		return
	}
	c.state.Search = strings.TrimSpace(c.pendingText)
	c.state.Page = 1
	c.queuedGen = gen
	c.mu.Unlock()
	c.fetch(c.ctx)
}

// Await blocks until the search input named by ticket has been fetched and
// returns the settled snapshot. It reports false when newer input superseded
// the ticket or ctx ended first.
func (c *Controller) Await(ctx context.Context, ticket uint64) (Snapshot, bool) {
	for {
		c.mu.Lock()
		if c.searchGen != ticket {
			c.mu.Unlock()
			return Snapshot{}, false
		}
		if c.settledGen >= ticket && c.phase != PhaseLoading {
			snap := c.snapshotLocked()
			c.mu.Unlock()
			return snap, true
		}
		ch := c.changed
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return Snapshot{}, false
		}
	}
}

// Delete removes id and refetches the current page. It refuses to act
// without confirmation.
func (c *Controller) Delete(ctx context.Context, id string, confirmed bool) (Snapshot, error) {
	if !confirmed {
		return c.Snapshot(), ErrNotConfirmed
	}
	if err := c.lister.Delete(ctx, id); err != nil {
		c.log.Error("delete post", zap.String("id", id), zap.Error(err))
		return c.Snapshot(), err
	}
	return c.fetch(ctx), nil
}

// Close cancels any debounced fetch.
func (c *Controller) Close() {
	c.debounce.Stop()
	c.cancel()
}

// fetch issues a request for the current state. When a page past the end
// comes back empty, it steps to the new last page and fetches once more.
func (c *Controller) fetch(ctx context.Context) Snapshot {
	for {
		c.mu.Lock()
		c.issued++
		seq := c.issued
		gen := c.queuedGen
		state := c.state
		c.phase = PhaseLoading
		c.notifyLocked()
		c.mu.Unlock()

		list, err := c.lister.List(ctx, state.Values())

		c.mu.Lock()
		if seq < c.issued {
			snap := c.snapshotLocked()
			c.mu.Unlock()
			c.log.Debug("discard superseded posts response", zap.Uint64("seq", seq))
			if c.observer != nil {
				c.observer.ObserveSuperseded("posts")
			}
			return snap
		}

		c.applied = seq
		if gen > c.settledGen {
			c.settledGen = gen
		}
		if err != nil {
			c.log.Error("list posts", zap.Error(err))
			c.phase = PhaseError
			c.errMsg = loadFailed
			c.posts = nil
			c.notifyLocked()
			snap := c.snapshotLocked()
			c.mu.Unlock()
			return snap
		}

		c.posts = list.Posts
		c.total = list.Pagination.Total
		c.pages = list.Pagination.Pages
		c.errMsg = ""
		if len(c.posts) == 0 && state.Page > 1 && state.Page > c.pages {
			if c.pages >= 1 {
				c.state.Page = c.pages
				c.mu.Unlock()
				continue
			}
			c.state.Page = 1
		}
		c.phase = PhaseSuccess
		c.notifyLocked()
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
}

func (c *Controller) notifyLocked() {
	close(c.changed)
	c.changed = make(chan struct{})
}
