package catalog

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopmix/catalog/pkg/common"
	"github.com/shopmix/catalog/pkg/feed"
	"github.com/shopmix/catalog/pkg/sorting"
	"github.com/shopmix/catalog/pkg/storage"
	"github.com/shopmix/catalog/pkg/types"
)

// RefreshDebounce is the quiet period refresh triggers are coalesced by.
const RefreshDebounce = 300 * time.Millisecond

// Coordinator owns the in-memory product snapshot and answers browse
// queries against it. Refreshes from the upstream feed are generation
// tagged: a fetch that finishes after a newer one started is thrown away,
// a slow stale response can never overwrite fresher data.
type Coordinator struct {
	Feed    *feed.Client
	Storage *storage.DiskStorage

	mu         sync.RWMutex
	products   []types.Product
	generation atomic.Uint64
	debouncer  *common.Debouncer

	FetchPerPage  int
	FetchMaxPages int
}

func NewCoordinator(client *feed.Client, store *storage.DiskStorage) *Coordinator {
	c := &Coordinator{
		Feed:         client,
		Storage:      store,
		FetchPerPage: 200,
	}
	c.debouncer = common.NewDebouncer(RefreshDebounce, func() {
		if err := c.Refresh(context.Background()); err != nil {
			log.Printf("Snapshot refresh failed: %v", err)
		}
	})
	return c
}

// Snapshot returns the current product list. The slice is shared, callers
// must treat it as read-only.
func (c *Coordinator) Snapshot() []types.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products
}

func (c *Coordinator) setSnapshot(products []types.Product) {
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
}

// LoadFromDisk seeds the snapshot from the last persisted state, if any.
func (c *Coordinator) LoadFromDisk() error {
	if c.Storage == nil {
		return nil
	}
	products, err := c.Storage.LoadSnapshot()
	if err != nil {
		return err
	}
	if len(products) > 0 {
		c.setSnapshot(products)
		log.Printf("Loaded %d products from disk snapshot", len(products))
	}
	return nil
}

// SaveToDisk persists the current snapshot.
func (c *Coordinator) SaveToDisk() error {
	if c.Storage == nil {
		return nil
	}
	return c.Storage.SaveSnapshot(c.Snapshot())
}

// Refresh pulls the full collection from the feed and swaps the snapshot,
// unless a newer refresh started meanwhile. On error the previous snapshot
// stays in place so the API keeps serving, retry is just triggering again.
func (c *Coordinator) Refresh(ctx context.Context) error {
	gen := c.generation.Add(1)
	products, err := c.Feed.FetchAll(ctx, c.FetchPerPage, c.FetchMaxPages)
	if err != nil {
		return err
	}
	if c.generation.Load() != gen {
		log.Printf("Discarding stale refresh (generation %d)", gen)
		return nil
	}
	c.setSnapshot(products)
	log.Printf("Snapshot refreshed, %d products", len(products))
	return nil
}

// RequestRefresh schedules a debounced refresh, folding bursts of triggers
// into one upstream walk.
func (c *Coordinator) RequestRefresh() {
	c.debouncer.Trigger()
}

// QueryResult is one page of a browse query with its facet sidebar.
type QueryResult struct {
	Items     []types.Product `json:"items"`
	Facets    types.Facets    `json:"facets"`
	TotalHits int             `json:"totalHits"`
	Page      int             `json:"page"`
	PerPage   int             `json:"perPage"`
	HasMore   bool            `json:"hasMore"`
	Sort      string          `json:"sort"`
}

// Query filters, counts, sorts and paginates the snapshot for one filter
// state. Pure with respect to the snapshot, every derived structure is
// recomputed.
func (c *Coordinator) Query(state types.FilterState) QueryResult {
	products := c.Snapshot()
	if state.Page < 1 {
		state.Page = 1
	}
	if state.PerPage <= 0 {
		state.PerPage = types.DefaultPerPage
	}

	matched := Apply(products, state)
	facets := FacetsFor(products, state)
	opt := sorting.BySlug(state.Sort)
	ordered := sorting.Apply(matched, opt.Key, opt.Reverse)

	total := len(ordered)
	start := (state.Page - 1) * state.PerPage
	if start > total {
		start = total
	}
	end := start + state.PerPage
	if end > total {
		end = total
	}

	return QueryResult{
		Items:     ordered[start:end],
		Facets:    facets,
		TotalHits: total,
		Page:      state.Page,
		PerPage:   state.PerPage,
		HasMore:   end < total,
		Sort:      opt.Slug,
	}
}

// Product finds one product by handle, from the snapshot first and falling
// back to a direct upstream read when the snapshot misses it.
func (c *Coordinator) Product(ctx context.Context, handle string) (*types.Product, error) {
	c.mu.RLock()
	for i := range c.products {
		if c.products[i].Handle == handle {
			p := c.products[i]
			c.mu.RUnlock()
			return &p, nil
		}
	}
	c.mu.RUnlock()
	return c.Feed.FetchProduct(ctx, handle)
}

// Related returns up to limit products from the same store, excluding the
// product itself.
func (c *Coordinator) Related(p *types.Product, limit int) []types.Product {
	products := c.Snapshot()
	related := make([]types.Product, 0, limit)
	for i := range products {
		if products[i].Id == p.Id {
			continue
		}
		if products[i].Source.StoreName != p.Source.StoreName {
			continue
		}
		related = append(related, products[i])
		if len(related) == limit {
			break
		}
	}
	return related
}
