package api

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/licensedesk/internal/customers"
)

// CountByStatus returns the number of customers per status, optionally
// restricted to one product. The per-status requests run concurrently and the
// first failure cancels the rest.
func (c *Client) CountByStatus(ctx context.Context, productID string) (map[customers.Status]int, error) {
	statuses := customers.RowStatuses()
	counts := make(map[customers.Status]int, len(statuses))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, st := range statuses {
		g.Go(func() error {
			rows, err := c.ListCustomers(gctx, customers.FilterState{Status: st, ProductID: productID})
			if err != nil {
				return fmt.Errorf("counting %s customers: %w", st, err)
			}
			mu.Lock()
			counts[st] = len(rows)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
