package cli

import (
	"context"

	"github.com/rshade/licensedesk/internal/customers"
	"github.com/rshade/licensedesk/internal/logging"
)

// ParseFilter builds the customer filter from command flags. An empty status
// falls back to base. It logs validation failures for debugging.
func ParseFilter(
	ctx context.Context,
	base customers.FilterState,
	status, productID, search string,
) (customers.FilterState, error) {
	log := logging.FromContext(ctx)

	filter := base
	if status != "" {
		st, err := customers.ParseStatus(status)
		if err != nil {
			log.Warn().Ctx(ctx).
				Str("component", "cli").
				Str("operation", "parse_filter").
				Str("status", status).
				Err(err).
				Msg("invalid status filter")
			return customers.FilterState{}, err
		}
		filter.Status = st
	}
	if productID != "" {
		filter.ProductID = productID
	}
	if search != "" {
		filter.Search = search
	}
	filter = filter.Normalized()

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "parse_filter").
		Str("status", string(filter.Status)).
		Str("product_id", filter.ProductID).
		Str("search", filter.Search).
		Msg("resolved customer filter")

	return filter, nil
}
