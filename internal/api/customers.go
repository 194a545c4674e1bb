package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rshade/licensedesk/internal/customers"
)

type listCustomersResponse struct {
	Envelope
	Customers []customers.Row `json:"customers"`
}

// CustomerQuery builds the query string for GET /customers from a filter.
// Empty constraints are omitted; StatusAll omits the status parameter.
func CustomerQuery(filter customers.FilterState) url.Values {
	filter = filter.Normalized()
	q := url.Values{}
	if filter.Status != customers.StatusAll {
		q.Set("status", string(filter.Status))
	}
	if filter.ProductID != "" {
		q.Set("product_id", filter.ProductID)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	return q
}

// ListCustomers fetches the customers matching filter.
// The result is never nil on success.
func (c *Client) ListCustomers(ctx context.Context, filter customers.FilterState) ([]customers.Row, error) {
	var resp listCustomersResponse
	if err := c.do(ctx, http.MethodGet, "/customers", CustomerQuery(filter), &resp); err != nil {
		return nil, err
	}
	if resp.Customers == nil {
		return []customers.Row{}, nil
	}
	return resp.Customers, nil
}

// DeleteCustomer deletes one customer by ID.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	var resp Envelope
	return c.do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id), nil, &resp)
}
