package catalog

import (
	"context"
	"net/http"
)

// CategoryService is the read-only client for /Categories.
type CategoryService struct {
	api *Client
}

// List fetches all categories.
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.api.do(ctx, http.MethodGet, "/Categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
