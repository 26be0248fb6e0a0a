package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ProductService is the CRUD client for /Products.
type ProductService struct {
	api *Client
}

// List fetches one page of products.
func (s *ProductService) List(ctx context.Context, pageNumber, pageSize int) (*PaginatedResult[Product], error) {
	query := url.Values{}
	query.Set("pageNumber", strconv.Itoa(pageNumber))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var page PaginatedResult[Product]
	if err := s.api.do(ctx, http.MethodGet, "/Products", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := s.api.do(ctx, http.MethodGet, "/Products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create submits a new product and returns its id.
func (s *ProductService) Create(ctx context.Context, in CreateProduct) (string, error) {
	var id string
	if err := s.api.do(ctx, http.MethodPost, "/Products", nil, in, &id); err != nil {
		return "", err
	}
	return id, nil
}

// Update replaces a product's fields.
func (s *ProductService) Update(ctx context.Context, id string, in UpdateProduct) error {
	return s.api.do(ctx, http.MethodPut, "/Products/"+url.PathEscape(id), nil, in, nil)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.api.do(ctx, http.MethodDelete, "/Products/"+url.PathEscape(id), nil, nil, nil)
}
