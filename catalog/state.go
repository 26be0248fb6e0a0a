package catalog

import "github.com/catalogkit/catalogkit/internal/pubsub"

// Pagination is the paging view the list UI renders.
type Pagination struct {
	Page       int
	PageSize   int
	TotalCount int
}

// ProductsState is the observable client-side state behind a product list:
// the current page of products, a loading flag, the last error, and the
// paging view. Each cell updates independently and notifies its own
// subscribers.
type ProductsState struct {
	products   *pubsub.Cell[[]Product]
	loading    *pubsub.Cell[bool]
	lastError  *pubsub.Cell[string]
	pagination *pubsub.Cell[Pagination]
}

// NewProductsState returns an empty state with page 1 of 10.
func NewProductsState() *ProductsState {
	return &ProductsState{
		products:   pubsub.NewCell[[]Product](nil),
		loading:    pubsub.NewCell(false),
		lastError:  pubsub.NewCell(""),
		pagination: pubsub.NewCell(Pagination{Page: 1, PageSize: 10}),
	}
}

// Products returns the current page of products.
func (s *ProductsState) Products() []Product { return s.products.Get() }

// SetProducts replaces the product list.
func (s *ProductsState) SetProducts(products []Product) { s.products.Set(products) }

// SubscribeProducts registers fn for product-list updates.
func (s *ProductsState) SubscribeProducts(fn func([]Product)) (cancel func()) {
	return s.products.Subscribe(fn)
}

// Loading reports whether a fetch is in flight.
func (s *ProductsState) Loading() bool { return s.loading.Get() }

// SetLoading flips the loading flag.
func (s *ProductsState) SetLoading(loading bool) { s.loading.Set(loading) }

// SubscribeLoading registers fn for loading-flag updates.
func (s *ProductsState) SubscribeLoading(fn func(bool)) (cancel func()) {
	return s.loading.Subscribe(fn)
}

// Error returns the last error message, empty when none.
func (s *ProductsState) Error() string { return s.lastError.Get() }

// SetError records an error message; empty clears it.
func (s *ProductsState) SetError(msg string) { s.lastError.Set(msg) }

// Pagination returns the current paging view.
func (s *ProductsState) Pagination() Pagination { return s.pagination.Get() }

// SetPagination replaces the paging view.
func (s *ProductsState) SetPagination(p Pagination) { s.pagination.Set(p) }

// Add appends a product to the current list.
func (s *ProductsState) Add(product Product) {
	current := s.products.Get()
	next := make([]Product, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, product)
	s.products.Set(next)
}

// Update replaces the product with the same id, if present.
func (s *ProductsState) Update(updated Product) {
	current := s.products.Get()
	for i, p := range current {
		if p.ID == updated.ID {
			next := make([]Product, len(current))
			copy(next, current)
			next[i] = updated
			s.products.Set(next)
			return
		}
	}
}

// Remove drops the product with the given id, if present.
func (s *ProductsState) Remove(productID string) {
	current := s.products.Get()
	next := current[:0:0]
	for _, p := range current {
		if p.ID != productID {
			next = append(next, p)
		}
	}
	if len(next) != len(current) {
		s.products.Set(next)
	}
}
