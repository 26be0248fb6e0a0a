package catalog

// Category is a product grouping as the backend represents it.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Product is a catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Category    Category `json:"category"`
}

// CreateProduct is the payload for creating a product.
type CreateProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CategoryID  string `json:"categoryId"`
}

// UpdateProduct is the payload for replacing a product's fields.
type UpdateProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CategoryID  string `json:"categoryId"`
}

// PaginatedResult is one page of a listing plus its paging envelope,
// field-for-field what the backend emits.
type PaginatedResult[T any] struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
	Items      []T `json:"items"`
}

// PurchaseRequest asks the backend to purchase a quantity of one product.
// RequestID lets the backend de-duplicate retried submissions; QuickPurchase
// fills it automatically.
type PurchaseRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UserID    string `json:"userId,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// PurchaseResponse is the backend's verdict on a purchase.
type PurchaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}
