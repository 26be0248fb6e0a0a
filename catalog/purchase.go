package catalog

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// PurchaseService is the client for /Purchase.
type PurchaseService struct {
	api *Client
}

// Purchase submits a purchase request as given.
func (s *PurchaseService) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResponse, error) {
	var res PurchaseResponse
	if err := s.api.do(ctx, http.MethodPost, "/Purchase", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// QuickPurchase buys one unit of a product, stamping a fresh request id so
// the backend can de-duplicate an accidental resubmission.
func (s *PurchaseService) QuickPurchase(ctx context.Context, productID string) (*PurchaseResponse, error) {
	return s.Purchase(ctx, PurchaseRequest{
		ProductID: productID,
		Quantity:  1,
		RequestID: uuid.NewString(),
	})
}
