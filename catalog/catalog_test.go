package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/Products", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("pageNumber"))
		require.Equal(t, "10", r.URL.Query().Get("pageSize"))

		_ = json.NewEncoder(w).Encode(PaginatedResult[Product]{
			PageNumber: 2,
			PageSize:   10,
			TotalCount: 23,
			TotalPages: 3,
			Items: []Product{
				{ID: "p1", Name: "Keyboard", Category: Category{ID: "c1", Name: "Peripherals"}},
			},
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL, srv.Client()).Products().List(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 23, page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Keyboard", page.Items[0].Name)
	assert.Equal(t, "Peripherals", page.Items[0].Category.Name)
}

func TestProductCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/Products", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in CreateProduct
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Keyboard", in.Name)
		assert.Equal(t, "c1", in.CategoryID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode("p-new")
	}))
	defer srv.Close()

	id, err := New(srv.URL, srv.Client()).Products().Create(context.Background(), CreateProduct{
		Name:       "Keyboard",
		CategoryID: "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "p-new", id)
}

func TestProductUpdateAndDelete(t *testing.T) {
	var gotMethods []string
	var gotPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method)
		gotPaths = append(gotPaths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	products := New(srv.URL, srv.Client()).Products()
	require.NoError(t, products.Update(context.Background(), "p1", UpdateProduct{Name: "Keyboard"}))
	require.NoError(t, products.Delete(context.Background(), "p1"))

	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, gotMethods)
	assert.Equal(t, []string{"/Products/p1", "/Products/p1"}, gotPaths)
}

func TestCategoryList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Categories", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Category{{ID: "c1", Name: "Peripherals"}})
	}))
	defer srv.Close()

	categories, err := New(srv.URL, srv.Client()).Categories().List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Peripherals", categories[0].Name)
}

func TestQuickPurchaseStampsRequestID(t *testing.T) {
	var got PurchaseRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Purchase", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(PurchaseResponse{Success: true, Message: "ok", OrderID: "o1"})
	}))
	defer srv.Close()

	res, err := New(srv.URL, srv.Client()).Purchases().QuickPurchase(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "o1", res.OrderID)

	assert.Equal(t, "p1", got.ProductID)
	assert.Equal(t, 1, got.Quantity)
	_, err = uuid.Parse(got.RequestID)
	assert.NoError(t, err, "request id must be a uuid")
}

func TestAPIErrorTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"title": "Name is required"})
	}))
	defer srv.Close()

	_, err := New(srv.URL, srv.Client()).Products().Get(context.Background(), "p1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Name is required", apiErr.Error())
}

func TestAPIErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, srv.Client()).Products().Get(context.Background(), "p1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "unexpected backend error")
}
