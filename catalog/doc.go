// Package catalog contains the thin clients for the product-catalog REST
// API (products, categories, purchases) plus a small observable state
// holder for product lists.
//
// Every request goes through the http.Client handed to [New]; when that
// client carries the transport.AuthTripper, authentication and 401
// eviction happen transparently here.
//
// Backend errors surface as [*APIError] with the problem-details title
// when the response body provides one. Nothing in this package retries.
package catalog
