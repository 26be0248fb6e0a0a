// Package catalogkit is the client SDK for the product-catalog
// administration backend: token-based login, role-derived authorization,
// and an HTTP pipeline that enforces both transparently on every request.
//
// The entry point is [Client], built through [Builder]:
//
//	client, err := catalogkit.New().
//		WithBaseURL("https://localhost:7175/api").
//		WithStore(session.NewFileStore(path)).
//		Build()
//
// Login decodes the issued token, persists token, roles, and username
// together, and publishes the new session state. Every request made through
// [Client.HTTPClient] carries the bearer token and evicts the session on a
// 401.
//
// # Architecture boundaries
//
// catalogkit is the public surface. Token decoding lives in token, state
// and persistence in session, route gating in guard, request interception
// in transport, and the catalog API clients in catalog. The root package
// orchestrates; it owns the only code path that mutates session state.
//
// # What this package must NOT do
//
//   - Verify or issue tokens (the backend owns authentication).
//   - Retry failed requests or mask backend errors other than the login
//     credential failure.
//   - Let any consumer other than Login/Logout write the session store.
package catalogkit
