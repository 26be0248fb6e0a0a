// Package token decodes the payload segment of the bearer tokens issued by
// the catalog backend and normalizes the claims the client cares about:
// role set, display name, and expiry.
//
// Decoding is unverified on purpose. The client never checks signatures;
// the backend is the authority on token validity and answers 401 when a
// token is bad. This package only needs to read claims out of a token the
// backend already accepted.
//
// # Architecture boundaries
//
// Decode is pure: no storage, no network, no clock reads. Callers supply
// the instant when they evaluate expiry via [Claims.Expired].
//
// # What this package must NOT do
//
//   - Verify signatures or issue tokens.
//   - Touch the session store (the session package owns persistence).
//   - Panic on malformed input; every failure is an error value.
package token
