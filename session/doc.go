// Package session holds the client's authentication state: the persisted
// token store and the observable in-memory state derived from it.
//
// The store keeps exactly three fields (token, roles, userName) under the
// same keys the browser front-end used, and every write replaces all three
// together. There is a single writer (the auth client); everything else,
// including the request interceptor, only reads.
//
// # Store implementations
//
//   - [MemoryStore] — process-local, the default.
//   - [FileStore] — JSON file on disk, for CLI use between invocations.
//   - [RedisStore] — go-redis backed, for embedders that already carry a
//     Redis connection and want sessions to survive process restarts.
//
// # What this package must NOT do
//
//   - Decode tokens (the token package owns that).
//   - Talk to the backend.
//   - Mutate state from anywhere but the auth client's login/logout paths.
package session
