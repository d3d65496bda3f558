// Package route holds the scheduled-connection network that fare searches run on.
//
// A Graph G = (L, C) maps every origin location to the ordered list of
// Connections leaving it. Connections are directed and carry the attributes a
// price model needs (distance, seats remaining, peak-hour flag, discount).
// No price is stored on the edge: costs are computed on demand by the caller's
// pricing.Model.
//
// Lifecycle:
//
//   - Build the graph with NewGraph and RegisterConnection / Register.
//   - Run any number of searches against it. Searches only read the graph.
//   - Mutating the graph while a search is running is not supported.
//
// Determinism:
//
//   - Locations() is sorted ascending.
//   - OutgoingFrom(loc) preserves registration order.
//   - Fingerprint() hashes locations in sorted order and connections in
//     registration order, so equal build sequences give equal digests.
//
// Concurrency:
//
//	All methods take a sync.RWMutex, so read-only searches may run in parallel
//	on the same Graph. Registration takes the write lock.
//
// Errors:
//
//	ErrEmptyLocation    – origin or destination id is empty
//	ErrNegativeDistance – distance < 0
//	ErrNegativeSeats    – seats remaining < 0
//	ErrBadDiscount      – discount outside 0..100
//
// These are reported by Connection.Validate only. RegisterConnection itself
// accepts any Connection: validating input is the caller's job.
package route
