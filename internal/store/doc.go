// Package store holds the immutable in-memory content store. The store is
// built once at process start from the authored corpus; after construction
// it is read-only and safe for concurrent use without locks.
package store
