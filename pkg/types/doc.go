// Package types defines the book-club entities, their canonical JSON
// schema, the runtime configuration, and the sentinel errors shared by
// the services.
package types
