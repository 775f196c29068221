// Package idgen supplies opaque unique identifiers for new records.
package idgen

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Generator produces a string identifier unique among all identifiers
// issued in this process. No ordering is guaranteed.
type Generator func() string

// UUID returns random UUIDv4 identifiers.
func UUID() Generator {
	return func() string { return uuid.New().String() }
}

// ULID returns ULID identifiers (monotonic within a millisecond, but
// callers must not rely on ordering).
func ULID() Generator {
	return func() string { return ulid.Make().String() }
}

// FromScheme maps a config scheme name to a Generator.
// Unknown schemes fall back to UUID.
func FromScheme(scheme string) Generator {
	if scheme == "ulid" {
		return ULID()
	}
	return UUID()
}
