package idgen

import "github.com/google/uuid"

// Generator produces opaque, high-entropy identifiers for new records.
type Generator interface {
	NewID() string
}

// UUIDGenerator issues random (version 4) UUID strings.
type UUIDGenerator struct{}

// NewID returns a fresh UUIDv4 string.
func (UUIDGenerator) NewID() string { return uuid.New().String() }

// Func adapts a plain function to the Generator interface.
type Func func() string

// NewID calls f.
func (f Func) NewID() string { return f() }

// Sequence returns the given ids in order and then keeps repeating the last one.
// Useful for forcing id collisions in tests.
func Sequence(ids ...string) Generator {
	i := 0
	return Func(func() string {
		if len(ids) == 0 {
			return ""
		}
		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id
	})
}
