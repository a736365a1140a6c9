package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_WhenCalledTwice_ThenReturnsDistinctValidUUIDs(t *testing.T) {
	gen := UUIDGenerator{}

	first := gen.NewID()
	second := gen.NewID()

	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	_, err = uuid.Parse(second)
	assert.NoError(t, err)
}

func TestSequence_WhenExhausted_ThenRepeatsLastID(t *testing.T) {
	gen := Sequence("a", "b")

	assert.Equal(t, "a", gen.NewID())
	assert.Equal(t, "b", gen.NewID())
	assert.Equal(t, "b", gen.NewID())
}
