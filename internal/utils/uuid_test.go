package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOrderedID(t *testing.T) {
	first := NewTimeOrderedID()
	second := NewTimeOrderedID()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestIDFunc_Generate(t *testing.T) {
	var gen interface{ Generate() string } = IDFunc(func() string { return "snap-1" })
	assert.Equal(t, "snap-1", gen.Generate())
}
