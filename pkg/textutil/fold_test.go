package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "gasoleo", Fold("Gasóleo"))
	assert.Equal(t, "conservacao", Fold("  Conservação "))
	assert.Equal(t, "arm-01", Fold("ARM-01"))
}

func TestMatchAny(t *testing.T) {
	assert.True(t, MatchAny("", "qualquer"))
	assert.True(t, MatchAny("betoneira", "EQ-001", "Betoneira 350L"))
	assert.True(t, MatchAny("AÇO", "Varão de aço A500"))
	assert.False(t, MatchAny("grua", "EQ-001", "Betoneira 350L"))
}
