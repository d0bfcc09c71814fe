package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "educacion", Fold("  Educación "))
	assert.Equal(t, "energia solar", Fold("ENERGÍA Solar"))
	assert.True(t, FoldEqual("Inversión", "inversion"))
	assert.False(t, FoldEqual("salud", "salut"))
}
