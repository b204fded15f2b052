package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	a := Address{Street: " Rua A ", City: " Goiânia", State: " go "}.Normalize()
	assert.Equal(t, "Rua A", a.Street)
	assert.Equal(t, "Goiânia", a.City)
	assert.Equal(t, "GO", a.State)
}

func TestValid(t *testing.T) {
	assert.True(t, Address{}.Valid())
	assert.True(t, Address{State: "MT"}.Valid())
	assert.False(t, Address{State: "Mato Grosso"}.Valid())
}
