package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ha noi", normalize("Hà Nội"))
	assert.Equal(t, "da nang", normalize("  Đà Nẵng "))
	assert.Equal(t, "new york", normalize("New York"))
	assert.Equal(t, "", normalize("   "))
}
