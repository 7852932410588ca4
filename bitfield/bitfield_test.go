package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLast(t *testing.T) {
	assert.Equal(t, byte(0x05), Last(0xC5, I3))
	assert.Equal(t, byte(0x00), Last(0xC0, I4))
}

func TestFirst(t *testing.T) {
	assert.Equal(t, byte(0x0C), First(0xC5, I4))
}

func TestRange(t *testing.T) {
	assert.Equal(t, byte(0x03), Range(0xD8, I4, I5))
}

func TestRangeInvalid(t *testing.T) {
	assert.Panics(t, func() { Range(0xFF, I5, I2) })
}

func TestTestAndAny(t *testing.T) {
	assert.True(t, Test(0x81, 0x81))
	assert.False(t, Test(0x81, 0x02))
	assert.True(t, Any(0x81, 0x03))
	assert.False(t, Any(0x80, 0x03))
}

func TestSetClearAssign(t *testing.T) {
	assert.Equal(t, byte(0x83), Set(0x81, 0x02))
	assert.Equal(t, byte(0x80), Clear(0x81, 0x01))
	assert.Equal(t, byte(0x81), Assign(0x81, 0x01, true))
	assert.Equal(t, byte(0x80), Assign(0x81, 0x01, false))
}
