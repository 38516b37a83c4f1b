package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSplit(t *testing.T) {
	assert.Equal(t, uint16(0xABCD), Join(0xAB, 0xCD))
	assert.Equal(t, uint8(0xAB), Hi(0xABCD))
	assert.Equal(t, uint8(0xCD), Lo(0xABCD))
}

func TestBitOps(t *testing.T) {
	assert.True(t, Test(0, 0x01))
	assert.False(t, Test(1, 0x01))
	assert.True(t, Test16(9, 1<<9))

	assert.Equal(t, uint8(0b0000_0101), Set(2, 0b0000_0001))
	assert.Equal(t, uint8(0b0000_0001), Clear(2, 0b0000_0101))

	assert.Equal(t, uint8(1), Value(7, 0x80))
	assert.Equal(t, uint8(0), Value(6, 0x80))
}
