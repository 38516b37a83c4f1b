// Package bits holds small helpers for the byte and bit juggling the
// rest of the emulator does constantly.
package bits

// Join combines a high and a low byte into a 16 bit value.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Hi returns the most significant byte of a 16 bit value.
func Hi(value uint16) uint8 {
	return uint8(value >> 8)
}

// Lo returns the least significant byte of a 16 bit value.
func Lo(value uint16) uint8 {
	return uint8(value)
}

// Test reports whether bit index of b is set.
func Test(index, b uint8) bool {
	return b>>index&1 == 1
}

// Test16 reports whether bit index of a 16 bit value is set.
func Test16(index uint8, value uint16) bool {
	return value>>index&1 == 1
}

// Set returns b with bit index set to 1.
func Set(index, b uint8) uint8 {
	return b | 1<<index
}

// Clear returns b with bit index set to 0.
func Clear(index, b uint8) uint8 {
	return b &^ (1 << index)
}

// Value returns 1 if bit index of b is set, 0 otherwise.
func Value(index, b uint8) uint8 {
	return b >> index & 1
}
