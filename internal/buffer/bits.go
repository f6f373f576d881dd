package buffer

// Bit reports whether bit index (0 = LSB) of b is set.
func Bit(b byte, index uint) bool {
	return (b>>index)&0x01 == 1
}

// BitRange returns bits high..low (inclusive) of b, right-aligned.
func BitRange(b byte, high, low uint) uint8 {
	width := high - low + 1
	mask := byte(1<<width - 1)
	return (b >> low) & mask
}

// Uint16LE reads a little-endian 16-bit value at pos. Out of range reads return 0.
func Uint16LE(data []byte, pos int) uint16 {
	if pos < 0 || pos+2 > len(data) {
		return 0
	}
	return uint16(data[pos]) | uint16(data[pos+1])<<8
}
