// Package mem provides the fixed byte-addressable memory image shared by
// the dictionary, the body codec, and the data stack.
package mem

// Image is a flat 64 KiB byte array. Addresses are uint16 so that all
// arithmetic on them wraps modulo 0x10000 the same way the spec's "unchecked
// byte indexing" does, without needing a bounds-check branch on every
// access.
type Image [0x10000]byte

// ReadByte returns the byte at addr.
func (m *Image) ReadByte(addr uint16) byte {
	return m[addr]
}

// WriteByte stores a byte at addr.
func (m *Image) WriteByte(addr uint16, v byte) {
	m[addr] = v
}

// ReadWord returns the little-endian 16-bit value at addr, addr+1.
func (m *Image) ReadWord(addr uint16) uint16 {
	return uint16(m[addr]) | uint16(m[addr+1])<<8
}

// WriteWord stores v little-endian at addr, addr+1.
func (m *Image) WriteWord(addr uint16, v uint16) {
	m[addr] = byte(v)
	m[addr+1] = byte(v >> 8)
}

// ReadInto copies len(buf) bytes starting at addr into buf.
func (m *Image) ReadInto(addr uint16, buf []byte) {
	for i := range buf {
		buf[i] = m[addr+uint16(i)]
	}
}
