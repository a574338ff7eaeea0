package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thirdcore/vm/internal/mem"
)

func Test_Image_byteRoundTrip(t *testing.T) {
	var m mem.Image
	m.WriteByte(0x100, 0x42)
	assert.Equal(t, byte(0x42), m.ReadByte(0x100))
	assert.Equal(t, byte(0), m.ReadByte(0x101))
}

func Test_Image_wordRoundTrip(t *testing.T) {
	var m mem.Image
	for _, tc := range []struct {
		addr uint16
		v    uint16
	}{
		{0, 0},
		{1, 1},
		{0x3000, 0xBEEF},
		{0xFFFE, 0xFFFF}, // last whole word before wrap
	} {
		m.WriteWord(tc.addr, tc.v)
		assert.Equal(t, tc.v, m.ReadWord(tc.addr), "addr %#x", tc.addr)
	}
}

func Test_Image_wordWrapsAtTop(t *testing.T) {
	var m mem.Image
	// a word written at 0xFFFF spans byte 0xFFFF and byte 0 (address wraps).
	m.WriteWord(0xFFFF, 0x1234)
	assert.Equal(t, byte(0x34), m.ReadByte(0xFFFF))
	assert.Equal(t, byte(0x12), m.ReadByte(0x0000))
}

func Test_Image_readInto(t *testing.T) {
	var m mem.Image
	m.WriteByte(10, 1)
	m.WriteByte(11, 2)
	m.WriteByte(12, 3)
	buf := make([]byte, 3)
	m.ReadInto(10, buf)
	assert.Equal(t, []byte{1, 2, 3}, buf)
}
