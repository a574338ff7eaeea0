package z80_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdcore/vm/internal/z80"
)

func Test_File_wordRegisters(t *testing.T) {
	var f z80.File
	for _, name := range []string{"AF", "BC", "DE", "HL", "IX", "IY", "SP"} {
		require.NoError(t, f.Set(name, 0x1234), name)
		v, err := f.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, uint16(0x1234), v, name)
	}
}

func Test_File_byteRegistersShareWordPair(t *testing.T) {
	var f z80.File
	require.NoError(t, f.Set("B", 0xAB))
	require.NoError(t, f.Set("C", 0xCD))
	bc, err := f.Get("BC")
	require.NoError(t, err)
	assert.Equal(t, uint16(0xABCD), bc)

	require.NoError(t, f.Set("HL", 0x1234))
	h, err := f.Get("H")
	require.NoError(t, err)
	l, err := f.Get("L")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x12), h)
	assert.Equal(t, uint16(0x34), l)
}

func Test_File_invalidRegister(t *testing.T) {
	var f z80.File
	_, err := f.Get("ZZ")
	assert.EqualError(t, err, `invalid register "ZZ"`)

	err = f.Set("nope", 1)
	assert.EqualError(t, err, `invalid register "nope"`)
}
