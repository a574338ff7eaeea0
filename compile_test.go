package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVMWithInput(src string) *VM {
	vm := newTestVM()
	vm.in.Queue = []io.Reader{strings.NewReader(src)}
	return vm
}

func Test_parseLiteral(t *testing.T) {
	cases := []struct {
		tok string
		v   uint16
		ok  bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-1", 0xFFFF, true},
		{"-5", 0xFFFB, true},
		{"0x10", 0x10, true},
		{"0xBEEF", 0xBEEF, true},
		{"0x", 0, false},
		{"-", 0, false},
		{"--1", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
	}
	for _, c := range cases {
		v, ok := parseLiteral(c.tok)
		assert.Equal(t, c.ok, ok, "tok=%q", c.tok)
		if c.ok {
			assert.Equal(t, c.v, v, "tok=%q", c.tok)
		}
	}
}

func Test_VM_scanToken_skipsLeadingWhitespaceAndRecordsLASTWS(t *testing.T) {
	vm := testVMWithInput("  foo bar\nbaz")

	tok, err := vm.scanToken()
	require.NoError(t, err)
	assert.Equal(t, "foo", tok)
	assert.Equal(t, byte(' '), vm.lastWS())

	tok, err = vm.scanToken()
	require.NoError(t, err)
	assert.Equal(t, "bar", tok)
	assert.Equal(t, byte('\n'), vm.lastWS())

	tok, err = vm.scanToken()
	require.NoError(t, err)
	assert.Equal(t, "baz", tok)
}

func Test_VM_compileToken_literalAndWordCall(t *testing.T) {
	vm := testVMWithInput("dup 7")
	dup := vm.create("dup", entryNative, 2)

	kind, arg, err := vm.compileToken()
	require.NoError(t, err)
	assert.Equal(t, itemWordCall, kind)
	assert.Equal(t, dup.Offset, arg)

	kind, arg, err = vm.compileToken()
	require.NoError(t, err)
	assert.Equal(t, itemLiteral, kind)
	assert.Equal(t, uint16(7), arg)
}

func Test_VM_compileToken_unknownSetsQuitting(t *testing.T) {
	vm := testVMWithInput("zzz")
	_, _, err := vm.compileToken()
	assert.EqualError(t, err, "What is zzz?")
	assert.True(t, vm.quitting())
}

func Test_VM_wordDefine_success(t *testing.T) {
	vm := testVMWithInput("sq dup ; ")
	dup := vm.create("dup", entryNative, 2)

	hereBefore := vm.here()
	require.NoError(t, vm.wordDefine())
	assert.Greater(t, vm.here(), hereBefore)

	sq, _, ok := vm.find("sq")
	require.True(t, ok)
	kind, arg, next := vm.readItem(sq.Payload())
	assert.Equal(t, itemWordCall, kind)
	assert.Equal(t, dup.Offset, arg)
	kind, _, _ = vm.readItem(next)
	assert.Equal(t, itemStop, kind)
}

func Test_VM_wordDefine_rollsBackOnUnknownToken(t *testing.T) {
	vm := testVMWithInput("bad zzz ;")
	hereBefore := vm.here()
	currentBefore := vm.current()

	err := vm.wordDefine()
	assert.EqualError(t, err, "What is zzz?")
	assert.Equal(t, hereBefore, vm.here())
	assert.Equal(t, currentBefore, vm.current())

	_, _, ok := vm.find("bad")
	assert.False(t, ok)
}

func Test_VM_wordDefine_missingName(t *testing.T) {
	vm := testVMWithInput("")
	err := vm.wordDefine()
	assert.EqualError(t, err, "No word name")
}
