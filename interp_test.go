package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdcore/vm/internal/flushio"
)

func Test_VM_execute_cellPushesPayloadAddress(t *testing.T) {
	vm := newTestVM()
	e := vm.create("v", entryCell, 2)

	require.NoError(t, vm.execute(e.Offset))
	got, err := vm.pop()
	require.NoError(t, err)
	assert.Equal(t, e.Payload(), got)
}

func Test_VM_execute_nativeInvokesPrimitive(t *testing.T) {
	vm := newTestVM()
	vm.prims = append(vm.prims, func(vm *VM) error {
		vm.push(99)
		return nil
	})
	e := vm.create("thing", entryNative, 2)
	vm.WriteWord(e.Payload(), 0)

	require.NoError(t, vm.execute(e.Offset))
	got, err := vm.pop()
	require.NoError(t, err)
	assert.Equal(t, uint16(99), got)
}

func Test_VM_execute_compiledWalksBodyAndRecurses(t *testing.T) {
	vm := newTestVM()
	vm.prims = append(vm.prims, func(vm *VM) error {
		a, _ := vm.pop()
		b, _ := vm.pop()
		vm.push(a + b)
		return nil
	})
	plus := vm.create("+", entryNative, 2)
	vm.WriteWord(plus.Payload(), 0)

	sq := vm.create("sum3", entryCompiled, 0)
	vm.writeLiteral(1)
	vm.writeLiteral(2)
	vm.writeWordCall(plus.Offset)
	vm.writeLiteral(3)
	vm.writeWordCall(plus.Offset)
	vm.writeStop()

	require.NoError(t, vm.execute(sq.Offset))
	got, err := vm.pop()
	require.NoError(t, err)
	assert.Equal(t, uint16(6), got)
}

func Test_VM_execute_stopsEarlyWhenQuitting(t *testing.T) {
	vm := newTestVM()
	w := vm.create("w", entryCompiled, 0)
	vm.writeLiteral(1)
	vm.writeStop()
	vm.setQuitting(true)

	require.NoError(t, vm.execute(w.Offset))
	_, err := vm.pop()
	assert.Error(t, err, "body walk must not have run while quitting was set")
}

func Test_VM_replLine_printsOkOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	vm := newTestVM()
	vm.running = true
	vm.out = flushio.NewWriteFlusher(&buf)
	vm.in.Queue = []io.Reader{strings.NewReader("42\n")}

	vm.replLine()
	assert.Equal(t, "ok\n", buf.String())
}

func Test_VM_replLine_noOkOnError(t *testing.T) {
	var buf bytes.Buffer
	vm := newTestVM()
	vm.running = true
	vm.out = flushio.NewWriteFlusher(&buf)
	vm.in.Queue = []io.Reader{strings.NewReader("zzz\n")}

	vm.replLine()
	assert.Equal(t, "What is zzz?\n", buf.String())
	assert.False(t, vm.quitting(), "REPL clears quitting before returning")
}
