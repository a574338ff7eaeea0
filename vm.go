package main

import (
	"io"

	"github.com/thirdcore/vm/internal/fileinput"
	"github.com/thirdcore/vm/internal/flushio"
	"github.com/thirdcore/vm/internal/logio"
	"github.com/thirdcore/vm/internal/mem"
	"github.com/thirdcore/vm/internal/z80"
)

// Reserved memory layout (§3 of the memory map).
const (
	addrLastWS  = 0x2FFA
	addrFlags   = 0x2FFB
	addrCurrent = 0x2FFC
	addrHere    = 0x2FFE
	dictStart   = 0x3000

	stackTop = 0x10000 // one past the highest valid stack address; empty-stack value of dataSP
)

// FLAGS bits.
const flagQuitting = 1 << 0

// Dictionary entry kinds (header +0).
const (
	entryCompiled byte = 0
	entryNative   byte = 1
	entryCell     byte = 2
)

// Dictionary entry header layout.
const (
	hdrType    = 0
	hdrName    = 1
	hdrNameLen = 8
	hdrPrev    = hdrName + hdrNameLen // 9
	hdrPayload = hdrPrev + 2          // 11
)

// primitive is the uniform signature every native word is dispatched
// through: it operates on vm's data stack and image, returning any error
// that should raise the quitting flag.
type primitive func(vm *VM) error

// VM bundles the memory image, data stack pointer, dictionary-resident
// system variables, native primitive table, I/O, and the co-embedded Z80
// register file into one owning value, threaded explicitly into every
// primitive invocation rather than kept as package-level globals.
type VM struct {
	mem.Image
	dataSP    int
	running   bool
	dictLimit uint16

	prims     []primitive
	primNames []string

	in  fileinput.Input
	out flushio.WriteFlusher

	regs z80.File

	log  *logio.Logger
	logf func(mess string, args ...interface{}) // set by WithLogf; nil means no -trace logging

	closers []io.Closer
}

func (vm *VM) here() uint16        { return vm.ReadWord(addrHere) }
func (vm *VM) setHere(v uint16)    { vm.WriteWord(addrHere, v) }
func (vm *VM) current() uint16     { return vm.ReadWord(addrCurrent) }
func (vm *VM) setCurrent(v uint16) { vm.WriteWord(addrCurrent, v) }
func (vm *VM) lastWS() byte        { return vm.ReadByte(addrLastWS) }
func (vm *VM) setLastWS(b byte)    { vm.WriteByte(addrLastWS, b) }
func (vm *VM) flags() byte         { return vm.ReadByte(addrFlags) }
func (vm *VM) setFlags(b byte)     { vm.WriteByte(addrFlags, b) }

func (vm *VM) quitting() bool { return vm.flags()&flagQuitting != 0 }

func (vm *VM) setQuitting(q bool) {
	f := vm.flags()
	if q {
		f |= flagQuitting
	} else {
		f &^= flagQuitting
	}
	vm.setFlags(f)
}

// push stores v at the top of the data stack, growing it downward from
// 0xFFFF per §3.
func (vm *VM) push(v uint16) {
	vm.dataSP -= 2
	vm.WriteWord(uint16(vm.dataSP), v)
}

// pop removes and returns the top of the data stack, or a StackUnderflowError
// if the stack is empty.
func (vm *VM) pop() (uint16, error) {
	if vm.dataSP >= stackTop {
		return 0, StackUnderflowError{}
	}
	v := vm.ReadWord(uint16(vm.dataSP))
	vm.dataSP += 2
	return v, nil
}

// fail prints err's message on the VM's output stream, flushing it, and
// raises the quitting flag, matching the error-handling policy in §7: any
// raised error sets *quitting*, prints its message, and returns up the
// execute/interpret chain without further side effects.
func (vm *VM) fail(err error) error {
	vm.setQuitting(true)
	if vm.out != nil {
		io.WriteString(vm.out, err.Error()+"\n")
		vm.out.Flush()
	}
	return err
}
