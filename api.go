package main

import (
	"io"
	"os"

	"github.com/thirdcore/vm/internal/flushio"
	"github.com/thirdcore/vm/internal/logio"
)

// defaultDictLimit is the soft collision guard from §8's invariant that HERE
// must never exceed 0xFFF0, leaving headroom below the data stack's top.
const defaultDictLimit = 0xFFF0

// VMOption configures a VM at construction time.
type VMOption interface {
	apply(*VM) error
}

type optionFunc func(*VM) error

func (f optionFunc) apply(vm *VM) error { return f(vm) }

// WithInput sets the VM's initial input stream, queued behind any prior
// stream already set by an earlier option.
func WithInput(r io.Reader) VMOption {
	return optionFunc(func(vm *VM) error {
		vm.in.Queue = append(vm.in.Queue, r)
		return nil
	})
}

// WithOutput sets the VM's output stream, replacing the default of stdout.
func WithOutput(w io.Writer) VMOption {
	return optionFunc(func(vm *VM) error {
		vm.out = flushio.NewWriteFlusher(w)
		return nil
	})
}

// WithTee additionally writes all output to w, alongside whatever the VM
// already writes to (stdout, or a prior WithOutput).
func WithTee(w io.Writer) VMOption {
	return optionFunc(func(vm *VM) error {
		vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(w))
		return nil
	})
}

// WithDictLimit overrides the soft dictionary-growth guard (default
// 0xFFF0, per §8's invariant) that checkInvariants reports against. The
// image itself is always the fixed 64 KiB §3 mandates; this only narrows
// the range a caller treats as healthy, the way the teacher's WithMemLimit
// narrowed its paged memory's growth ceiling.
func WithDictLimit(limit uint16) VMOption {
	return optionFunc(func(vm *VM) error {
		vm.dictLimit = limit
		return nil
	})
}

// WithLogf routes the VM's -trace output (one line per executed entry)
// through log at level "TRACE".
func WithLogf(log *logio.Logger) VMOption {
	return optionFunc(func(vm *VM) error {
		vm.log = log
		vm.logf = log.Leveledf("TRACE")
		return nil
	})
}

// New builds a VM: it lays down the fixed system variables, registers the
// native primitive table, interprets the bootstrap source to define the
// derived words, and then applies opts.
func New(opts ...VMOption) (*VM, error) {
	vm := &VM{dataSP: stackTop, running: true, dictLimit: defaultDictLimit}
	vm.setHere(dictStart)
	vm.setCurrent(0)
	vm.out = flushio.NewWriteFlusher(os.Stdout)

	vm.definePrimitives()
	if err := vm.runBootstrap(); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt.apply(vm); err != nil {
			return nil, err
		}
	}
	return vm, nil
}

// checkInvariants reports the first violation it finds of three properties:
// HERE lies in [dictStart, dictLimit], following prev from CURRENT never
// revisits an offset, and the data stack pointer lies in [0, stackTop]. It
// does not check that prev offsets strictly decrease, that the stack
// pointer is even, or that compiled bodies end in a stop marker. Intended
// for tests and the CLI's -dump diagnostic, not for the hot path.
func (vm *VM) checkInvariants() error {
	if vm.here() < dictStart || vm.here() > vm.dictLimit {
		return dictOverflowError{here: vm.here(), limit: vm.dictLimit}
	}
	seen := map[uint16]bool{}
	for off := vm.current(); off != 0; {
		if seen[off] {
			return cyclicChainError(off)
		}
		seen[off] = true
		off = vm.entryAt(off).Prev
	}
	if vm.dataSP < 0 || vm.dataSP > stackTop {
		return stackPointerRangeError(vm.dataSP)
	}
	return nil
}
