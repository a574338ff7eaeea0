package main

import (
	"io"
	"os"

	"github.com/thirdcore/vm/internal/fileinput"
)

// loadf implements the `loadf` primitive: it reads a filename token, opens
// it, and interprets its contents as a nested input stream, saving and
// restoring the previously active stream around the recursive read (§5).
// Any error inside the nested stream abandons it and surfaces quitting to
// the caller, which clears the flag before resuming — the same policy the
// outer REPL applies to a top-level line.
func (vm *VM) loadf() error {
	name, err := vm.scanToken()
	if err != nil {
		return err
	}

	f, oerr := os.Open(name)
	if oerr != nil {
		return vm.fail(StreamOpenError{Name: name, Err: oerr})
	}
	defer f.Close()

	saved := vm.in
	vm.in = fileinput.Input{Queue: []io.Reader{f}}
	defer func() { vm.in = saved }()

	for {
		stopped, ierr := vm.interpret()
		if ierr != nil {
			return nil
		}
		if vm.quitting() {
			return nil
		}
		if stopped {
			return nil
		}
	}
}
