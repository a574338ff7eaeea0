package main

import (
	"io"
	"strings"

	"github.com/thirdcore/vm/internal/fileinput"
)

// execute dispatches the entry at offset by kind: a compiled entry walks
// its body, recursing into execute for each word-call; a native entry
// invokes the host primitive named by its payload index; a cell entry
// pushes its own payload address. It checks the quitting flag between body
// steps and returns early if set.
func (vm *VM) execute(offset uint16) error {
	e := vm.entryAt(offset)
	if vm.logf != nil {
		vm.logf("exec %#04x %s type=%d", offset, strings.TrimRight(string(e.Name[:]), "\x00"), e.Type)
	}
	switch e.Type {
	case entryNative:
		idx := vm.ReadWord(e.Payload())
		if int(idx) >= len(vm.prims) {
			return BadRegisterError("native")
		}
		return vm.prims[idx](vm)

	case entryCell:
		vm.push(e.Payload())
		return nil

	default: // entryCompiled
		p := e.Payload()
		for {
			if vm.quitting() {
				return nil
			}
			kind, arg, next := vm.readItem(p)
			switch kind {
			case itemStop:
				return nil
			case itemLiteral:
				vm.push(arg)
			case itemWordCall:
				if err := vm.execute(arg); err != nil {
					return err
				}
			}
			p = next
		}
	}
}

// interpret reads and compiles one token from the active input stream and
// performs exactly one step on it: a literal pushes, a word-call recurses
// into execute, and a stop (empty token or end of stream) terminates the
// line. stopped is true on a stop item, signalling the caller to end the
// line without reading further tokens.
func (vm *VM) interpret() (stopped bool, err error) {
	kind, arg, err := vm.compileToken()
	if err != nil {
		return false, err
	}
	switch kind {
	case itemStop:
		return true, nil
	case itemLiteral:
		vm.push(arg)
	case itemWordCall:
		if err := vm.execute(arg); err != nil {
			return false, err
		}
	}
	return false, nil
}

// InterpretLine feeds src to the VM as a single, self-contained top-level
// input line and interprets it to completion. Each call resets the active
// input stream, matching the original's one-line-at-a-time read loop.
func (vm *VM) InterpretLine(src string) {
	vm.in = fileinput.Input{Queue: []io.Reader{strings.NewReader(src)}}
	vm.replLine()
}

// replLine drives interpret until the line's tokens are exhausted, printing
// "ok" (see writeOK) on success, and clears the quitting flag before returning so the
// next line starts clean, matching §7's REPL-observes-and-clears policy.
func (vm *VM) replLine() {
	for vm.running {
		stopped, err := vm.interpret()
		if err != nil {
			vm.setQuitting(false)
			return
		}
		if vm.quitting() {
			vm.setQuitting(false)
			return
		}
		if stopped || vm.lastWS() == '\n' {
			break
		}
	}
	if vm.running {
		vm.writeOK()
	}
}

// writeOK prints the REPL's end-of-line success marker. "." and ".x" each
// trail their own printed number with a space, so the marker itself carries
// none: back to back with a preceding numeric print it reads as "49 ok\n"
// the way the worked examples in §8 show it.
func (vm *VM) writeOK() {
	if vm.out != nil {
		vm.out.Write([]byte("ok\n"))
		vm.out.Flush()
	}
}
