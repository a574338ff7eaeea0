package main

import (
	"errors"
	"io"
	"strings"

	"github.com/thirdcore/vm/internal/fileinput"
)

// bootstrapSource defines the derived words §4.6 requires atop the native
// primitive set. allot/variable/?/,/C, are carried verbatim from
// core_forth.c; +!/+1!/splitb are net-new words built the same way, out of
// the same native primitives, to round out the set §4.6 names but the
// original bootstrap source doesn't itself define.
const bootstrapSource = `
: allot here @ + here ! ;
: variable create 2 allot ;
: ? @ . ;
: , here @ ! 2 allot ;
: C, here @ C! 1 allot ;
: +! dup @ rot + swap ! ;
: +1! 1 swap +! ;
: splitb dup 0xFF and swap 8 rshift ;
`

// runBootstrap interprets bootstrapSource as a nested stream the same way
// loadf does, so that the derived words above are defined exactly as a
// user's own `loadf`-ed source would be.
func (vm *VM) runBootstrap() error {
	saved := vm.in
	vm.in = fileinput.Input{Queue: []io.Reader{strings.NewReader(bootstrapSource)}}
	defer func() { vm.in = saved }()

	for {
		stopped, err := vm.interpret()
		if err != nil {
			return err
		}
		if vm.quitting() {
			return errors.New("bootstrap source failed to compile")
		}
		if stopped {
			return nil
		}
	}
}
