package main

import (
	"fmt"
	"io"
	"strings"
)

// vmDumper formats a diagnostic snapshot of a VM's dictionary chain and data
// stack to out, the `-dump` CLI flag's payload.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

// dump prints HERE, CURRENT, the full dictionary chain newest-first, and the
// live data stack contents. It never mutates vm; safe to call after a run
// has already exited via `bye` or an unhandled error.
func (d vmDumper) dump() {
	fmt.Fprintf(d.out, "# VM Dump\n")
	fmt.Fprintf(d.out, "  here: %#04x\n", d.vm.here())
	fmt.Fprintf(d.out, "  current: %#04x\n", d.vm.current())
	fmt.Fprintf(d.out, "  flags: %#02x\n", d.vm.flags())
	if err := d.vm.checkInvariants(); err != nil {
		fmt.Fprintf(d.out, "  invariant violation: %v\n", err)
	}

	fmt.Fprintf(d.out, "  dict:\n")
	for off := d.vm.current(); off != 0; {
		e := d.vm.entryAt(off)
		name := strings.TrimRight(string(e.Name[:]), "\x00")
		fmt.Fprintf(d.out, "    %#04x %-8s type=%d prev=%#04x\n", off, name, e.Type, e.Prev)
		off = e.Prev
	}

	fmt.Fprintf(d.out, "  stack:")
	for sp := d.vm.dataSP; sp < stackTop; sp += 2 {
		fmt.Fprintf(d.out, " %d", d.vm.ReadWord(uint16(sp)))
	}
	fmt.Fprintln(d.out)
}
