package main

import (
	"bufio"
	"io"

	"github.com/thirdcore/vm/internal/panicerr"
)

// RunLines interprets each of lines in order as a complete top-level line
// (the CLI's args-as-lines mode, §6), isolating any panic or stray
// runtime.Goexit into a returned error. It stops early if a line clears
// the running flag (`bye`).
func (vm *VM) RunLines(lines []string) error {
	return panicerr.Recover("vm.RunLines", func() error {
		for _, line := range lines {
			if !vm.running {
				break
			}
			vm.InterpretLine(line)
		}
		return nil
	})
}

// RunREPL reads newline-delimited lines from r and interprets each in turn
// (the CLI's no-args stdin mode, §6), until r is exhausted or `bye` clears
// the running flag.
func (vm *VM) RunREPL(r io.Reader) error {
	return panicerr.Recover("vm.RunREPL", func() error {
		scanner := bufio.NewScanner(r)
		for vm.running && scanner.Scan() {
			vm.InterpretLine(scanner.Text())
		}
		return scanner.Err()
	})
}
