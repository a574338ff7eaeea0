// Command vm is an interactive stack-oriented language interpreter in the
// Forth lineage: a unified memory image hosts a dictionary of user-defined
// words alongside native primitives, compiled by a tokenising compiler into
// a compact threaded representation and replayed by a recursive inner
// interpreter.
//
// Invoked with no arguments, it reads lines from standard input as a REPL,
// printing "ok" after each successful line. Invoked with one or more
// arguments, each argument is interpreted in order as a complete top-level
// line, and the process exits after the last one.
package main

import (
	"flag"
	"os"

	"github.com/thirdcore/vm/internal/logio"
)

func main() {
	var (
		dictLimit uint
		trace     bool
		dump      bool
	)
	flag.UintVar(&dictLimit, "dict-limit", 0, "override the dictionary growth guard (default 0xFFF0)")
	flag.BoolVar(&trace, "trace", false, "enable trace logging of word execution")
	flag.BoolVar(&dump, "dump", false, "print a dictionary/stack dump after execution")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	opts := []VMOption{
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(&log))
	}
	if dictLimit != 0 {
		opts = append(opts, WithDictLimit(uint16(dictLimit)))
	}

	vm, err := New(opts...)
	if err != nil {
		log.Errorf("%+v", err)
		return
	}

	if dump {
		defer vmDumper{vm: vm, out: os.Stderr}.dump()
	}

	args := flag.Args()
	if len(args) > 0 {
		log.ErrorIf(vm.RunLines(args))
		return
	}
	log.ErrorIf(vm.RunREPL(os.Stdin))
}
