package main

import "strings"

// see writes a diagnostic dump of one dictionary entry's header fields and
// the first 32 bytes of its payload, the introspection primitive of the
// same name.
func (vm *VM) see(e Entry) {
	name := strings.TrimRight(string(e.Name[:]), "\x00")
	var payload [32]byte
	vm.ReadInto(e.Payload(), payload[:])
	vm.writeOut("%s type=%d prev=%#04x payload=% x\n", name, e.Type, e.Prev, payload[:])
}
