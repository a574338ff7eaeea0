package main

// Entry is a read-only view of a dictionary header at some offset.
type Entry struct {
	Offset uint16
	Type   byte
	Name   [hdrNameLen]byte
	Prev   uint16
}

// Payload returns the address of e's payload, i.e. offset+11.
func (e Entry) Payload() uint16 { return e.Offset + hdrPayload }

func nameBytes(name string) [hdrNameLen]byte {
	var b [hdrNameLen]byte
	copy(b[:], name)
	return b
}

func (vm *VM) entryAt(offset uint16) Entry {
	e := Entry{Offset: offset}
	e.Type = vm.ReadByte(offset + hdrType)
	for i := 0; i < hdrNameLen; i++ {
		e.Name[i] = vm.ReadByte(offset + hdrName + uint16(i))
	}
	e.Prev = vm.ReadWord(offset + hdrPrev)
	return e
}

// find walks the chain rooted at CURRENT, following prev, looking for the
// newest entry whose name matches (later definitions shadow earlier ones).
// younger is the offset of the chain link immediately younger than the hit
// (0 if the hit is CURRENT itself), needed by forget's in-place unlink.
func (vm *VM) find(name string) (e Entry, younger uint16, ok bool) {
	want := nameBytes(name)
	var y uint16
	for off := vm.current(); off != 0; {
		cand := vm.entryAt(off)
		if cand.Name == want {
			return cand, y, true
		}
		y = off
		off = cand.Prev
	}
	return Entry{}, 0, false
}

// create writes a fresh header at HERE: sets type, copies up to 8 name
// bytes (NUL-padded), chains prev to the current CURRENT, advances HERE by
// 11+extra, and makes the new entry CURRENT. The payload is left
// unzeroed.
func (vm *VM) create(name string, typ byte, extra uint16) Entry {
	off := vm.here()
	vm.WriteByte(off+hdrType, typ)
	nb := nameBytes(name)
	for i, c := range nb {
		vm.WriteByte(off+hdrName+uint16(i), c)
	}
	vm.WriteWord(off+hdrPrev, vm.current())
	vm.setCurrent(off)
	vm.setHere(off + hdrPayload + extra)
	return vm.entryAt(off)
}

// forget locates name and removes it from the chain: truncating HERE and
// CURRENT if it is the newest entry, or patching the next-younger entry's
// prev field otherwise (an in-place unlink that does not reclaim space).
func (vm *VM) forget(name string) error {
	e, younger, ok := vm.find(name)
	if !ok {
		return NotFoundError(name)
	}
	if e.Offset == vm.current() {
		vm.setCurrent(e.Prev)
		vm.setHere(e.Offset)
	} else {
		vm.WriteWord(younger+hdrPrev, e.Prev)
	}
	return nil
}
