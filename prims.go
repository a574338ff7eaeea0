package main

import (
	"fmt"
	"io"
)

// definePrimitive registers fn as a native dictionary entry named name,
// appending it to the primitive table and writing its index as the entry's
// 2-byte payload.
func (vm *VM) definePrimitive(name string, fn primitive) {
	idx := uint16(len(vm.prims))
	vm.prims = append(vm.prims, fn)
	vm.primNames = append(vm.primNames, name)
	e := vm.create(name, entryNative, 2)
	vm.WriteWord(e.Payload(), idx)
}

// popOrFail pops one value, raising quitting and printing "Stack underflow"
// on an empty stack rather than letting the raw error escape unprinted.
func (vm *VM) popOrFail() (uint16, error) {
	v, err := vm.pop()
	if err != nil {
		return 0, vm.fail(err)
	}
	return v, nil
}

func (vm *VM) popPair() (a, b uint16, err error) {
	b, err = vm.popOrFail()
	if err != nil {
		return 0, 0, err
	}
	a, err = vm.popOrFail()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// definePrimitives registers the authoritative minimum primitive set (§4.6).
// Each stack effect is noted the way a manual page would: ( before -- after ).
func (vm *VM) definePrimitives() {
	// + ( a b -- a+b )
	vm.definePrimitive("+", func(vm *VM) error {
		a, b, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(a + b)
		return nil
	})
	// - ( a b -- a-b )
	vm.definePrimitive("-", func(vm *VM) error {
		a, b, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(a - b)
		return nil
	})
	// * ( a b -- a*b )
	vm.definePrimitive("*", func(vm *VM) error {
		a, b, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(a * b)
		return nil
	})
	// / ( a b -- a/b ) unsigned integer division; b=0 raises quitting rather
	// than panicking, so one bad divisor aborts only the current line.
	vm.definePrimitive("/", func(vm *VM) error {
		a, b, err := vm.popPair()
		if err != nil {
			return err
		}
		if b == 0 {
			return vm.fail(DivideByZeroError{})
		}
		vm.push(a / b)
		return nil
	})
	// and ( a b -- a&b )
	vm.definePrimitive("and", func(vm *VM) error {
		a, b, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(a & b)
		return nil
	})
	// or ( a b -- a|b )
	vm.definePrimitive("or", func(vm *VM) error {
		a, b, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(a | b)
		return nil
	})
	// lshift ( a n -- a<<n )
	vm.definePrimitive("lshift", func(vm *VM) error {
		a, n, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(a << (n & 0xF))
		return nil
	})
	// rshift ( a n -- a>>n ) logical, not arithmetic
	vm.definePrimitive("rshift", func(vm *VM) error {
		a, n, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(a >> (n & 0xF))
		return nil
	})

	// dup ( a -- a a )
	vm.definePrimitive("dup", func(vm *VM) error {
		a, err := vm.popOrFail()
		if err != nil {
			return err
		}
		vm.push(a)
		vm.push(a)
		return nil
	})
	// swap ( a b -- b a )
	vm.definePrimitive("swap", func(vm *VM) error {
		a, b, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(b)
		vm.push(a)
		return nil
	})
	// over ( a b -- a b a )
	vm.definePrimitive("over", func(vm *VM) error {
		a, b, err := vm.popPair()
		if err != nil {
			return err
		}
		vm.push(a)
		vm.push(b)
		vm.push(a)
		return nil
	})
	// rot ( a b c -- b c a )
	vm.definePrimitive("rot", func(vm *VM) error {
		c, err := vm.popOrFail()
		if err != nil {
			return err
		}
		b, err := vm.popOrFail()
		if err != nil {
			return err
		}
		a, err := vm.popOrFail()
		if err != nil {
			return err
		}
		vm.push(b)
		vm.push(c)
		vm.push(a)
		return nil
	})

	// ! ( val addr -- ) store word
	vm.definePrimitive("!", func(vm *VM) error {
		addr, err := vm.popOrFail()
		if err != nil {
			return err
		}
		val, err := vm.popOrFail()
		if err != nil {
			return err
		}
		vm.WriteWord(addr, val)
		return nil
	})
	// @ ( addr -- val ) fetch word
	vm.definePrimitive("@", func(vm *VM) error {
		addr, err := vm.popOrFail()
		if err != nil {
			return err
		}
		vm.push(vm.ReadWord(addr))
		return nil
	})
	// C! ( val addr -- ) store byte
	vm.definePrimitive("C!", func(vm *VM) error {
		addr, err := vm.popOrFail()
		if err != nil {
			return err
		}
		val, err := vm.popOrFail()
		if err != nil {
			return err
		}
		vm.WriteByte(addr, byte(val))
		return nil
	})
	// C@ ( addr -- val ) fetch byte
	vm.definePrimitive("C@", func(vm *VM) error {
		addr, err := vm.popOrFail()
		if err != nil {
			return err
		}
		vm.push(uint16(vm.ReadByte(addr)))
		return nil
	})
	// here ( -- addr ) pushes the address of the HERE variable, not its value
	vm.definePrimitive("here", func(vm *VM) error {
		vm.push(addrHere)
		return nil
	})
	// current ( -- addr ) pushes the address of the CURRENT variable
	vm.definePrimitive("current", func(vm *VM) error {
		vm.push(addrCurrent)
		return nil
	})

	// . ( n -- ) pop, print signed decimal followed by a space
	vm.definePrimitive(".", func(vm *VM) error {
		n, err := vm.popOrFail()
		if err != nil {
			return err
		}
		vm.writeOut("%d ", int16(n))
		return nil
	})
	// .x ( n -- ) pop, print two-digit hex followed by a space
	vm.definePrimitive(".x", func(vm *VM) error {
		n, err := vm.popOrFail()
		if err != nil {
			return err
		}
		vm.writeOut("%02X ", byte(n))
		return nil
	})
	// emit ( n -- ) pop low byte, write as a character
	vm.definePrimitive("emit", func(vm *VM) error {
		n, err := vm.popOrFail()
		if err != nil {
			return err
		}
		if vm.out != nil {
			vm.out.Write([]byte{byte(n)})
		}
		return nil
	})

	// bye ( -- ) clears running and quitting so the REPL exits cleanly
	vm.definePrimitive("bye", func(vm *VM) error {
		vm.running = false
		vm.setQuitting(false)
		return nil
	})
	// execute ( offset -- ) invokes the entry at offset
	vm.definePrimitive("execute", func(vm *VM) error {
		offset, err := vm.popOrFail()
		if err != nil {
			return err
		}
		return vm.execute(offset)
	})
	// : reads a name and compiles a definition up to ";" (see wordDefine)
	vm.definePrimitive(":", func(vm *VM) error {
		return vm.wordDefine()
	})
	// create reads a name and allocates a zero-length cell entry for it
	vm.definePrimitive("create", func(vm *VM) error {
		name, err := vm.scanToken()
		if err != nil {
			return err
		}
		if name == "" {
			return vm.fail(MissingNameError{Role: "word"})
		}
		vm.create(name, entryCell, 0)
		return nil
	})
	// forget reads a name and unlinks it from the dictionary
	vm.definePrimitive("forget", func(vm *VM) error {
		name, err := vm.scanToken()
		if err != nil {
			return err
		}
		if name == "" {
			return vm.fail(MissingNameError{Role: "word"})
		}
		if err := vm.forget(name); err != nil {
			return vm.fail(err)
		}
		return nil
	})
	// loadf reads a filename and interprets its contents as a nested stream
	vm.definePrimitive("loadf", func(vm *VM) error {
		return vm.loadf()
	})
	// ' ( -- offset ) reads a name and pushes its dictionary offset
	vm.definePrimitive("'", func(vm *VM) error {
		name, err := vm.scanToken()
		if err != nil {
			return err
		}
		if name == "" {
			return vm.fail(MissingNameError{Role: "word"})
		}
		e, _, ok := vm.find(name)
		if !ok {
			return vm.fail(NotFoundError(name))
		}
		vm.push(e.Offset)
		return nil
	})
	// see reads a name and dumps its header and first 32 payload bytes
	vm.definePrimitive("see", func(vm *VM) error {
		name, err := vm.scanToken()
		if err != nil {
			return err
		}
		if name == "" {
			return vm.fail(MissingNameError{Role: "word"})
		}
		e, _, ok := vm.find(name)
		if !ok {
			return vm.fail(NotFoundError(name))
		}
		vm.see(e)
		return nil
	})
	// regr reads a register name and pushes its value
	vm.definePrimitive("regr", func(vm *VM) error {
		name, err := vm.scanToken()
		if err != nil {
			return err
		}
		v, rerr := vm.regs.Get(name)
		if rerr != nil {
			return vm.fail(BadRegisterError(name))
		}
		vm.push(v)
		return nil
	})
	// regw reads a register name and pops a value to store into it
	vm.definePrimitive("regw", func(vm *VM) error {
		name, err := vm.scanToken()
		if err != nil {
			return err
		}
		v, err := vm.popOrFail()
		if err != nil {
			return err
		}
		if rerr := vm.regs.Set(name, v); rerr != nil {
			return vm.fail(BadRegisterError(name))
		}
		return nil
	})
}

func (vm *VM) writeOut(format string, args ...interface{}) {
	if vm.out == nil {
		return
	}
	io.WriteString(vm.out, fmt.Sprintf(format, args...))
}
