package main

import (
	"io"
	"strconv"
	"strings"
)

// scanToken reads one whitespace-delimited token from the active input
// stream. Whitespace is any byte <= 0x20. Leading whitespace is skipped;
// the byte that terminated the token is recorded in LASTWS so callers can
// distinguish a space-terminated token from a newline-terminated one. An
// empty result with a nil error means the input stream ended before any
// token characters were read.
func (vm *VM) scanToken() (string, error) {
	var buf []byte
	for {
		r, _, err := vm.in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return string(buf), nil
			}
			return "", err
		}
		if r <= 0x20 {
			if len(buf) == 0 {
				continue
			}
			vm.setLastWS(byte(r))
			return string(buf), nil
		}
		buf = append(buf, byte(r))
	}
}

// parseLiteral implements §4.4 rule 3: a token starting with "0x" is parsed
// as base-16 over the remainder; otherwise it is parsed as base-10, with an
// optional leading '-' accepted only when a digit follows it (the Open
// Question resolution: "-5" is a literal, a bare "-" is not). The 16-bit
// two's-complement truncation of the parsed value is returned.
func parseLiteral(tok string) (uint16, bool) {
	if strings.HasPrefix(tok, "0x") {
		rest := tok[2:]
		if rest == "" {
			return 0, false
		}
		n, err := strconv.ParseUint(rest, 16, 64)
		if err != nil {
			return 0, false
		}
		return uint16(n), true
	}

	s := tok
	neg := false
	if strings.HasPrefix(s, "-") {
		if len(s) < 2 || s[1] < '0' || s[1] > '9' {
			return 0, false
		}
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	v := int64(n)
	if neg {
		v = -v
	}
	return uint16(v), true
}

// compileToken reads one token and classifies it per §4.4: an empty token
// (or end of stream) is a stop; a name already in the dictionary is a
// word-call; a parseable literal is a literal; anything else is an unknown
// token, which prints "What is <token>?" and raises quitting.
func (vm *VM) compileToken() (kind itemKind, arg uint16, err error) {
	tok, err := vm.scanToken()
	if err != nil {
		return itemStop, 0, err
	}
	if tok == "" {
		return itemStop, 0, nil
	}
	if e, _, ok := vm.find(tok); ok {
		return itemWordCall, e.Offset, nil
	}
	if v, ok := parseLiteral(tok); ok {
		return itemLiteral, v, nil
	}
	return itemStop, 0, vm.fail(UnknownTokenError(tok))
}

// wordDefine implements ":": it reads the new word's name, creates a
// compiled entry for it, then repeatedly classifies tokens and appends
// their compiled items to the body until a token equal to ";" is read or
// the stream ends, appending a stop marker either way. If an unknown token
// is encountered mid-definition the entry is rolled back: CURRENT and HERE
// are restored to their values from just before create.
func (vm *VM) wordDefine() error {
	name, err := vm.scanToken()
	if err != nil {
		return err
	}
	if name == "" {
		return vm.fail(MissingNameError{Role: "word"})
	}

	entry := vm.create(name, entryCompiled, 0)
	for {
		tok, err := vm.scanToken()
		if err != nil {
			return err
		}
		if tok == "" || tok == ";" {
			vm.writeStop()
			return nil
		}
		if e, _, ok := vm.find(tok); ok {
			vm.writeWordCall(e.Offset)
			continue
		}
		if v, ok := parseLiteral(tok); ok {
			vm.writeLiteral(v)
			continue
		}

		vm.setCurrent(entry.Prev)
		vm.setHere(entry.Offset)
		return vm.fail(UnknownTokenError(tok))
	}
}
