// Package trace holds memory access traces and the hooks that record what
// the translation pipeline does with them.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// AccessKind tells whether an access reads or writes memory. Translation does
// not depend on it.
type AccessKind int

// Kinds of accesses. Traces without tags produce Unknown accesses.
const (
	Unknown AccessKind = iota
	Read
	Write
)

func (k AccessKind) String() string {
	switch k {
	case Read:
		return "R"
	case Write:
		return "W"
	default:
		return "-"
	}
}

// An Access is one entry of a trace.
type Access struct {
	Address uint64
	Kind    AccessKind
}

// A Trace is an ordered list of accesses. It is never modified after it is
// created, so it can be replayed any number of times.
type Trace struct {
	accesses []Access
}

// NewTrace creates a trace from accesses, keeping their order.
func NewTrace(accesses ...Access) *Trace {
	t := &Trace{accesses: make([]Access, len(accesses))}
	copy(t.accesses, accesses)

	return t
}

// Len returns the number of accesses.
func (t *Trace) Len() int {
	return len(t.accesses)
}

// At returns the i-th access.
func (t *Trace) At(i int) Access {
	return t.accesses[i]
}

// Accesses returns a copy of all the accesses.
func (t *Trace) Accesses() []Access {
	accesses := make([]Access, len(t.accesses))
	copy(accesses, t.accesses)

	return accesses
}

// Each calls fn for every access in order. It stops at the first error and
// returns it.
func (t *Trace) Each(fn func(i int, a Access) error) error {
	for i, a := range t.accesses {
		if err := fn(i, a); err != nil {
			return err
		}
	}

	return nil
}

// ErrMalformedLine is wrapped by every ParseError.
var ErrMalformedLine = errors.New("malformed trace line")

// A ParseError reports the line of a trace file that could not be parsed.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedLine.
func (e *ParseError) Unwrap() error {
	return ErrMalformedLine
}

// Parse reads a trace with one access per line. A line holds a hexadecimal
// address, optionally prefixed with 0x, and an optional R or W tag:
//
//	07b243a0 R
//	0x08b24312 W
//	08b24380
//
// Blank lines and text after # are ignored.
func Parse(r io.Reader) (*Trace, error) {
	t := &Trace{}

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		access, ok, err := parseLine(lineNum, scanner.Text())
		if err != nil {
			return nil, err
		}

		if ok {
			t.accesses = append(t.accesses, access)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// ParseString is Parse on a string.
func ParseString(s string) (*Trace, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(lineNum int, text string) (Access, bool, error) {
	line := text
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Access{}, false, nil
	}

	if len(fields) > 2 {
		return Access{}, false, &ParseError{
			Line: lineNum, Text: text, Reason: "too many fields",
		}
	}

	hex := strings.TrimPrefix(strings.ToLower(fields[0]), "0x")

	addr, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Access{}, false, &ParseError{
			Line: lineNum, Text: text, Reason: "address is not hexadecimal",
		}
	}

	access := Access{Address: addr}

	if len(fields) == 2 {
		switch strings.ToUpper(fields[1]) {
		case "R":
			access.Kind = Read
		case "W":
			access.Kind = Write
		default:
			return Access{}, false, &ParseError{
				Line: lineNum, Text: text, Reason: "tag must be R or W",
			}
		}
	}

	return access, true, nil
}
