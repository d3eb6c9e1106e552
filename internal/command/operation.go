package command

import (
	"strings"

	"cmdsrv/internal/hasher"
)

// Operation is the command kind selected by the first line of a
// command file.
type Operation int

const (
	OpNone Operation = iota // unrecognised keyword
	OpAdd
	OpSub
	OpHashGeneric
	OpHashSha256
	OpHashSha512
)

// keywords are matched in order against the start of the first line.
// Trailing content after a keyword is ignored.
var keywords = []struct {
	prefix string
	op     Operation
}{
	{"add", OpAdd},
	{"sub", OpSub},
	{"hash_generic", OpHashGeneric},
	{"hash_sha256", OpHashSha256},
	{"hash_sha512", OpHashSha512},
}

// ParseOperation maps a raw first line to its Operation.  Matching is
// case-sensitive and prefix-based; anything else is OpNone.
func ParseOperation(line string) Operation {
	for _, kw := range keywords {
		if strings.HasPrefix(line, kw.prefix) {
			return kw.op
		}
	}
	return OpNone
}

func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpHashGeneric:
		return "hash generic"
	case OpHashSha256:
		return "hash sha256"
	case OpHashSha512:
		return "hash sha512"
	default:
		return "unknown"
	}
}

// IsArithmetic reports whether op takes two integer operands.
func (op Operation) IsArithmetic() bool { return op == OpAdd || op == OpSub }

// Variant returns the hasher variant for a hash operation.  ok is
// false for every other operation.
func (op Operation) Variant() (v hasher.Variant, ok bool) {
	switch op {
	case OpHashGeneric:
		return hasher.Generic, true
	case OpHashSha256:
		return hasher.Sha256, true
	case OpHashSha512:
		return hasher.Sha512, true
	default:
		return 0, false
	}
}

// Apply computes a op b with 32-bit unsigned wraparound.  Non
// arithmetic operations return 0.
func (op Operation) Apply(a, b uint32) uint32 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	default:
		return 0
	}
}
