// Copyright © 2026 tomasulator contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package instr holds the immutable, assembler-produced program
// representation: decoded instructions and the read-only memory that
// stores them in program order.
package instr

// Operation is one of the six opcodes the assembler can produce.
// OpNone is the zero value and marks "no instruction" (an empty queue
// slot, an idle station, a memory read past end of program).
type Operation int

const (
	OpNone Operation = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpLoad
	OpStore
)

// String implements fmt.Stringer.
func (o Operation) String() string {
	switch o {
	case OpNone:
		return ""
	case OpAdd:
		return "fadd"
	case OpSub:
		return "fsub"
	case OpMul:
		return "fmul"
	case OpDiv:
		return "fdiv"
	case OpLoad:
		return "flw"
	case OpStore:
		return "fsw"
	default:
		return "???"
	}
}

// Pool is one of the three reservation-station pools an operation
// dispatches to.
type Pool int

const (
	PoolAddSub Pool = iota
	PoolMulDiv
	PoolLoadStore
)

// String implements fmt.Stringer.
func (p Pool) String() string {
	switch p {
	case PoolAddSub:
		return "add_sub"
	case PoolMulDiv:
		return "mul_div"
	case PoolLoadStore:
		return "load_store"
	default:
		return "unknown"
	}
}

// Pool reports which pool o dispatches to. ok is false for OpNone, which
// never issues.
func (o Operation) Pool() (p Pool, ok bool) {
	switch o {
	case OpAdd, OpSub:
		return PoolAddSub, true
	case OpMul, OpDiv:
		return PoolMulDiv, true
	case OpLoad, OpStore:
		return PoolLoadStore, true
	default:
		return 0, false
	}
}

// IsLoad reports whether o is the load opcode.
func (o Operation) IsLoad() bool { return o == OpLoad }

// IsStore reports whether o is the store opcode.
func (o Operation) IsStore() bool { return o == OpStore }

// Instruction is an immutable decoded program line. The zero value is
// the "no instruction" sentinel returned by an empty queue slot or a
// memory read past end of program; its String method renders as "-" so
// a timing-table UI gets a stable column width.
type Instruction struct {
	// RawText is the original source line, display only.
	RawText string
	Op      Operation
	// Dest, Src1, Src2 are register names (f0..f31 or x0..x31), or ""
	// when the operand class doesn't apply (e.g. Dest for a store).
	Dest, Src1, Src2 string
	// Offset is set only for load/store.
	Offset    int
	HasOffset bool
}

// None is the canonical "no instruction" value.
var None = Instruction{}

// IsNone reports whether i is the "no instruction" sentinel.
func (i Instruction) IsNone() bool {
	return i.Op == OpNone
}

// String renders the instruction for display. A real instruction shows
// its original source line; the sentinel renders as "-".
func (i Instruction) String() string {
	if i.IsNone() {
		return "-"
	}
	return i.RawText
}
