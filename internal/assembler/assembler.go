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

// Package assembler turns free-form program text into a slice of
// instructions the rest of the simulator can run. It never panics and
// never returns a Go error: a malformed line is reported as an
// offending line number, exactly as an external assembler would.
package assembler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/master-g/tomasulator/internal/instr"
)

var (
	tokenPattern    = regexp.MustCompile(`-?\w+`)
	fpRegister      = regexp.MustCompile(`^f([0-9]|[12][0-9]|3[01])$`)
	addressRegister = regexp.MustCompile(`^x([0-9]|[12][0-9]|3[01])$`)
	immediate       = regexp.MustCompile(`^-?\d+$`)
)

// Assemble parses text, one instruction per non-empty line. It returns
// ok=true and the decoded instructions on success. On the first
// malformed line it stops and returns ok=false with that line's
// 1-based number; instructions is nil in that case.
func Assemble(text string) (ok bool, offendingLine int, instructions []instr.Instruction) {
	lines := strings.Split(text, "\n")
	out := make([]instr.Instruction, 0, len(lines))

	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		tokens := tokenPattern.FindAllString(trimmed, -1)
		if len(tokens) != 4 {
			return false, i + 1, nil
		}

		in, ok := decode(strings.ToLower(tokens[0]), tokens[1], tokens[2], tokens[3], trimmed)
		if !ok {
			return false, i + 1, nil
		}
		out = append(out, in)
	}

	return true, 0, out
}

// decode builds one Instruction from its four fields (the line's
// tokens, split on any run of non-word characters). field classes are validated per opcode: fadd/fsub/fmul/fdiv
// take three FP register names; flw takes (fD, imm, xA); fsw takes
// (fS, imm, xA).
func decode(op, f1, f2, f3, rawText string) (instr.Instruction, bool) {
	switch op {
	case "fadd", "fsub", "fmul", "fdiv":
		if !fpRegister.MatchString(f1) || !fpRegister.MatchString(f2) || !fpRegister.MatchString(f3) {
			return instr.Instruction{}, false
		}
		return instr.Instruction{
			RawText: rawText,
			Op:      arithmeticOp(op),
			Dest:    f1,
			Src1:    f2,
			Src2:    f3,
		}, true

	case "flw":
		if !fpRegister.MatchString(f1) || !immediate.MatchString(f2) || !addressRegister.MatchString(f3) {
			return instr.Instruction{}, false
		}
		offset, err := strconv.Atoi(f2)
		if err != nil {
			return instr.Instruction{}, false
		}
		return instr.Instruction{
			RawText:   rawText,
			Op:        instr.OpLoad,
			Dest:      f1,
			Src1:      f3,
			Offset:    offset,
			HasOffset: true,
		}, true

	case "fsw":
		if !fpRegister.MatchString(f1) || !immediate.MatchString(f2) || !addressRegister.MatchString(f3) {
			return instr.Instruction{}, false
		}
		offset, err := strconv.Atoi(f2)
		if err != nil {
			return instr.Instruction{}, false
		}
		return instr.Instruction{
			RawText:   rawText,
			Op:        instr.OpStore,
			Src1:      f1,
			Src2:      f3,
			Offset:    offset,
			HasOffset: true,
		}, true

	default:
		return instr.Instruction{}, false
	}
}

func arithmeticOp(op string) instr.Operation {
	switch op {
	case "fadd":
		return instr.OpAdd
	case "fsub":
		return instr.OpSub
	case "fmul":
		return instr.OpMul
	default:
		return instr.OpDiv
	}
}
