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

package instr

import "testing"

func TestInstruction_String(t *testing.T) {
	none := Instruction{}
	if got := none.String(); got != "-" {
		t.Errorf("String() = %v, want -", got)
	}

	add := Instruction{RawText: "fadd f1,f2,f3", Op: OpAdd, Dest: "f1", Src1: "f2", Src2: "f3"}
	if got := add.String(); got != "fadd f1,f2,f3" {
		t.Errorf("String() = %v, want fadd f1,f2,f3", got)
	}
}

func TestInstruction_IsNone(t *testing.T) {
	if !(Instruction{}).IsNone() {
		t.Error("IsNone() = false, want true for zero value")
	}
	if (Instruction{Op: OpAdd}).IsNone() {
		t.Error("IsNone() = true, want false for OpAdd")
	}
}

func TestOperation_Pool(t *testing.T) {
	cases := []struct {
		op   Operation
		pool Pool
		ok   bool
	}{
		{OpAdd, PoolAddSub, true},
		{OpSub, PoolAddSub, true},
		{OpMul, PoolMulDiv, true},
		{OpDiv, PoolMulDiv, true},
		{OpLoad, PoolLoadStore, true},
		{OpStore, PoolLoadStore, true},
		{OpNone, 0, false},
	}
	for _, c := range cases {
		pool, ok := c.op.Pool()
		if ok != c.ok || (ok && pool != c.pool) {
			t.Errorf("Pool() for %v = (%v, %v), want (%v, %v)", c.op, pool, ok, c.pool, c.ok)
		}
	}
}
