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

package station

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/master-g/tomasulator/internal/algo"
	"github.com/master-g/tomasulator/internal/instr"
)

// TestStation_SingleAdd traces a lone fadd with both operands already
// resident, latency 3: I E1 E2 E3 W.
func TestStation_SingleAdd(t *testing.T) {
	s := New(instr.PoolAddSub, 0, 3)
	s.Issue(instr.OpAdd, "f1", "f2", "f3", 0, false, NoProvider, NoProvider, 1)
	assert.Equal(t, "I", s.Glyph())

	s.Advance(NoProvider, algo.Tomasulo) // both operands resident -> straight to EXECUTING, counter 0
	assert.Equal(t, "E1", s.Glyph())

	s.Advance(NoProvider, algo.Tomasulo)
	assert.Equal(t, "E2", s.Glyph())

	s.Advance(NoProvider, algo.Tomasulo)
	assert.Equal(t, "E3", s.Glyph())

	s.Advance(NoProvider, algo.Tomasulo) // counter reaches lat -> ATTEMPT_WRITEBACK
	assert.Equal(t, AttemptWriteback, s.State())

	s.MarkWritebackSucceeded()
	assert.Equal(t, "W", s.Glyph())

	s.Advance(NoProvider, algo.Tomasulo)
	assert.Equal(t, Free, s.State())
}

func TestStation_WaitsOnUnresolvedOperand(t *testing.T) {
	s := New(instr.PoolAddSub, 1, 3)
	s.Issue(instr.OpAdd, "f4", "f1", "f3", 0, false, ProviderID(0), NoProvider, 2)

	s.Advance(NoProvider, algo.Tomasulo)
	assert.Equal(t, WaitingForOperands, s.State())

	s.Advance(NoProvider, algo.Tomasulo)
	assert.Equal(t, WaitingForOperands, s.State(), "unrelated CDB traffic must not resolve this operand")

	s.Advance(ProviderID(0), algo.Tomasulo)
	assert.Equal(t, Executing, s.State())
}

func TestStation_StoreEntersExecutingImmediately(t *testing.T) {
	s := New(instr.PoolLoadStore, 2, 2)
	s.Issue(instr.OpStore, "", "f2", "x1", 8, true, ProviderID(5), NoProvider, 3)

	s.Advance(NoProvider, algo.Tomasulo)
	assert.Equal(t, Executing, s.State(), "a store's unresolved data operand does not block EXECUTING under Tomasulo")
}

func TestStation_StoreLoopsBackWhenDataNotReady(t *testing.T) {
	s := New(instr.PoolLoadStore, 3, 1)
	s.Issue(instr.OpStore, "", "f2", "x1", 0, true, ProviderID(5), NoProvider, 1)

	s.Advance(NoProvider, algo.Tomasulo) // JustIssued -> Executing
	s.Advance(NoProvider, algo.Tomasulo) // Executing, counter reaches lat, data not ready
	assert.Equal(t, WaitingForOperands, s.State())

	s.Advance(ProviderID(5), algo.Tomasulo) // data resolves
	assert.Equal(t, AttemptMemoryAccess, s.State())
}

func TestStation_MemoryTransitions(t *testing.T) {
	load := New(instr.PoolLoadStore, 4, 1)
	load.Issue(instr.OpLoad, "f6", "x2", "", 0, true, NoProvider, NoProvider, 1)
	load.Advance(NoProvider, algo.Tomasulo) // -> Executing
	load.Advance(NoProvider, algo.Tomasulo) // counter hits lat -> AttemptMemoryAccess
	assert.Equal(t, AttemptMemoryAccess, load.State())

	load.PostTick(false)
	assert.Equal(t, AttemptMemoryAccess, load.State(), "denied grant stays parked")

	load.PostTick(true)
	assert.Equal(t, Memory, load.State())

	load.Advance(NoProvider, algo.Tomasulo)
	assert.Equal(t, AttemptWriteback, load.State(), "a load re-enters the writeback race after MEMORY")

	store := New(instr.PoolLoadStore, 5, 1)
	store.Issue(instr.OpStore, "", "x2", "x3", 0, true, NoProvider, NoProvider, 2)
	store.Advance(NoProvider, algo.Tomasulo)
	store.Advance(NoProvider, algo.Tomasulo)
	store.PostTick(true)
	assert.Equal(t, Memory, store.State())
	store.Advance(NoProvider, algo.Tomasulo)
	assert.Equal(t, Free, store.State(), "a store retires straight from MEMORY")
}

func TestStation_HasUnreadSource(t *testing.T) {
	s := New(instr.PoolAddSub, 6, 3)
	s.Issue(instr.OpAdd, "f1", "f2", "f3", 0, false, ProviderID(1), NoProvider, 1)

	assert.True(t, s.HasUnreadSource("f2"))
	assert.False(t, s.HasUnreadSource("f9"))

	s.Advance(NoProvider, algo.Tomasulo) // -> WaitingForOperands (src1Tag still unresolved)
	assert.True(t, s.HasUnreadSource("f2"))

	s.Advance(ProviderID(1), algo.Tomasulo) // operand resolves -> EXECUTING
	assert.False(t, s.HasUnreadSource("f2"), "once operands are read the WAR window is closed")
}

// TestStation_ScoreboardReadsOperandsBeforeExecuting: under
// Scoreboard, operands ready at issue still cost one cycle in
// READ_OPERANDS ("R") before EXECUTING begins, and the WAR window
// (HasUnreadSource) stays open across that cycle.
func TestStation_ScoreboardReadsOperandsBeforeExecuting(t *testing.T) {
	s := New(instr.PoolAddSub, 0, 2)
	s.Issue(instr.OpAdd, "f1", "f2", "f3", 0, false, NoProvider, NoProvider, 1)
	assert.Equal(t, "I", s.Glyph())

	s.Advance(NoProvider, algo.Scoreboard)
	assert.Equal(t, ReadOperands, s.State())
	assert.Equal(t, "R", s.Glyph())
	assert.True(t, s.HasUnreadSource("f2"), "still in the WAR window while reading operands")

	s.Advance(NoProvider, algo.Scoreboard)
	assert.Equal(t, Executing, s.State())
	assert.Equal(t, "E1", s.Glyph())
	assert.False(t, s.HasUnreadSource("f2"), "WAR window closes once EXECUTING begins")
}

// TestStation_ScoreboardWaitsThenReadsOperands covers an operand that
// resolves after issue: WAITING_FOR_OPERANDS still routes through
// READ_OPERANDS rather than straight to EXECUTING.
func TestStation_ScoreboardWaitsThenReadsOperands(t *testing.T) {
	s := New(instr.PoolAddSub, 1, 3)
	s.Issue(instr.OpAdd, "f4", "f1", "f3", 0, false, ProviderID(0), NoProvider, 2)

	s.Advance(NoProvider, algo.Scoreboard)
	assert.Equal(t, WaitingForOperands, s.State())

	s.Advance(ProviderID(0), algo.Scoreboard)
	assert.Equal(t, ReadOperands, s.State(), "operand just resolved -> one cycle of READ_OPERANDS, not straight to EXECUTING")

	s.Advance(NoProvider, algo.Scoreboard)
	assert.Equal(t, Executing, s.State())
}

func TestStation_Reset(t *testing.T) {
	s := New(instr.PoolMulDiv, 7, 10)
	s.Issue(instr.OpMul, "f1", "f2", "f3", 0, false, NoProvider, NoProvider, 1)
	s.Reset()

	assert.Equal(t, Free, s.State())
	assert.False(t, s.Busy())
	assert.Equal(t, ProviderID(7), s.ID(), "identity survives reset")
}
