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

package scheduler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/master-g/tomasulator/internal/algo"
	"github.com/master-g/tomasulator/internal/instr"
	"github.com/master-g/tomasulator/internal/station"
)

func tomasuloConfig() Config {
	return Config{
		Algorithm:         algo.Tomasulo,
		AddSubStations:    3,
		MulDivStations:    2,
		LoadStoreStations: 3,
		AddSubLatency:     3,
		MulDivLatency:     10,
		LoadStoreLatency:  2,
	}
}

// TestScheduler_SingleAddRunsToQuiescence traces a lone fadd with
// resident operands, latency 3: I, E1, E2, E3, W, then one more tick
// for WRITE_BACK to retire into FREE.
func TestScheduler_SingleAddRunsToQuiescence(t *testing.T) {
	s := New(tomasuloConfig())
	s.UploadProgram([]instr.Instruction{
		{RawText: "fadd f1,f2,f3", Op: instr.OpAdd, Dest: "f1", Src1: "f2", Src2: "f3"},
	})

	cycles := 0
	for !s.Quiescent() && cycles < 10 {
		s.Tick()
		cycles++
	}

	assert.True(t, s.Quiescent(), "program must retire")
	assert.Equal(t, 6, cycles)
}

func TestScheduler_IssueRenamesDestination(t *testing.T) {
	s := New(tomasuloConfig())
	s.UploadProgram([]instr.Instruction{
		{RawText: "fadd f1,f2,f3", Op: instr.OpAdd, Dest: "f1", Src1: "f2", Src2: "f3"},
	})

	s.Tick() // the queue was pre-filled at upload, so this tick issues immediately

	status := s.RegisterStatus()
	if diff := cmp.Diff(map[string]station.ProviderID{"f1": 0}, status); diff != "" {
		t.Errorf("RegisterStatus() mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduler_SecondInstructionWaitsOnFirstsResult(t *testing.T) {
	s := New(tomasuloConfig())
	s.UploadProgram([]instr.Instruction{
		{RawText: "fadd f1,f2,f3", Op: instr.OpAdd, Dest: "f1", Src1: "f2", Src2: "f3"},
		{RawText: "fsub f4,f1,f3", Op: instr.OpSub, Dest: "f4", Src1: "f1", Src2: "f3"},
	})

	for i := 0; i < 3; i++ {
		s.Tick()
	}

	infos := s.StationInfos()
	var second *StationInfo
	for i := range infos {
		if infos[i].Busy && infos[i].Dest == "f4" {
			second = &infos[i]
		}
	}
	if second == nil {
		t.Fatal("second instruction was never issued")
	}
	assert.Equal(t, "-", second.Glyph, "must stall on f1 until the first instruction broadcasts")
}

func TestScheduler_StructuralHazardStallsIssue(t *testing.T) {
	cfg := tomasuloConfig()
	cfg.AddSubStations = 1
	s := New(cfg)
	s.UploadProgram([]instr.Instruction{
		{RawText: "fadd f1,f2,f3", Op: instr.OpAdd, Dest: "f1", Src1: "f2", Src2: "f3"},
		{RawText: "fadd f4,f5,f6", Op: instr.OpAdd, Dest: "f4", Src1: "f5", Src2: "f6"},
	})

	s.Tick() // first instruction takes the only add/sub station
	s.Tick() // second instruction, already queued at upload, has nowhere to issue

	assert.Equal(t, 1, s.QueueLen(), "second instruction has nowhere to issue")
}

func TestScheduler_ScoreboardStallsOnWAW(t *testing.T) {
	cfg := tomasuloConfig()
	cfg.Algorithm = algo.Scoreboard
	s := New(cfg)
	s.UploadProgram([]instr.Instruction{
		{RawText: "fadd f1,f2,f3", Op: instr.OpAdd, Dest: "f1", Src1: "f2", Src2: "f3"},
		{RawText: "fmul f1,f6,f7", Op: instr.OpMul, Dest: "f1", Src1: "f6", Src2: "f7"},
	})

	s.Tick() // first instruction issues and claims f1
	s.Tick() // second instruction, already queued at upload, stalls on the WAW hazard

	assert.Equal(t, 1, s.QueueLen(), "scoreboard must stall a second writer of f1 until the first retires")
}

// TestScheduler_UploadFillsQueueAheadOfFetch covers the queue's
// documented fill/fetch asymmetry: UploadProgram tops the queue up to
// capacity immediately, regardless of how many instructions the
// program has beyond it, and thereafter only a successful issue pulls
// in exactly one replacement, in the same tick as the issue.
func TestScheduler_UploadFillsQueueAheadOfFetch(t *testing.T) {
	cfg := tomasuloConfig()
	cfg.AddSubStations = 1
	s := New(cfg)
	s.UploadProgram([]instr.Instruction{
		{RawText: "fadd f1,f2,f3", Op: instr.OpAdd, Dest: "f1", Src1: "f2", Src2: "f3"},
		{RawText: "fadd f4,f5,f6", Op: instr.OpAdd, Dest: "f4", Src1: "f5", Src2: "f6"},
		{RawText: "fadd f7,f8,f9", Op: instr.OpAdd, Dest: "f7", Src1: "f8", Src2: "f9"},
		{RawText: "fadd f10,f11,f12", Op: instr.OpAdd, Dest: "f10", Src1: "f11", Src2: "f12"},
		{RawText: "fadd f13,f14,f15", Op: instr.OpAdd, Dest: "f13", Src1: "f14", Src2: "f15"},
	})

	assert.Equal(t, 3, s.QueueLen(), "upload fills all empty slots, not just one")
	assert.Equal(t, [3]string{"fadd f1,f2,f3", "fadd f4,f5,f6", "fadd f7,f8,f9"}, s.QueueTexts())

	s.Tick() // the sole add/sub station is free: i1 issues, i4 is fetched in its place this same tick
	assert.Equal(t, 3, s.QueueLen(), "a successful issue is immediately backfilled, not left short for a tick")
	assert.Equal(t, [3]string{"fadd f4,f5,f6", "fadd f7,f8,f9", "fadd f10,f11,f12"}, s.QueueTexts())

	before := s.QueueTexts()
	s.Tick() // the station is still busy executing i1 (latency 3): nothing issues, so nothing is fetched
	assert.Equal(t, before, s.QueueTexts(), "a tick with no issue must not advance the fetch pointer")
}

func TestScheduler_Reset(t *testing.T) {
	s := New(tomasuloConfig())
	s.UploadProgram([]instr.Instruction{
		{RawText: "fadd f1,f2,f3", Op: instr.OpAdd, Dest: "f1", Src1: "f2", Src2: "f3"},
	})
	s.Tick()
	s.Tick()
	s.Reset()

	assert.Equal(t, 0, s.Cycle())
	assert.Empty(t, s.RegisterStatus())
	for _, info := range s.StationInfos() {
		assert.False(t, info.Busy)
	}
	// program survives a reset; ticking still makes progress
	s.Tick()
	assert.False(t, s.Quiescent())
}
