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

package memport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/master-g/tomasulator/internal/algo"
	"github.com/master-g/tomasulator/internal/instr"
	"github.com/master-g/tomasulator/internal/station"
)

func awaitingMemory(id station.ProviderID, issueNumber int, op instr.Operation) *station.Station {
	s := station.New(instr.PoolLoadStore, id, 1)
	s.Issue(op, "f1", "x1", "x2", 0, true, station.NoProvider, station.NoProvider, issueNumber)
	for s.State() != station.Executing {
		s.Advance(station.NoProvider, algo.Tomasulo)
	}
	s.Advance(station.NoProvider, algo.Tomasulo) // counter hits lat -> AttemptMemoryAccess
	return s
}

func TestPort_GrantsOldestIssueNumber(t *testing.T) {
	p := New()
	older := awaitingMemory(0, 1, instr.OpLoad)
	younger := awaitingMemory(1, 2, instr.OpLoad)

	granted := p.Arbitrate([]*station.Station{younger, older})

	assert.Equal(t, older.ID(), granted)
	assert.Equal(t, station.Memory, older.State())
	assert.Equal(t, station.AttemptMemoryAccess, younger.State(), "the loser stays parked for next cycle")
}

func TestPort_NoCandidatesReturnsNoProvider(t *testing.T) {
	p := New()
	idle := station.New(instr.PoolLoadStore, 0, 1)

	granted := p.Arbitrate([]*station.Station{idle})

	assert.Equal(t, station.NoProvider, granted)
}

func TestPort_Reset(t *testing.T) {
	p := New()
	s := awaitingMemory(2, 1, instr.OpStore)
	p.Arbitrate([]*station.Station{s})
	p.Reset()

	assert.Equal(t, station.NoProvider, p.LastGranted())
}
