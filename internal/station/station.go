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

// Package station implements a single reservation-station slot: the
// state machine that carries one in-flight instruction from issue
// through write-back.
package station

import (
	"fmt"

	"github.com/master-g/tomasulator/internal/algo"
	"github.com/master-g/tomasulator/internal/instr"
)

// ProviderID names whoever will eventually produce a register's value:
// either a reservation station (by its globally unique id) or
// NoProvider, meaning the value already sits in the register file.
type ProviderID int

// NoProvider marks an operand as already resolved.
const NoProvider ProviderID = -1

// State is a reservation-station lifecycle stage.
type State int

const (
	Free State = iota
	JustIssued
	WaitingForOperands
	// ReadOperands is a Scoreboard-only, exactly-one-cycle stage between
	// operands becoming ready and EXECUTING. Tomasulo never visits it:
	// it goes straight from JustIssued/WaitingForOperands to Executing.
	ReadOperands
	Executing
	AttemptMemoryAccess
	Memory
	AttemptWriteback
	WriteBack
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Free:
		return "FREE"
	case JustIssued:
		return "JUST_ISSUED"
	case WaitingForOperands:
		return "WAITING_FOR_OPERANDS"
	case ReadOperands:
		return "READ_OPERANDS"
	case Executing:
		return "EXECUTING"
	case AttemptMemoryAccess:
		return "ATTEMPT_MEMORY_ACCESS"
	case Memory:
		return "MEMORY"
	case AttemptWriteback:
		return "ATTEMPT_WRITEBACK"
	case WriteBack:
		return "WRITE_BACK"
	default:
		return "UNKNOWN"
	}
}

// Station is one reservation-station slot inside a functional-unit
// pool. A zero Station is FREE and ready to accept work.
type Station struct {
	pool instr.Pool
	id   ProviderID
	lat  int

	state State
	op    instr.Operation

	dest       string
	src1, src2 string
	src1Tag    ProviderID
	src2Tag    ProviderID

	offset    int
	hasOffset bool

	issueNumber int
	counter     int

	// latencyPaid marks a Tomasulo store that entered EXECUTING before
	// its data operand resolved (Tomasulo's only early-EXECUTING carve-
	// out) and has since spent its full latency there; once the operand
	// resolves it goes straight to ATTEMPT_MEMORY_ACCESS rather than
	// executing a second time. Scoreboard never sets this: a Scoreboard
	// store with an unready operand stays in WAITING_FOR_OPERANDS.
	latencyPaid bool
}

// New returns a FREE station bound to pool, identified globally by id,
// with the fixed per-pool execution latency lat.
func New(pool instr.Pool, id ProviderID, lat int) *Station {
	return &Station{pool: pool, id: id, lat: lat, state: Free}
}

// ID is this station's globally unique tag, used as a ProviderID by
// register-status bookkeeping and by the CDB.
func (s *Station) ID() ProviderID { return s.id }

// Pool reports the functional-unit pool this station belongs to.
func (s *Station) Pool() instr.Pool { return s.pool }

// State reports the current lifecycle stage.
func (s *Station) State() State { return s.state }

// Busy reports whether the station currently holds an instruction.
func (s *Station) Busy() bool { return s.state != Free }

// Op is the operation this station is carrying.
func (s *Station) Op() instr.Operation { return s.op }

// Dest is the destination register, or "" for a store.
func (s *Station) Dest() string { return s.dest }

// Src1 and Src2 are the source register names (display/hazard checks
// only; the simulator never computes over their values).
func (s *Station) Src1() string { return s.src1 }
func (s *Station) Src2() string { return s.src2 }

// IssueNumber is this station's program-order issue sequence number.
func (s *Station) IssueNumber() int { return s.issueNumber }

// HasUnreadSource reports whether reg is a source operand this station
// has not yet consumed: true only while the station sits in
// JustIssued, WaitingForOperands, or ReadOperands, which is the window
// a scoreboard WAR check cares about.
func (s *Station) HasUnreadSource(reg string) bool {
	if s.state != JustIssued && s.state != WaitingForOperands && s.state != ReadOperands {
		return false
	}
	return (s.src1 != "" && s.src1 == reg) || (s.src2 != "" && s.src2 == reg)
}

// AwaitingMemoryPort reports whether the station is parked waiting for
// the memory port arbiter to grant it access.
func (s *Station) AwaitingMemoryPort() bool { return s.state == AttemptMemoryAccess }

// AwaitingWriteback reports whether the station is parked waiting for
// the CDB arbiter to grant it the bus.
func (s *Station) AwaitingWriteback() bool { return s.state == AttemptWriteback }

// Glyph renders the station's state the way the timing table displays
// it: blank when free, a single letter for most stages, and "E<n>" for
// the nth cycle spent executing.
func (s *Station) Glyph() string {
	switch s.state {
	case Free:
		return ""
	case JustIssued:
		return "I"
	case ReadOperands:
		return "R"
	case WaitingForOperands, AttemptMemoryAccess, AttemptWriteback:
		return "-"
	case Executing:
		return fmt.Sprintf("E%d", s.counter+1)
	case Memory:
		return "M"
	case WriteBack:
		return "W"
	default:
		return "?"
	}
}

// Issue loads a freshly-dispatched instruction into this station.
// src1Tag/src2Tag are the providers resolved from the register-status
// map at issue time (NoProvider if the register file already holds the
// value).
func (s *Station) Issue(op instr.Operation, dest, src1, src2 string, offset int, hasOffset bool, src1Tag, src2Tag ProviderID, issueNumber int) {
	s.op = op
	s.dest = dest
	s.src1, s.src2 = src1, src2
	s.src1Tag, s.src2Tag = src1Tag, src2Tag
	s.offset, s.hasOffset = offset, hasOffset
	s.issueNumber = issueNumber
	s.counter = 0
	s.latencyPaid = false
	s.state = JustIssued
}

// snoop clears any source tag matching winner, marking that operand
// resolved. winner is the CDB's previous-cycle broadcaster, observed
// here at the start of the current cycle's advance step.
func (s *Station) snoop(winner ProviderID) {
	if winner == NoProvider {
		return
	}
	if s.src1Tag == winner {
		s.src1Tag = NoProvider
	}
	if s.src2Tag == winner {
		s.src2Tag = NoProvider
	}
}

func (s *Station) operandsReady() bool {
	return s.src1Tag == NoProvider && s.src2Tag == NoProvider
}

// dataReady reports whether the operand a store actually writes is
// resolved. A store's first source is always the data value; its
// second source is the address register, which Issue always resolves
// to NoProvider (the address is treated as register-file-resident).
func (s *Station) dataReady() bool {
	return s.src1Tag == NoProvider
}

// Advance runs this station's phase-1 per-cycle transition. winner is
// the CDB's previous-cycle broadcaster so stations can snoop the bus
// one cycle after it was driven. algorithm decides whether operands
// ready at JUST_ISSUED/WAITING_FOR_OPERANDS flow straight into
// EXECUTING (Tomasulo) or spend one cycle in READ_OPERANDS first
// (Scoreboard). AttemptMemoryAccess and AttemptWriteback are left
// untouched here: they resolve via PostTick and the CDB arbiter
// respectively.
func (s *Station) Advance(winner ProviderID, algorithm algo.Algorithm) {
	s.snoop(winner)

	tomasulo := algorithm == algo.Tomasulo

	switch s.state {
	case Free:
		// nothing to do
	case JustIssued:
		if s.operandsReady() {
			if tomasulo {
				s.state = Executing
				s.counter = 0
			} else {
				s.state = ReadOperands
			}
		} else if tomasulo && s.op.IsStore() {
			s.state = Executing
			s.counter = 0
		} else {
			s.state = WaitingForOperands
		}
	case WaitingForOperands:
		if s.latencyPaid {
			if s.dataReady() {
				s.state = AttemptMemoryAccess
			}
			return
		}
		if !s.operandsReady() {
			return
		}
		if s.op.IsStore() {
			if tomasulo {
				s.state = AttemptMemoryAccess
			} else {
				s.state = ReadOperands
			}
		} else if tomasulo {
			s.state = Executing
			s.counter = 0
		} else {
			s.state = ReadOperands
		}
	case ReadOperands:
		// Scoreboard-only: exactly one cycle here, then EXECUTING
		// unconditionally, with no re-check of operand readiness.
		s.state = Executing
		s.counter = 0
	case Executing:
		s.counter++
		if s.counter < s.lat {
			return
		}
		switch {
		case s.op.IsStore():
			if s.dataReady() {
				s.state = AttemptMemoryAccess
			} else {
				s.latencyPaid = true
				s.state = WaitingForOperands
			}
		case s.op.IsLoad():
			s.state = AttemptMemoryAccess
		default:
			s.state = AttemptWriteback
		}
	case Memory:
		if s.op.IsStore() {
			s.state = Free
		} else {
			s.state = AttemptWriteback
		}
	case WriteBack:
		s.state = Free
	}
}

// PostTick applies the memory-port arbiter's decision; the port calls it
// on every waiting station as soon as it has picked this cycle's
// winner. A station not currently awaiting the port is unaffected.
func (s *Station) PostTick(granted bool) {
	if s.state != AttemptMemoryAccess {
		return
	}
	if granted {
		s.state = Memory
	}
}

// MarkWritebackSucceeded is called by the CDB arbiter on the station it
// picked as this cycle's winner. The transition to
// WriteBack happens immediately, not on the next Advance.
func (s *Station) MarkWritebackSucceeded() {
	if s.state == AttemptWriteback {
		s.state = WriteBack
	}
}

// Reset returns the station to FREE, clearing all in-flight state.
func (s *Station) Reset() {
	*s = Station{pool: s.pool, id: s.id, lat: s.lat, state: Free}
}
