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

// Package cdb arbitrates the single common data bus: each cycle at
// most one reservation station may broadcast its result.
package cdb

import (
	"github.com/master-g/tomasulator/internal/algo"
	"github.com/master-g/tomasulator/internal/station"
)

// CDB is the write-back arbiter. One exists per processor.
type CDB struct {
	algorithm  algo.Algorithm
	lastWinner station.ProviderID
}

// New returns an idle bus for the given scheduling algorithm.
func New(algorithm algo.Algorithm) *CDB {
	return &CDB{algorithm: algorithm, lastWinner: station.NoProvider}
}

// Winner is the station id that broadcast last cycle. Reservation
// stations snoop this value during their own phase-1 advance, one
// cycle after it was actually driven onto the bus.
func (c *CDB) Winner() station.ProviderID {
	return c.lastWinner
}

// Arbitrate picks this cycle's broadcaster among all stations
// currently parked in AttemptWriteback and immediately advances it to
// WriteBack. Tomasulo simply favors the lowest issue number. Scoreboard
// additionally excludes any candidate a WAR hazard is still pending
// against: an earlier-issued, not-yet-read-operands station that needs
// the candidate's destination register as a source.
func (c *CDB) Arbitrate(stations []*station.Station) station.ProviderID {
	var winner *station.Station
	for _, s := range stations {
		if !s.AwaitingWriteback() {
			continue
		}
		if c.algorithm == algo.Scoreboard && warHazardPending(s, stations) {
			continue
		}
		if winner == nil || s.IssueNumber() < winner.IssueNumber() {
			winner = s
		}
	}

	if winner == nil {
		c.lastWinner = station.NoProvider
		return station.NoProvider
	}

	winner.MarkWritebackSucceeded()
	c.lastWinner = winner.ID()
	return winner.ID()
}

// warHazardPending reports whether some other busy station, issued
// before candidate, still needs candidate's destination register as an
// unread source operand.
func warHazardPending(candidate *station.Station, stations []*station.Station) bool {
	dest := candidate.Dest()
	if dest == "" {
		return false
	}
	for _, o := range stations {
		if o == candidate || !o.Busy() {
			continue
		}
		if o.IssueNumber() < candidate.IssueNumber() && o.HasUnreadSource(dest) {
			return true
		}
	}
	return false
}

// Reset clears the bus to idle.
func (c *CDB) Reset() {
	c.lastWinner = station.NoProvider
}
