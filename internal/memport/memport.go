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

// Package memport arbitrates the single data-memory access port: at
// most one reservation station may use it per cycle.
package memport

import "github.com/master-g/tomasulator/internal/station"

// Port is the memory-access arbiter. One exists per processor.
type Port struct {
	lastGranted station.ProviderID
}

// New returns an idle port.
func New() *Port {
	return &Port{lastGranted: station.NoProvider}
}

// Arbitrate grants the port to the oldest (lowest issue number) station
// currently parked in AttemptMemoryAccess, and denies every other
// candidate this cycle. It reports the granted station's id, or
// NoProvider if nobody asked.
func (p *Port) Arbitrate(stations []*station.Station) station.ProviderID {
	var winner *station.Station
	for _, s := range stations {
		if !s.AwaitingMemoryPort() {
			continue
		}
		if winner == nil || s.IssueNumber() < winner.IssueNumber() {
			winner = s
		}
	}

	for _, s := range stations {
		if !s.AwaitingMemoryPort() {
			continue
		}
		s.PostTick(s == winner)
	}

	if winner == nil {
		p.lastGranted = station.NoProvider
		return station.NoProvider
	}
	p.lastGranted = winner.ID()
	return winner.ID()
}

// LastGranted is the station id the port granted access to last cycle.
func (p *Port) LastGranted() station.ProviderID {
	return p.lastGranted
}

// Reset clears the port to idle.
func (p *Port) Reset() {
	p.lastGranted = station.NoProvider
}
