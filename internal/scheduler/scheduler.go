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

// Package scheduler drives one simulated cycle at a time: it owns the
// instruction queue, the reservation-station pools, the register
// status (renaming) map, the CDB, and the memory port, and issues
// instructions in strict program order from the queue head.
package scheduler

import (
	"github.com/master-g/tomasulator/internal/algo"
	"github.com/master-g/tomasulator/internal/cdb"
	"github.com/master-g/tomasulator/internal/instr"
	"github.com/master-g/tomasulator/internal/memport"
	"github.com/master-g/tomasulator/internal/queue"
	"github.com/master-g/tomasulator/internal/station"
)

// Config fixes the shape of a processor: which algorithm drives
// hazard resolution, how many stations each functional-unit pool has,
// and how many cycles each operation spends in EXECUTING.
type Config struct {
	Algorithm algo.Algorithm

	AddSubStations    int
	MulDivStations    int
	LoadStoreStations int

	AddSubLatency    int
	MulDivLatency    int
	LoadStoreLatency int
}

// Scheduler is the machine's beating heart: one Tick advances every
// in-flight instruction by exactly one cycle, in the fixed phase order
// the simulated algorithms require.
type Scheduler struct {
	cfg Config

	mem   *instr.Memory
	queue *queue.Queue

	pools map[instr.Pool][]*station.Station
	order []instr.Pool // stable iteration order for display

	bus  *cdb.CDB
	port *memport.Port

	regStatus map[string]station.ProviderID

	// issueText remembers each issued instruction's original source
	// line, keyed by issue number, so a timing-table UI can label rows
	// by instruction rather than by station (stations are reused).
	issueText map[int]string

	issueCounter int
	nextFetch    int
	cycle        int
}

// New builds a scheduler for cfg. Station ids are assigned once, in
// pool order (add/sub, then mul/div, then load/store), and never
// change for the scheduler's lifetime.
func New(cfg Config) *Scheduler {
	s := &Scheduler{
		cfg:       cfg,
		mem:       instr.NewMemory(),
		queue:     queue.New(),
		pools:     make(map[instr.Pool][]*station.Station),
		order:     []instr.Pool{instr.PoolAddSub, instr.PoolMulDiv, instr.PoolLoadStore},
		bus:       cdb.New(cfg.Algorithm),
		port:      memport.New(),
		regStatus: make(map[string]station.ProviderID),
		issueText: make(map[int]string),
	}

	var nextID station.ProviderID
	build := func(pool instr.Pool, n, lat int) {
		stations := make([]*station.Station, n)
		for i := 0; i < n; i++ {
			stations[i] = station.New(pool, nextID, lat)
			nextID++
		}
		s.pools[pool] = stations
	}
	build(instr.PoolAddSub, cfg.AddSubStations, cfg.AddSubLatency)
	build(instr.PoolMulDiv, cfg.MulDivStations, cfg.MulDivLatency)
	build(instr.PoolLoadStore, cfg.LoadStoreStations, cfg.LoadStoreLatency)

	return s
}

// UploadProgram loads a new program, rewinds the fetch pointer to its
// first instruction, and immediately fills every empty queue slot from
// it. It does not disturb in-flight station state; call Reset first if
// a clean slate is wanted.
func (s *Scheduler) UploadProgram(instructions []instr.Instruction) {
	s.mem.Upload(instructions)
	s.nextFetch = 0
	s.queue.Reset()
	s.fillQueue()
}

// Reset clears every piece of runtime state (queue, stations,
// register status, bus, port, cycle count, fetch pointer) without
// discarding the uploaded program, then re-fills the queue from that
// program's start, same as a fresh upload.
func (s *Scheduler) Reset() {
	s.queue.Reset()
	for _, pool := range s.order {
		for _, st := range s.pools[pool] {
			st.Reset()
		}
	}
	s.bus.Reset()
	s.port.Reset()
	s.regStatus = make(map[string]station.ProviderID)
	s.issueText = make(map[int]string)
	s.issueCounter = 0
	s.nextFetch = 0
	s.cycle = 0
	s.fillQueue()
}

// fillQueue tops up the queue with every instruction program memory
// still has on offer, up to its capacity. Run once, right after a
// program is (re-)loaded. Thereafter the queue is topped up one slot at
// a time, only as a direct consequence of a successful issue (see
// tryIssue), never unconditionally every cycle.
func (s *Scheduler) fillQueue() {
	for s.queue.NumEmptySlots() > 0 {
		next := s.mem.At(s.nextFetch)
		if next.IsNone() {
			return
		}
		s.queue.Insert(next)
		s.nextFetch++
	}
}

// allStations returns every station across all pools in stable order.
func (s *Scheduler) allStations() []*station.Station {
	var all []*station.Station
	for _, pool := range s.order {
		all = append(all, s.pools[pool]...)
	}
	return all
}

// Tick advances the simulation by exactly one cycle, running the five
// phases in their fixed order: advance in-flight stations, attempt to
// issue the queue head (which, on success, fetches one replacement
// instruction into the queue), arbitrate the CDB, arbitrate the memory
// port, and finally bump the cycle counter.
func (s *Scheduler) Tick() {
	all := s.allStations()

	winner := s.bus.Winner()
	for _, st := range all {
		st.Advance(winner, s.cfg.Algorithm)
	}

	s.tryIssue()

	broadcaster := s.bus.Arbitrate(all)
	if broadcaster != station.NoProvider {
		s.clearRegisterStatus(broadcaster)
	}

	s.port.Arbitrate(all)

	s.cycle++
}

// tryIssue attempts to dispatch the queue head to a free station in
// its target pool. It stalls, leaving the queue head in place, on a
// structural hazard (no free station) or, under Scoreboard, a WAW
// hazard (an earlier instruction has not yet written the same
// destination register).
func (s *Scheduler) tryIssue() {
	top := s.queue.Top()
	if top.IsNone() {
		return
	}
	pool, ok := top.Op.Pool()
	if !ok {
		return
	}

	free := s.firstFree(pool)
	if free == nil {
		return
	}

	if s.cfg.Algorithm == algo.Scoreboard && top.Dest != "" {
		if cur, exists := s.regStatus[top.Dest]; exists && cur != station.NoProvider {
			return
		}
	}

	s.issueCounter++
	s.issueText[s.issueCounter] = top.RawText
	src1Tag, src2Tag := s.resolveProviders(top)
	free.Issue(top.Op, top.Dest, top.Src1, top.Src2, top.Offset, top.HasOffset,
		src1Tag, src2Tag, s.issueCounter)

	if top.Dest != "" {
		s.regStatus[top.Dest] = free.ID()
	}
	s.queue.Consume()
	s.fetchNext()
}

// fetchNext pulls the next not-yet-queued program instruction into the
// queue, if the program has more to offer. Called only right after a
// successful issue frees a slot, never unconditionally every cycle.
func (s *Scheduler) fetchNext() {
	next := s.mem.At(s.nextFetch)
	if next.IsNone() {
		return
	}
	s.queue.Insert(next)
	s.nextFetch++
}

// resolveProviders maps an issuing instruction's source registers to
// the tags Issue expects, per the rule each opcode class follows: a
// load's address register, and a store's address register, are always
// treated as already resident in the register file (FREE); only an
// arithmetic op's two sources and a store's data register are actually
// looked up in the renaming map.
func (s *Scheduler) resolveProviders(in instr.Instruction) (src1, src2 station.ProviderID) {
	switch {
	case in.Op.IsLoad():
		return station.NoProvider, station.NoProvider
	case in.Op.IsStore():
		return s.providerFor(in.Src1), station.NoProvider
	default:
		return s.providerFor(in.Src1), s.providerFor(in.Src2)
	}
}

func (s *Scheduler) firstFree(pool instr.Pool) *station.Station {
	for _, st := range s.pools[pool] {
		if !st.Busy() {
			return st
		}
	}
	return nil
}

func (s *Scheduler) providerFor(reg string) station.ProviderID {
	if reg == "" {
		return station.NoProvider
	}
	if tag, ok := s.regStatus[reg]; ok {
		return tag
	}
	return station.NoProvider
}

// clearRegisterStatus marks every register the given station was the
// designated provider for as resolved, now that it has broadcast.
func (s *Scheduler) clearRegisterStatus(provider station.ProviderID) {
	for reg, tag := range s.regStatus {
		if tag == provider {
			s.regStatus[reg] = station.NoProvider
		}
	}
}

// Quiescent reports whether the processor has nothing left to do: the
// program is fully fetched, the queue is empty, and every station is
// FREE.
func (s *Scheduler) Quiescent() bool {
	if s.queue.Len() > 0 {
		return false
	}
	if s.nextFetch < s.mem.Len() {
		return false
	}
	for _, st := range s.allStations() {
		if st.Busy() {
			return false
		}
	}
	return true
}

// Cycle is the number of ticks run since the last Reset.
func (s *Scheduler) Cycle() int {
	return s.cycle
}

// QueueTexts exposes the queue's display row.
func (s *Scheduler) QueueTexts() [queue.Capacity]string {
	return s.queue.Texts()
}

// QueueLen reports how many instructions are currently queued.
func (s *Scheduler) QueueLen() int {
	return s.queue.Len()
}

// RegisterStatus returns a snapshot of the renaming map: register name
// to the station id that will produce its value, absent for registers
// the register file already resolves.
func (s *Scheduler) RegisterStatus() map[string]station.ProviderID {
	out := make(map[string]station.ProviderID, len(s.regStatus))
	for reg, tag := range s.regStatus {
		if tag != station.NoProvider {
			out[reg] = tag
		}
	}
	return out
}

// StationInfo is a display snapshot of one reservation station.
type StationInfo struct {
	Pool        instr.Pool
	ID          station.ProviderID
	Busy        bool
	Op          instr.Operation
	Dest        string
	Src1        string
	Src2        string
	IssueNumber int
	Glyph       string
	RawText     string
}

// StationInfos returns a display snapshot of every station, in stable
// pool order (add/sub, mul/div, load/store) then station index.
func (s *Scheduler) StationInfos() []StationInfo {
	var out []StationInfo
	for _, pool := range s.order {
		for _, st := range s.pools[pool] {
			out = append(out, StationInfo{
				Pool:        pool,
				ID:          st.ID(),
				Busy:        st.Busy(),
				Op:          st.Op(),
				Dest:        st.Dest(),
				Src1:        st.Src1(),
				Src2:        st.Src2(),
				IssueNumber: st.IssueNumber(),
				Glyph:       st.Glyph(),
				RawText:     s.issueText[st.IssueNumber()],
			})
		}
	}
	return out
}

// Occupancy reports how many of a pool's stations are currently busy.
type Occupancy struct {
	Busy, Total int
}

// PoolOccupancy reports per-pool station usage, useful for a
// configuration UI deciding whether it is safe to shrink a pool.
func (s *Scheduler) PoolOccupancy() map[instr.Pool]Occupancy {
	out := make(map[instr.Pool]Occupancy, len(s.order))
	for _, pool := range s.order {
		stations := s.pools[pool]
		occ := Occupancy{Total: len(stations)}
		for _, st := range stations {
			if st.Busy() {
				occ.Busy++
			}
		}
		out[pool] = occ
	}
	return out
}
