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

// Package processor is the facade a presentation layer drives: it
// owns configuration, the uploaded program, and the scheduler, and
// exposes exactly the observers a timing-table UI needs.
package processor

import (
	"fmt"

	"github.com/master-g/tomasulator/internal/config"
	"github.com/master-g/tomasulator/internal/instr"
	"github.com/master-g/tomasulator/internal/logx"
	"github.com/master-g/tomasulator/internal/queue"
	"github.com/master-g/tomasulator/internal/scheduler"
)

// DefaultMaxCycles is the run-to-end safety cap.
const DefaultMaxCycles = 300

// Processor is the core of the simulator, independent of any
// presentation layer.
type Processor struct {
	active  *config.Config
	pending *config.Config
	program []instr.Instruction
	sched   *scheduler.Scheduler
}

// New builds a processor with cfg as both its active and pending
// configuration.
func New(cfg *config.Config) *Processor {
	p := &Processor{active: cfg.Clone(), pending: cfg.Clone()}
	p.sched = buildScheduler(p.active)
	return p
}

func buildScheduler(cfg *config.Config) *scheduler.Scheduler {
	return scheduler.New(scheduler.Config{
		Algorithm:         cfg.Algorithm(),
		AddSubStations:    cfg.AddSubStations(),
		MulDivStations:    cfg.MulDivStations(),
		LoadStoreStations: cfg.LoadStoreStations(),
		AddSubLatency:     cfg.AddSubLatency(),
		MulDivLatency:     cfg.MulDivLatency(),
		LoadStoreLatency:  cfg.LoadStoreLatency(),
	})
}

// Configure stages cfg as the configuration the next Reset will apply.
// The currently running simulation is untouched until Reset is called.
func (p *Processor) Configure(cfg *config.Config) {
	p.pending = cfg.Clone()
}

// ActiveConfig is the configuration the current scheduler was built
// with.
func (p *Processor) ActiveConfig() *config.Config {
	return p.active.Clone()
}

// UploadProgram replaces the running program and restarts execution
// from cycle zero.
func (p *Processor) UploadProgram(instructions []instr.Instruction) {
	p.program = append([]instr.Instruction(nil), instructions...)
	p.sched.Reset()
	p.sched.UploadProgram(p.program)
}

// Reset applies any staged Configure call, rebuilds the scheduler, and
// reloads the current program from its first instruction.
func (p *Processor) Reset() {
	p.active = p.pending.Clone()
	p.sched = buildScheduler(p.active)
	p.sched.UploadProgram(p.program)
}

// Tick advances the simulation by one cycle. It is a no-op when no
// program has been uploaded, or once the program is fully fetched and
// every station has gone FREE: a finished simulation does not keep
// burning cycle numbers.
func (p *Processor) Tick() {
	if len(p.program) == 0 || p.sched.Quiescent() {
		return
	}
	p.sched.Tick()
	if logx.Enabled() {
		logx.Log(fmt.Sprintf("cycle %d: queue=%v", p.sched.Cycle(), p.sched.QueueTexts()))
	}
}

// Quiescent reports whether the processor has nothing left to do.
func (p *Processor) Quiescent() bool {
	return p.sched.Quiescent()
}

// RunToEnd ticks up to maxCycles times, stopping early if the
// processor quiesces. It reports how many cycles actually ran and
// whether the processor quiesced (false means it hit maxCycles still
// running).
func (p *Processor) RunToEnd(maxCycles int) (cycles int, quiesced bool) {
	for cycles = 0; cycles < maxCycles; cycles++ {
		if p.sched.Quiescent() {
			return cycles, true
		}
		p.Tick()
	}
	return cycles, p.sched.Quiescent()
}

// Cycle is the number of ticks run since the last Reset.
func (p *Processor) Cycle() int {
	return p.sched.Cycle()
}

// QueueTexts is the instruction queue's display row.
func (p *Processor) QueueTexts() [queue.Capacity]string {
	return p.sched.QueueTexts()
}

// StationInfos is a display snapshot of every reservation station.
func (p *Processor) StationInfos() []scheduler.StationInfo {
	return p.sched.StationInfos()
}

// PoolOccupancy reports per-pool station usage.
func (p *Processor) PoolOccupancy() map[instr.Pool]scheduler.Occupancy {
	return p.sched.PoolOccupancy()
}
