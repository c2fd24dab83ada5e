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

// Package algo names the two dynamic-scheduling disciplines the core can
// run: Tomasulo (register renaming via reservation stations) and
// Scoreboard (stall on hazard, no renaming). It exists as its own leaf
// package because station, cdb, scheduler and config all need the
// selector without importing one another.
package algo

// Algorithm selects the scheduling discipline a Scheduler runs.
type Algorithm int

const (
	// Tomasulo renames destination registers onto reservation stations
	// and resolves RAW hazards via the common data bus.
	Tomasulo Algorithm = iota
	// Scoreboard stalls issue on WAW and write-back on WAR instead of
	// renaming.
	Scoreboard
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Tomasulo:
		return "Tomasulo"
	case Scoreboard:
		return "Scoreboard"
	default:
		return "Unknown"
	}
}
