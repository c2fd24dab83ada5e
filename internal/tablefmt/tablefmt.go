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

// Package tablefmt renders the cycle-by-cycle timing table both
// tomasulator binaries print: one row per instruction that has ever
// occupied a station, one column per cycle, each cell holding that
// instruction's state glyph for that cycle.
package tablefmt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/master-g/tomasulator/internal/queue"
)

// cellWidth is the fixed column width every cycle column and the row
// label column pad to.
const cellWidth = 4

// Cell is one instruction's observed glyph during a single cycle, as
// reported by the scheduler's per-cycle station snapshot.
type Cell struct {
	InstructionID int
	Text          string
	Glyph         string
}

// Table accumulates cell observations cycle by cycle and renders them
// as a plain-text grid. The zero value is ready to use.
type Table struct {
	order  []int
	labels map[int]string
	glyphs map[int]map[int]string
	last   int
}

// New returns an empty table.
func New() *Table {
	return &Table{
		labels: make(map[int]string),
		glyphs: make(map[int]map[int]string),
	}
}

// Record stores cells observed during cycle. Calling Record with an
// instruction id for the first time adds a new row, in first-seen
// order; later calls only fill in that row's cell for this cycle.
func (t *Table) Record(cycle int, cells []Cell) {
	if t.labels == nil {
		t.labels = make(map[int]string)
		t.glyphs = make(map[int]map[int]string)
	}
	if cycle > t.last {
		t.last = cycle
	}
	for _, c := range cells {
		if _, seen := t.labels[c.InstructionID]; !seen {
			t.order = append(t.order, c.InstructionID)
			t.labels[c.InstructionID] = c.Text
			t.glyphs[c.InstructionID] = make(map[int]string)
		}
		t.glyphs[c.InstructionID][cycle] = c.Glyph
	}
}

// Render formats the accumulated observations as a grid: one header
// row of cycle numbers, then one row per instruction in the order each
// was first recorded.
func (t *Table) Render() string {
	sb := &strings.Builder{}

	pad(sb, "instruction", cellWidth*2)
	for cycle := 1; cycle <= t.last; cycle++ {
		pad(sb, strconv.Itoa(cycle), cellWidth)
	}
	sb.WriteRune('\n')

	for _, id := range t.order {
		pad(sb, t.labels[id], cellWidth*2)
		for cycle := 1; cycle <= t.last; cycle++ {
			pad(sb, t.glyphs[id][cycle], cellWidth)
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}

// pad writes s to sb, right-padded with spaces to at least width
// runes, or followed by a single space if s is already that long.
func pad(sb *strings.Builder, s string, width int) {
	sb.WriteString(s)
	runes := utf8.RuneCountInString(s)
	if runes >= width {
		sb.WriteRune(' ')
		return
	}
	for n := runes; n < width; n++ {
		sb.WriteRune(' ')
	}
}

// FormatQueue renders the three queue slots as a single line, used by
// the TUI's queue pane.
func FormatQueue(slots [queue.Capacity]string) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		if s == "" {
			s = "-"
		}
		parts[i] = fmt.Sprintf("[%s]", s)
	}
	return strings.Join(parts, " ")
}
