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

// tomasulator-tui is a read-only observer on top of internal/processor: it
// polls core state once per step and renders it into termui panes. It never
// feeds anything back into the scheduler besides "advance one cycle" and
// "reset".
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/master-g/tomasulator/internal/assembler"
	"github.com/master-g/tomasulator/internal/config"
	"github.com/master-g/tomasulator/internal/instr"
	"github.com/master-g/tomasulator/internal/processor"
	"github.com/master-g/tomasulator/internal/tablefmt"
)

var (
	proc *processor.Processor
	cfg  *config.Config

	paragraphQueue  *widgets.Paragraph
	paragraphAddSub *widgets.Paragraph
	paragraphMulDiv *widgets.Paragraph
	paragraphLdSt   *widgets.Paragraph
	paragraphTable  *widgets.Paragraph
	paragraphTips   *widgets.Paragraph

	table *tablefmt.Table
)

func renderQueue(p *widgets.Paragraph) {
	p.Text = fmt.Sprintf("cycle: %d\nqueue: %s", proc.Cycle(), tablefmt.FormatQueue(proc.QueueTexts()))
}

func renderPool(p *widgets.Paragraph, pool instr.Pool) {
	occ := proc.PoolOccupancy()[pool]
	sb := &strings.Builder{}
	sb.WriteString(fmt.Sprintf("busy: %d/%d\n", occ.Busy, occ.Total))
	for _, st := range proc.StationInfos() {
		if st.Pool != pool {
			continue
		}
		if !st.Busy {
			sb.WriteString("  [free]\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("  [%s](fg:cyan) %s %s\n", st.Glyph, st.Op, st.RawText))
	}
	p.Text = sb.String()
}

func renderTable(p *widgets.Paragraph) {
	p.Text = table.Render()
}

func renderTips(p *widgets.Paragraph) {
	p.Text = "SPACE = step one cycle    R = reset    Q = quit"
}

func draw() {
	renderQueue(paragraphQueue)
	renderPool(paragraphAddSub, instr.PoolAddSub)
	renderPool(paragraphMulDiv, instr.PoolMulDiv)
	renderPool(paragraphLdSt, instr.PoolLoadStore)
	renderTable(paragraphTable)
	renderTips(paragraphTips)

	ui.Render(paragraphQueue, paragraphAddSub, paragraphMulDiv, paragraphLdSt, paragraphTable, paragraphTips)
}

func step() {
	if proc.Quiescent() {
		return
	}
	proc.Tick()
	var cells []tablefmt.Cell
	for _, st := range proc.StationInfos() {
		if !st.Busy {
			continue
		}
		cells = append(cells, tablefmt.Cell{InstructionID: st.IssueNumber, Text: st.RawText, Glyph: st.Glyph})
	}
	table.Record(proc.Cycle(), cells)
}

func reset() {
	proc.Reset()
	table = tablefmt.New()
}

func initLayout() {
	paragraphQueue = widgets.NewParagraph()
	paragraphQueue.Title = "Queue"
	paragraphQueue.SetRect(0, 0, 60, 4)

	paragraphAddSub = widgets.NewParagraph()
	paragraphAddSub.Title = "add_sub"
	paragraphAddSub.SetRect(0, 4, 30, 14)

	paragraphMulDiv = widgets.NewParagraph()
	paragraphMulDiv.Title = "mul_div"
	paragraphMulDiv.SetRect(30, 4, 60, 14)

	paragraphLdSt = widgets.NewParagraph()
	paragraphLdSt.Title = "load_store"
	paragraphLdSt.SetRect(60, 0, 90, 14)

	paragraphTable = widgets.NewParagraph()
	paragraphTable.Title = "Timing table"
	paragraphTable.SetRect(0, 14, 90, 34)

	paragraphTips = widgets.NewParagraph()
	paragraphTips.Title = "Tips"
	paragraphTips.SetRect(0, 34, 90, 37)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: tomasulator-tui <program-file> [config-file]")
		os.Exit(1)
	}

	text, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("cannot read program: %v", err)
	}
	ok, offendingLine, instructions := assembler.Assemble(string(text))
	if !ok {
		log.Fatalf("assembly error at line %d", offendingLine)
	}

	cfg = config.Default()
	if len(os.Args) > 2 {
		loaded, err := config.Load(os.Args[2])
		if err != nil {
			log.Fatalf("cannot load config: %v", err)
		}
		cfg = loaded
	}

	proc = processor.New(cfg)
	proc.UploadProgram(instructions)
	table = tablefmt.New()

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	initLayout()
	draw()

	for e := range ui.PollEvents() {
		if e.Type != ui.KeyboardEvent {
			continue
		}
		switch e.ID {
		case "q", "Q", "<C-c>":
			return
		case "<Space>":
			step()
		case "r", "R":
			reset()
		}
		draw()
	}
}
