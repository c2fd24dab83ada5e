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

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/urfave/cli.v2"

	"github.com/master-g/tomasulator/internal/algo"
	"github.com/master-g/tomasulator/internal/assembler"
	"github.com/master-g/tomasulator/internal/config"
	"github.com/master-g/tomasulator/internal/logx"
	"github.com/master-g/tomasulator/internal/processor"
	"github.com/master-g/tomasulator/internal/tablefmt"
)

type stderrLogger struct{}

func (stderrLogger) Log(msg string) { fmt.Fprintln(os.Stderr, msg) }

func main() {
	app := &cli.App{
		Name:    "tomasulator",
		Usage:   "run a short FP/load-store program through the Tomasulo or Scoreboard scheduler",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "program",
				Aliases: []string{"p"},
				Usage:   "path to the program source file",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a TOML processor configuration file",
			},
			&cli.StringFlag{
				Name:  "algo",
				Usage: "scheduling algorithm: tomasulo or scoreboard",
				Value: "tomasulo",
			},
			&cli.IntFlag{
				Name:  "add-sub-stations",
				Usage: "add/sub reservation station count",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  "mul-div-stations",
				Usage: "mul/div reservation station count",
				Value: 2,
			},
			&cli.IntFlag{
				Name:  "load-store-stations",
				Usage: "load/store reservation station count",
				Value: 4,
			},
			&cli.IntFlag{
				Name:  "add-sub-latency",
				Usage: "add/sub execution latency in cycles",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  "mul-div-latency",
				Usage: "mul/div execution latency in cycles",
				Value: 7,
			},
			&cli.IntFlag{
				Name:  "load-store-latency",
				Usage: "load/store execution latency in cycles",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "max-cycles",
				Usage: "run-to-end safety cap",
				Value: processor.DefaultMaxCycles,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log one line per cycle to stderr",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	programPath := c.String("program")
	if programPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("a --program file is required", 86)
	}

	text, err := os.ReadFile(programPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot read program: %v", err), 1)
	}

	ok, offendingLine, instructions := assembler.Assemble(string(text))
	if !ok {
		return cli.Exit(fmt.Sprintf("assembly error at line %d", offendingLine), 1)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot load config: %v", err), 1)
	}

	if c.Bool("trace") {
		logx.SetLogger(stderrLogger{})
		logx.SetEnabled(true)
	}

	proc := processor.New(cfg)
	proc.UploadProgram(instructions)

	table := tablefmt.New()
	maxCycles := c.Int("max-cycles")
	cycles, quiesced := 0, false
	for cycles = 0; cycles < maxCycles; cycles++ {
		if proc.Quiescent() {
			quiesced = true
			break
		}
		proc.Tick()
		record(table, proc, cycles+1)
	}
	quiesced = quiesced || proc.Quiescent()

	fmt.Println(table.Render())
	fmt.Printf("ran %d cycle(s), quiesced=%v\n", cycles, quiesced)
	return nil
}

// record snapshots every non-FREE station's glyph for cycle into table.
func record(table *tablefmt.Table, proc *processor.Processor, cycle int) {
	var cells []tablefmt.Cell
	for _, st := range proc.StationInfos() {
		if !st.Busy {
			continue
		}
		cells = append(cells, tablefmt.Cell{
			InstructionID: st.IssueNumber,
			Text:          st.RawText,
			Glyph:         st.Glyph,
		})
	}
	table.Record(cycle, cells)
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}

	cfg := config.Default()
	if a := c.String("algo"); a != "" {
		if strings.EqualFold(a, algo.Scoreboard.String()) {
			cfg.SetAlgorithm(algo.Scoreboard)
		} else {
			cfg.SetAlgorithm(algo.Tomasulo)
		}
	}
	cfg.SetAddSubStations(c.Int("add-sub-stations"))
	cfg.SetMulDivStations(c.Int("mul-div-stations"))
	cfg.SetLoadStoreStations(c.Int("load-store-stations"))
	cfg.SetAddSubLatency(c.Int("add-sub-latency"))
	cfg.SetMulDivLatency(c.Int("mul-div-latency"))
	cfg.SetLoadStoreLatency(c.Int("load-store-latency"))
	return cfg, nil
}
