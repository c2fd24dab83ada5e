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

package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/master-g/tomasulator/internal/algo"
)

// document is the on-disk shape. toml needs exported fields to
// (un)marshal; Config keeps its fields private behind validating
// setters, so document is the bridge between the two.
type document struct {
	Algorithm string `toml:"algorithm"`

	AddSubStations    int `toml:"add_sub_stations"`
	MulDivStations    int `toml:"mul_div_stations"`
	LoadStoreStations int `toml:"load_store_stations"`

	AddSubLatency    int `toml:"add_sub_latency"`
	MulDivLatency    int `toml:"mul_div_latency"`
	LoadStoreLatency int `toml:"load_store_latency"`
}

func toDocument(c *Config) document {
	return document{
		Algorithm:         c.algorithm.String(),
		AddSubStations:    c.addSubStations,
		MulDivStations:    c.mulDivStations,
		LoadStoreStations: c.loadStoreStations,
		AddSubLatency:     c.addSubLatency,
		MulDivLatency:     c.mulDivLatency,
		LoadStoreLatency:  c.loadStoreLatency,
	}
}

func (d document) toConfig() *Config {
	c := Default()
	if d.Algorithm == algo.Scoreboard.String() {
		c.SetAlgorithm(algo.Scoreboard)
	} else {
		c.SetAlgorithm(algo.Tomasulo)
	}
	c.SetAddSubStations(d.AddSubStations)
	c.SetMulDivStations(d.MulDivStations)
	c.SetLoadStoreStations(d.LoadStoreStations)
	c.SetAddSubLatency(d.AddSubLatency)
	c.SetMulDivLatency(d.MulDivLatency)
	c.SetLoadStoreLatency(d.LoadStoreLatency)
	return c
}

// Save writes c to path as TOML.
func Save(c *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(toDocument(c))
}

// Load reads a Config previously written by Save. Fields invalid
// against the current rules (e.g. edited by hand to an out-of-range
// pool size) fall back to Default's value for that field, per the
// same "keep the previous value" rule the live setters use.
func Load(path string) (*Config, error) {
	var d document
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return nil, err
	}
	return d.toConfig(), nil
}
