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

// Package config holds the live, editable processor configuration: the
// scheduling algorithm, per-pool station counts, and per-pool
// latencies. Every setter validates its own input and silently keeps
// the previous value on failure, matching a UI that wants to stay live
// while the user types.
package config

import "github.com/master-g/tomasulator/internal/algo"

// MaxPoolSize is the upper bound on any one pool's station count.
const MaxPoolSize = 10

// Config is a mutable, always-valid snapshot. The zero value is not
// valid; use Default.
type Config struct {
	algorithm algo.Algorithm

	addSubStations    int
	mulDivStations    int
	loadStoreStations int

	addSubLatency    int
	mulDivLatency    int
	loadStoreLatency int
}

// Default returns the stock configuration: pool sizes 3/2/4, latencies
// 3/7/1, Tomasulo.
func Default() *Config {
	return &Config{
		algorithm:         algo.Tomasulo,
		addSubStations:    3,
		mulDivStations:    2,
		loadStoreStations: 4,
		addSubLatency:     3,
		mulDivLatency:     7,
		loadStoreLatency:  1,
	}
}

func (c *Config) Algorithm() algo.Algorithm { return c.algorithm }

// SetAlgorithm changes the scheduling algorithm. It always succeeds;
// the bool return keeps the setter family uniform.
func (c *Config) SetAlgorithm(a algo.Algorithm) bool {
	c.algorithm = a
	return true
}

func (c *Config) AddSubStations() int    { return c.addSubStations }
func (c *Config) MulDivStations() int    { return c.mulDivStations }
func (c *Config) LoadStoreStations() int { return c.loadStoreStations }

func (c *Config) AddSubLatency() int    { return c.addSubLatency }
func (c *Config) MulDivLatency() int    { return c.mulDivLatency }
func (c *Config) LoadStoreLatency() int { return c.loadStoreLatency }

// SetAddSubStations, SetMulDivStations and SetLoadStoreStations
// validate n is in (0, MaxPoolSize] before accepting it. An invalid n
// leaves the field untouched and returns false.
func (c *Config) SetAddSubStations(n int) bool {
	if !validPoolSize(n) {
		return false
	}
	c.addSubStations = n
	return true
}

func (c *Config) SetMulDivStations(n int) bool {
	if !validPoolSize(n) {
		return false
	}
	c.mulDivStations = n
	return true
}

func (c *Config) SetLoadStoreStations(n int) bool {
	if !validPoolSize(n) {
		return false
	}
	c.loadStoreStations = n
	return true
}

// SetAddSubLatency, SetMulDivLatency and SetLoadStoreLatency validate n
// is strictly positive before accepting it.
func (c *Config) SetAddSubLatency(n int) bool {
	if !validLatency(n) {
		return false
	}
	c.addSubLatency = n
	return true
}

func (c *Config) SetMulDivLatency(n int) bool {
	if !validLatency(n) {
		return false
	}
	c.mulDivLatency = n
	return true
}

func (c *Config) SetLoadStoreLatency(n int) bool {
	if !validLatency(n) {
		return false
	}
	c.loadStoreLatency = n
	return true
}

func validPoolSize(n int) bool {
	return n > 0 && n <= MaxPoolSize
}

func validLatency(n int) bool {
	return n > 0
}

// Clone returns an independent copy, so a UI can stage edits against a
// scratch copy and commit them only once the user resets.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
