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

// Package uiprefs persists presentation-layer preferences the core
// never reads: color theme, whether the queue pane is shown, and the
// last configuration file the user loaded. None of it feeds back into
// the simulator.
package uiprefs

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Prefs is the on-disk preferences document.
type Prefs struct {
	Theme          string `toml:"theme"`
	ShowQueuePane  bool   `toml:"show_queue_pane"`
	LastConfigPath string `toml:"last_config_path"`
}

// Default returns the preferences a fresh install starts with.
func Default() *Prefs {
	return &Prefs{Theme: "dark", ShowQueuePane: true}
}

// Save writes p to path as TOML.
func Save(p *Prefs, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}

// Load reads preferences previously written by Save. A missing file is
// not an error: it returns Default so a first run has sane preferences.
func Load(path string) (*Prefs, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	var p Prefs
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
