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

package instr

// Memory is the ordered, read-only-after-upload program store. It is
// addressed by a monotonic instruction pointer starting at zero.
type Memory struct {
	instructions []Instruction
}

// NewMemory returns an empty program store.
func NewMemory() *Memory {
	return &Memory{}
}

// Upload replaces the program in its entirety.
func (m *Memory) Upload(instructions []Instruction) {
	m.instructions = append([]Instruction(nil), instructions...)
}

// At returns the instruction at i, or the None sentinel if i is past the
// end of the program.
func (m *Memory) At(i int) Instruction {
	if i < 0 || i >= len(m.instructions) {
		return None
	}
	return m.instructions[i]
}

// Len reports how many instructions are loaded.
func (m *Memory) Len() int {
	return len(m.instructions)
}
