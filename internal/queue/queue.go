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

// Package queue is the bounded FIFO of pending instructions sitting
// between program memory and the scheduler.
package queue

import "github.com/master-g/tomasulator/internal/instr"

// Capacity is the fixed queue depth, Q=3.
const Capacity = 3

// Queue is a strict program-order FIFO of at most Capacity instructions.
type Queue struct {
	slots []instr.Instruction
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Insert appends in at the tail. It is a silent no-op if the queue is
// already full; the bool return reports whether the insert happened.
func (q *Queue) Insert(in instr.Instruction) bool {
	if len(q.slots) >= Capacity {
		return false
	}
	q.slots = append(q.slots, in)
	return true
}

// Top returns the head instruction without removing it, or the None
// sentinel if the queue is empty.
func (q *Queue) Top() instr.Instruction {
	if len(q.slots) == 0 {
		return instr.None
	}
	return q.slots[0]
}

// Consume removes and returns the head instruction, or the None sentinel
// if the queue is empty.
func (q *Queue) Consume() instr.Instruction {
	if len(q.slots) == 0 {
		return instr.None
	}
	head := q.slots[0]
	q.slots = q.slots[1:]
	return head
}

// NumEmptySlots reports how many more instructions Insert will accept.
func (q *Queue) NumEmptySlots() int {
	return Capacity - len(q.slots)
}

// Len reports the number of instructions currently queued.
func (q *Queue) Len() int {
	return len(q.slots)
}

// Reset empties the queue.
func (q *Queue) Reset() {
	q.slots = nil
}

// Texts returns the display text of all Capacity slots, in FIFO order,
// with unfilled slots rendered via the Instruction None sentinel: a
// fixed-width row for a timing-table UI to draw directly.
func (q *Queue) Texts() [Capacity]string {
	var out [Capacity]string
	for i := 0; i < Capacity; i++ {
		if i < len(q.slots) {
			out[i] = q.slots[i].String()
		} else {
			out[i] = instr.None.String()
		}
	}
	return out
}
