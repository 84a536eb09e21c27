// Package trace records executed instructions. Every step can be
// written out as a line, the most recent lines are kept for dumping
// after a failure, and a digest of the machine state after each step
// lets two runs be compared without keeping their traces.
package trace

import (
	"fmt"
	"hash"
	"io"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/tomboy/internal/types"
)

// Entry describes one executed instruction. PC and Opcode are the
// values at fetch, Registers and Cycles the result of executing it.
type Entry struct {
	PC        uint16
	Opcode    uint8
	Prefixed  bool
	Text      string
	Cycles    uint8
	Registers types.Registers
}

func (e Entry) String() string {
	op := fmt.Sprintf("%02X", e.Opcode)
	if e.Prefixed {
		op = "CB" + op
	}
	r := e.Registers
	return fmt.Sprintf("PC=%04X OP=%s %s cyc=%d A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X SP=%04X",
		e.PC, op, e.Text, e.Cycles,
		r.AF.High(), r.AF.Low(), r.BC.High(), r.BC.Low(), r.DE.High(), r.DE.Low(), r.HL.High(), r.HL.Low(),
		r.SP.Uint16())
}

// Recorder collects entries. The zero value is not usable, see
// NewRecorder.
type Recorder struct {
	w io.Writer

	ring []string
	head int
	full bool

	digest hash.Hash64
	steps  uint64
	cycles uint64
}

// NewRecorder returns a Recorder writing lines to w, which may be nil,
// and keeping the last ringSize lines.
func NewRecorder(w io.Writer, ringSize int) *Recorder {
	r := &Recorder{
		w:      w,
		digest: xxhash.New(),
	}
	if ringSize > 0 {
		r.ring = make([]string, ringSize)
	}
	return r
}

// Record adds e to the trace.
func (r *Recorder) Record(e Entry) error {
	r.steps++
	r.cycles += uint64(e.Cycles)

	regs := e.Registers
	state := [...]byte{
		regs.AF.High(), regs.AF.Low(),
		regs.BC.High(), regs.BC.Low(),
		regs.DE.High(), regs.DE.Low(),
		regs.HL.High(), regs.HL.Low(),
		byte(regs.SP.Uint16() >> 8), byte(regs.SP.Uint16()),
		byte(regs.PC.Uint16() >> 8), byte(regs.PC.Uint16()),
		e.Cycles,
	}
	r.digest.Write(state[:])

	if r.w == nil && r.ring == nil {
		return nil
	}

	line := e.String()
	if r.ring != nil {
		r.ring[r.head] = line
		r.head++
		if r.head == len(r.ring) {
			r.head = 0
			r.full = true
		}
	}
	if r.w != nil {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return fmt.Errorf("trace: %w", err)
		}
	}
	return nil
}

// Lines returns the retained lines, oldest first.
func (r *Recorder) Lines() []string {
	if !r.full {
		return append([]string(nil), r.ring[:r.head]...)
	}
	lines := make([]string, 0, len(r.ring))
	lines = append(lines, r.ring[r.head:]...)
	return append(lines, r.ring[:r.head]...)
}

// Dump writes the retained lines to w.
func (r *Recorder) Dump(w io.Writer) error {
	for _, l := range r.Lines() {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// Sum64 returns the digest of every recorded state so far.
func (r *Recorder) Sum64() uint64 {
	return r.digest.Sum64()
}

// Steps returns the number of recorded entries.
func (r *Recorder) Steps() uint64 {
	return r.steps
}

// Cycles returns the total of the recorded cycle counts.
func (r *Recorder) Cycles() uint64 {
	return r.cycles
}
