package trace

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/tomboy/internal/types"
)

func entry(pc uint16, cycles uint8) Entry {
	regs := types.DMGABC.Registers()
	regs.PC.SetUint16(pc + 1)
	return Entry{PC: pc, Opcode: 0x00, Text: "NOP", Cycles: cycles, Registers: regs}
}

func TestEntry_String(t *testing.T) {
	assert.Equal(t,
		"PC=0100 OP=00 NOP cyc=1 A=01 F=B0 B=00 C=13 D=00 E=D8 H=01 L=4D SP=FFFE",
		entry(0x0100, 1).String())

	e := Entry{PC: 0x0150, Opcode: 0x7C, Prefixed: true, Text: "BIT 7, H", Cycles: 2}
	assert.Equal(t,
		"PC=0150 OP=CB7C BIT 7, H cyc=2 A=00 F=00 B=00 C=00 D=00 E=00 H=00 L=00 SP=0000",
		e.String())
}

func TestRecorder_Writer(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf, 0)

	require.NoError(t, r.Record(entry(0x0100, 1)))
	require.NoError(t, r.Record(entry(0x0101, 1)))

	assert.Equal(t, entry(0x0100, 1).String()+"\n"+entry(0x0101, 1).String()+"\n", buf.String())
	assert.Empty(t, r.Lines())
	assert.Equal(t, uint64(2), r.Steps())
	assert.Equal(t, uint64(2), r.Cycles())
}

func TestRecorder_Ring(t *testing.T) {
	r := NewRecorder(nil, 3)

	require.NoError(t, r.Record(entry(0x0100, 1)))
	assert.Equal(t, []string{entry(0x0100, 1).String()}, r.Lines())

	for pc := uint16(0x0101); pc < 0x0105; pc++ {
		require.NoError(t, r.Record(entry(pc, 1)))
	}

	var want []string
	for pc := uint16(0x0102); pc < 0x0105; pc++ {
		want = append(want, entry(pc, 1).String())
	}
	assert.Equal(t, want, r.Lines())

	var buf bytes.Buffer
	require.NoError(t, r.Dump(&buf))
	assert.Equal(t, fmt.Sprintln(want[0])+fmt.Sprintln(want[1])+fmt.Sprintln(want[2]), buf.String())
}

func TestRecorder_Digest(t *testing.T) {
	run := func(cycles ...uint8) uint64 {
		r := NewRecorder(nil, 0)
		for i, c := range cycles {
			require.NoError(t, r.Record(entry(0x0100+uint16(i), c)))
		}
		return r.Sum64()
	}

	assert.Equal(t, run(1, 2, 3), run(1, 2, 3))
	assert.NotEqual(t, run(1, 2, 3), run(1, 2, 4))
	assert.NotEqual(t, run(1, 2, 3), run(1, 2))
	assert.NotEqual(t, run(), run(1))
}
