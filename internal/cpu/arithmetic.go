package cpu

import (
	"fmt"

	"github.com/thelolagemann/tomboy/internal/types"
)

// aluOperation is one of the eight accumulator operations encoded by
// bits 3-5 of opcodes 0x80 - 0xBF and 0xC6 - 0xFE.
type aluOperation struct {
	name string
	fn   func(c *CPU, n uint8)
}

var aluOperations = [8]aluOperation{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

// generateArithmeticInstructions defines the accumulator operations
// against every register, (HL), and an immediate.
func generateArithmeticInstructions() {
	for i, op := range aluOperations {
		op := op
		for r := types.B; r <= types.A; r++ {
			r := r
			cycles := memoryCycles(1, r)
			DefineInstruction(0x80|uint8(i)<<3|uint8(r), fmt.Sprintf("%s %s", op.name, r), 1, func(c *CPU) (uint16, uint8) {
				op.fn(c, c.operand(r))
				return c.next(1, cycles)
			})
		}

		// 0xC6, 0xCE, ... 0xFE - op d8
		DefineInstruction(0xC6|uint8(i)<<3, fmt.Sprintf("%s d8", op.name), 2, func(c *CPU) (uint16, uint8) {
			op.fn(c, c.readOperand())
			return c.next(2, 2)
		})
	}
}

// generateIncrementInstructions defines INC r and DEC r, which cost
// two extra cycles on (HL) for the read and the write.
func generateIncrementInstructions() {
	for r := types.B; r <= types.A; r++ {
		r := r
		var cycles uint8 = 1
		if r == types.HLIndirect {
			cycles = 3
		}
		DefineInstruction(0x04|uint8(r)<<3, fmt.Sprintf("INC %s", r), 1, func(c *CPU) (uint16, uint8) {
			c.setOperand(r, c.increment(c.operand(r)))
			return c.next(1, cycles)
		})
		DefineInstruction(0x05|uint8(r)<<3, fmt.Sprintf("DEC %s", r), 1, func(c *CPU) (uint16, uint8) {
			c.setOperand(r, c.decrement(c.operand(r)))
			return c.next(1, cycles)
		})
	}
}

// generate16BitArithmeticInstructions defines INC rr, DEC rr and
// ADD HL, rr. None of the increments touch the flags.
func generate16BitArithmeticInstructions() {
	for i, p := range []types.Pair{types.BC, types.DE, types.HL, types.SP} {
		p := p
		DefineInstruction(0x03|uint8(i)<<4, fmt.Sprintf("INC %s", p), 1, func(c *CPU) (uint16, uint8) {
			c.Pair(p).Inc()
			return c.next(1, 2)
		})
		DefineInstruction(0x0B|uint8(i)<<4, fmt.Sprintf("DEC %s", p), 1, func(c *CPU) (uint16, uint8) {
			c.Pair(p).Dec()
			return c.next(1, 2)
		})
		DefineInstruction(0x09|uint8(i)<<4, fmt.Sprintf("ADD HL, %s", p), 1, func(c *CPU) (uint16, uint8) {
			c.addHL(c.Pair(p).Uint16())
			return c.next(1, 2)
		})
	}
}

func init() {
	generateArithmeticInstructions()
	generateIncrementInstructions()
	generate16BitArithmeticInstructions()

	DefineInstruction(0xE8, "ADD SP, r8", 2, func(c *CPU) (uint16, uint8) {
		c.SP.SetUint16(c.addSPSigned(c.readOperand()))
		return c.next(2, 4)
	})
}
