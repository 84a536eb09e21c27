package cpu

import (
	"fmt"

	"github.com/thelolagemann/tomboy/internal/types"
)

// cbOperation is one of the shift, rotate and swap operations encoded
// by the top bits of an extended opcode below 0x40.
type cbOperation struct {
	name string
	fn   func(*CPU, uint8) uint8
}

var cbOperations = [8]cbOperation{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

// cbCycles returns the cost of an extended instruction on operand r.
// Memory operands cost a read and a write, except for BIT which only
// reads.
func cbCycles(r types.Reg8, readOnly bool) uint8 {
	switch {
	case r != types.HLIndirect:
		return 2
	case readOnly:
		return 3
	default:
		return 4
	}
}

func generateShiftInstructions() {
	for i, op := range cbOperations {
		op := op
		for r := types.B; r <= types.A; r++ {
			r := r
			cycles := cbCycles(r, false)
			DefineInstructionCB(uint8(i)<<3|uint8(r), fmt.Sprintf("%s %s", op.name, r), func(c *CPU) (uint16, uint8) {
				c.setOperand(r, op.fn(c, c.operand(r)))
				return c.next(2, cycles)
			})
		}
	}
}

func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		b := b
		for r := types.B; r <= types.A; r++ {
			r := r

			// 0x40 - 0x7F - BIT b, r
			bitCycles := cbCycles(r, true)
			DefineInstructionCB(0x40|b<<3|uint8(r), fmt.Sprintf("BIT %d, %s", b, r), func(c *CPU) (uint16, uint8) {
				c.testBit(c.operand(r), b)
				return c.next(2, bitCycles)
			})

			cycles := cbCycles(r, false)

			// 0x80 - 0xBF - RES b, r
			DefineInstructionCB(0x80|b<<3|uint8(r), fmt.Sprintf("RES %d, %s", b, r), func(c *CPU) (uint16, uint8) {
				c.setOperand(r, types.ResetBit(c.operand(r), b))
				return c.next(2, cycles)
			})

			// 0xC0 - 0xFF - SET b, r
			DefineInstructionCB(0xC0|b<<3|uint8(r), fmt.Sprintf("SET %d, %s", b, r), func(c *CPU) (uint16, uint8) {
				c.setOperand(r, types.SetBit(c.operand(r), b))
				return c.next(2, cycles)
			})
		}
	}
}

func init() {
	generateShiftInstructions()
	generateBitInstructions()
}
