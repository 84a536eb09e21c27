package cpu

import (
	"fmt"

	"github.com/thelolagemann/tomboy/internal/types"
)

// memoryCycles returns cycles, plus one for each operand in memory.
func memoryCycles(cycles uint8, operands ...types.Reg8) uint8 {
	for _, r := range operands {
		if r == types.HLIndirect {
			cycles++
		}
	}
	return cycles
}

// generateLoadRegisterToRegisterInstructions defines LD r, r' for
// 0x40 - 0x7F, where 0x76 would be LD (HL), (HL) and is HALT instead.
func generateLoadRegisterToRegisterInstructions() {
	for dst := types.B; dst <= types.A; dst++ {
		for src := types.B; src <= types.A; src++ {
			if dst == types.HLIndirect && src == types.HLIndirect {
				continue
			}
			dst, src := dst, src
			cycles := memoryCycles(1, dst, src)
			DefineInstruction(0x40|uint8(dst)<<3|uint8(src), fmt.Sprintf("LD %s, %s", dst, src), 1, func(c *CPU) (uint16, uint8) {
				c.setOperand(dst, c.operand(src))
				return c.next(1, cycles)
			})
		}
	}
}

// generateLoadImmediateInstructions defines LD r, d8 and LD rr, d16.
func generateLoadImmediateInstructions() {
	for r := types.B; r <= types.A; r++ {
		r := r
		cycles := memoryCycles(2, r)
		DefineInstruction(0x06|uint8(r)<<3, fmt.Sprintf("LD %s, d8", r), 2, func(c *CPU) (uint16, uint8) {
			c.setOperand(r, c.readOperand())
			return c.next(2, cycles)
		})
	}

	for i, p := range []types.Pair{types.BC, types.DE, types.HL, types.SP} {
		p := p
		DefineInstruction(0x01|uint8(i)<<4, fmt.Sprintf("LD %s, d16", p), 3, func(c *CPU) (uint16, uint8) {
			c.Pair(p).SetUint16(c.readOperand16())
			return c.next(3, 3)
		})
	}
}

// indirectAddress is a register indirect operand of the accumulator
// loads. addr applies the HL post increment or decrement.
type indirectAddress struct {
	name string
	addr func(c *CPU) uint16
}

var indirectAddresses = [4]indirectAddress{
	{"(BC)", func(c *CPU) uint16 { return c.BC.Uint16() }},
	{"(DE)", func(c *CPU) uint16 { return c.DE.Uint16() }},
	{"(HL+)", func(c *CPU) uint16 {
		hl := c.HL.Uint16()
		c.HL.Inc()
		return hl
	}},
	{"(HL-)", func(c *CPU) uint16 {
		hl := c.HL.Uint16()
		c.HL.Dec()
		return hl
	}},
}

func init() {
	generateLoadRegisterToRegisterInstructions()
	generateLoadImmediateInstructions()

	for i, ind := range indirectAddresses {
		ind := ind
		// 0x02, 0x12, 0x22, 0x32 - LD (rr), A
		DefineInstruction(0x02|uint8(i)<<4, fmt.Sprintf("LD %s, A", ind.name), 1, func(c *CPU) (uint16, uint8) {
			c.bus.Write(ind.addr(c), c.a())
			return c.next(1, 2)
		})
		// 0x0A, 0x1A, 0x2A, 0x3A - LD A, (rr)
		DefineInstruction(0x0A|uint8(i)<<4, fmt.Sprintf("LD A, %s", ind.name), 1, func(c *CPU) (uint16, uint8) {
			c.setA(c.bus.Read(ind.addr(c)))
			return c.next(1, 2)
		})
	}

	DefineInstruction(0xE0, "LDH (a8), A", 2, func(c *CPU) (uint16, uint8) {
		c.bus.WriteIO(c.readOperand(), c.a())
		return c.next(2, 3)
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 2, func(c *CPU) (uint16, uint8) {
		c.setA(c.bus.ReadIO(c.readOperand()))
		return c.next(2, 3)
	})
	DefineInstruction(0xE2, "LD (C), A", 1, func(c *CPU) (uint16, uint8) {
		c.bus.WriteIO(c.BC.Low(), c.a())
		return c.next(1, 2)
	})
	DefineInstruction(0xF2, "LD A, (C)", 1, func(c *CPU) (uint16, uint8) {
		c.setA(c.bus.ReadIO(c.BC.Low()))
		return c.next(1, 2)
	})
	DefineInstruction(0xEA, "LD (a16), A", 3, func(c *CPU) (uint16, uint8) {
		c.bus.Write(c.readOperand16(), c.a())
		return c.next(3, 4)
	})
	DefineInstruction(0xFA, "LD A, (a16)", 3, func(c *CPU) (uint16, uint8) {
		c.setA(c.bus.Read(c.readOperand16()))
		return c.next(3, 4)
	})
	DefineInstruction(0x08, "LD (a16), SP", 3, func(c *CPU) (uint16, uint8) {
		address := c.readOperand16()
		c.bus.Write(address, c.SP.Low())
		c.bus.Write(address+1, c.SP.High())
		return c.next(3, 5)
	})
	DefineInstruction(0xF9, "LD SP, HL", 1, func(c *CPU) (uint16, uint8) {
		c.SP.SetUint16(c.HL.Uint16())
		return c.next(1, 2)
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", 2, func(c *CPU) (uint16, uint8) {
		c.HL.SetUint16(c.addSPSigned(c.readOperand()))
		return c.next(2, 3)
	})
}
