package cpu

import (
	"fmt"
)

// jumpRelative returns the target of a relative jump. The offset is
// relative to the address following the 2 byte instruction.
func (c *CPU) jumpRelative() uint16 {
	return c.PC.Uint16() + 2 + uint16(int8(c.readOperand()))
}

// call pushes the address of the instruction following the CALL and
// returns the target.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(length uint16, address uint16) uint16 {
	c.pushStack(c.PC.Uint16() + length)
	return address
}

func init() {
	DefineInstruction(0xC3, "JP a16", 3, func(c *CPU) (uint16, uint8) {
		return c.readOperand16(), 4
	})
	DefineInstruction(0xE9, "JP HL", 1, func(c *CPU) (uint16, uint8) {
		return c.HL.Uint16(), 1
	})
	DefineInstruction(0x18, "JR r8", 2, func(c *CPU) (uint16, uint8) {
		return c.jumpRelative(), 3
	})
	DefineInstruction(0xCD, "CALL a16", 3, func(c *CPU) (uint16, uint8) {
		return c.call(3, c.readOperand16()), 6
	})
	DefineInstruction(0xC9, "RET", 1, func(c *CPU) (uint16, uint8) {
		return c.popStack(), 4
	})
	DefineInstruction(0xD9, "RETI", 1, func(c *CPU) (uint16, uint8) {
		c.ime = true
		return c.popStack(), 4
	})

	for cc := conditionNZ; cc <= conditionC; cc++ {
		cc := cc

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20|uint8(cc)<<3, fmt.Sprintf("JR %s, r8", cc), 2, func(c *CPU) (uint16, uint8) {
			if c.test(cc) {
				return c.jumpRelative(), 3
			}
			return c.next(2, 2)
		})
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2|uint8(cc)<<3, fmt.Sprintf("JP %s, a16", cc), 3, func(c *CPU) (uint16, uint8) {
			if c.test(cc) {
				return c.readOperand16(), 4
			}
			return c.next(3, 3)
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4|uint8(cc)<<3, fmt.Sprintf("CALL %s, a16", cc), 3, func(c *CPU) (uint16, uint8) {
			if c.test(cc) {
				return c.call(3, c.readOperand16()), 6
			}
			return c.next(3, 3)
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0|uint8(cc)<<3, fmt.Sprintf("RET %s", cc), 1, func(c *CPU) (uint16, uint8) {
			if c.test(cc) {
				return c.popStack(), 5
			}
			return c.next(1, 2)
		})
	}

	// 0xC7, 0xCF, ... 0xFF - RST n
	for n := uint8(0); n < 8; n++ {
		vector := uint16(n) << 3
		DefineInstruction(0xC7|n<<3, fmt.Sprintf("RST %02XH", vector), 1, func(c *CPU) (uint16, uint8) {
			return c.call(1, vector), 4
		})
	}
}
