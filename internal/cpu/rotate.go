package cpu

import "github.com/thelolagemann/tomboy/internal/types"

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & types.Bit7
	computed := n<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry == types.Bit7)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & types.Bit0
	computed := n>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry == types.Bit0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n << 1
	if c.isFlagSet(FlagCarry) {
		computed |= types.Bit0
	}
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied to
// the most significant bit, and the least significant bit is copied to the
// carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n >> 1
	if c.isFlagSet(FlagCarry) {
		computed |= types.Bit7
	}
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// rotateAccumulator applies rotate to the A Register. Unlike the
// extended forms, the accumulator rotates always reset the zero flag.
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.setA(rotate(c, c.a()))
	c.clearFlag(FlagZero)
}

func init() {
	DefineInstruction(0x07, "RLCA", 1, func(c *CPU) (uint16, uint8) {
		c.rotateAccumulator((*CPU).rotateLeftCarry)
		return c.next(1, 1)
	})
	DefineInstruction(0x0F, "RRCA", 1, func(c *CPU) (uint16, uint8) {
		c.rotateAccumulator((*CPU).rotateRightCarry)
		return c.next(1, 1)
	})
	DefineInstruction(0x17, "RLA", 1, func(c *CPU) (uint16, uint8) {
		c.rotateAccumulator((*CPU).rotateLeftThroughCarry)
		return c.next(1, 1)
	})
	DefineInstruction(0x1F, "RRA", 1, func(c *CPU) (uint16, uint8) {
		c.rotateAccumulator((*CPU).rotateRightThroughCarry)
		return c.next(1, 1)
	})
}
