package cpu

// add adds n (and the carry flag, for ADC) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	a := c.a()
	var carryIn uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(n) + uint16(carryIn)

	c.setFlags(uint8(sum) == 0, false, a&0xF+n&0xF+carryIn > 0xF, sum > 0xFF)
	c.setA(uint8(sum))
}

// sub subtracts n (and the carry flag, for SBC) from the A Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	c.setA(c.subtract(n, withCarry))
}

// compare compares n to the A Register. It is a subtraction whose
// result is discarded.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

func (c *CPU) subtract(n uint8, withCarry bool) uint8 {
	a := c.a()
	var carryIn uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	diff := a - n - carryIn

	c.setFlags(diff == 0, true, a&0xF < n&0xF+carryIn, uint16(a) < uint16(n)+uint16(carryIn))
	return diff
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// addHL adds n to the HL RegisterPair. The half carry is taken from
// bit 11, as the operands are 16 bits wide.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)

	c.setFlags(c.isFlagSet(FlagZero), false, hl&0xFFF+n&0xFFF > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP offset by the signed immediate e. The low byte
// is added as an unsigned 8-bit addition, which provides the flags,
// and the high byte is then adjusted for the carry and sign of e.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	sp := c.SP.Uint16()
	low := uint16(uint8(sp)) + uint16(e)
	carry := low > 0xFF
	high := uint8(sp >> 8)

	switch negative := e&0x80 != 0; {
	case carry && !negative:
		high++
	case !carry && negative:
		high--
	}

	c.setFlags(false, false, uint8(sp)&0xF+e&0xF > 0xF, carry)
	return uint16(high)<<8 | uint16(uint8(low))
}

// decimalAdjust corrects the A Register after a BCD addition or
// subtraction, using the flags left behind by it. Both corrections are
// decided from A as it was before adjusting.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if a correction of 0x60 was applied, never reset.
func (c *CPU) decimalAdjust() {
	a := c.a()
	carry := c.isFlagSet(FlagCarry)
	subtract := c.isFlagSet(FlagSubtract)

	if subtract {
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
		if carry {
			a -= 0x60
		}
	} else {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	}

	c.setA(a)
	c.setFlags(a == 0, subtract, false, carry)
}
