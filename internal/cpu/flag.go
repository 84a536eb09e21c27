package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.AF.SetLow(c.AF.Low() &^ (1 << flag))
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.AF.SetLow(c.AF.Low() | 1<<flag)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.AF.Low()&(1<<flag) != 0
}

// isFlagsSet returns true if all the given flags are set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// setFlags replaces all four flags at once. The low nibble of F is
// always left clear.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= 1 << FlagZero
	}
	if subtract {
		f |= 1 << FlagSubtract
	}
	if halfCarry {
		f |= 1 << FlagHalfCarry
	}
	if carry {
		f |= 1 << FlagCarry
	}
	c.AF.SetLow(f)
}

// condition is the cc field of a conditional jump, call or return.
type condition uint8

const (
	conditionNZ condition = iota
	conditionZ
	conditionNC
	conditionC
)

var conditionNames = [...]string{"NZ", "Z", "NC", "C"}

func (cc condition) String() string {
	return conditionNames[cc&3]
}

// test evaluates cc against the current flags.
func (c *CPU) test(cc condition) bool {
	switch cc {
	case conditionNZ:
		return !c.isFlagSet(FlagZero)
	case conditionZ:
		return c.isFlagSet(FlagZero)
	case conditionNC:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}
