package types

import "fmt"

// Register represents an 8-bit half of a RegisterPair. The CPU has
// 8 of them: A, B, C, D, E, H, L, and F. The F register is special
// in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a 16-bit composite register, which is
// addressable either as a whole or as two independent 8-bit halves.
// The value is stored packed, the halves are views into it.
type RegisterPair struct {
	value uint16
}

// NewRegisterPair returns a RegisterPair holding v.
func NewRegisterPair(v uint16) RegisterPair {
	return RegisterPair{value: v}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return r.value
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	r.value = value
}

// High returns the upper byte of the pair.
func (r *RegisterPair) High() Register {
	return Register(r.value >> 8)
}

// Low returns the lower byte of the pair.
func (r *RegisterPair) Low() Register {
	return Register(r.value)
}

// SetHigh replaces the upper byte, leaving the lower byte untouched.
func (r *RegisterPair) SetHigh(v Register) {
	r.value = uint16(v)<<8 | r.value&0x00FF
}

// SetLow replaces the lower byte, leaving the upper byte untouched.
func (r *RegisterPair) SetLow(v Register) {
	r.value = r.value&0xFF00 | uint16(v)
}

// Inc increments the pair, wrapping at 0xFFFF.
func (r *RegisterPair) Inc() {
	r.value++
}

// Dec decrements the pair, wrapping at 0x0000.
func (r *RegisterPair) Dec() {
	r.value--
}

// Reg8 names one of the 8-bit operand locations used by the opcode
// encoding. The order matches the 3-bit register field of an opcode,
// where index 6 is the memory location addressed by HL.
type Reg8 uint8

const (
	B Reg8 = iota
	C
	D
	E
	H
	L
	HLIndirect
	A
	F // not encodable in an opcode
)

var reg8Names = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A", "F"}

func (r Reg8) String() string {
	if int(r) < len(reg8Names) {
		return reg8Names[r]
	}
	return fmt.Sprintf("Reg8(%d)", uint8(r))
}

// Pair names one of the composite registers.
type Pair uint8

const (
	BC Pair = iota
	DE
	HL
	SP
	AF
	PC
)

var pairNames = [...]string{"BC", "DE", "HL", "SP", "AF", "PC"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Registers represents the register file of the CPU.
type Registers struct {
	AF RegisterPair
	BC RegisterPair
	DE RegisterPair
	HL RegisterPair
	SP RegisterPair
	PC RegisterPair
}

// Pair returns a pointer to the composite register p.
func (r *Registers) Pair(p Pair) *RegisterPair {
	switch p {
	case BC:
		return &r.BC
	case DE:
		return &r.DE
	case HL:
		return &r.HL
	case SP:
		return &r.SP
	case AF:
		return &r.AF
	case PC:
		return &r.PC
	}
	panic(fmt.Sprintf("types: invalid register pair %d", p))
}

// Get returns the value of the 8-bit register reg. HLIndirect is a
// memory operand and cannot be resolved by the register file alone.
func (r *Registers) Get(reg Reg8) Register {
	switch reg {
	case B:
		return r.BC.High()
	case C:
		return r.BC.Low()
	case D:
		return r.DE.High()
	case E:
		return r.DE.Low()
	case H:
		return r.HL.High()
	case L:
		return r.HL.Low()
	case A:
		return r.AF.High()
	case F:
		return r.AF.Low()
	}
	panic(fmt.Sprintf("types: %s is not a register", reg))
}

// Set writes v to the 8-bit register reg. Writes to F keep the
// unused low nibble clear.
func (r *Registers) Set(reg Reg8, v Register) {
	switch reg {
	case B:
		r.BC.SetHigh(v)
	case C:
		r.BC.SetLow(v)
	case D:
		r.DE.SetHigh(v)
	case E:
		r.DE.SetLow(v)
	case H:
		r.HL.SetHigh(v)
	case L:
		r.HL.SetLow(v)
	case A:
		r.AF.SetHigh(v)
	case F:
		r.AF.SetLow(v & 0xF0)
	default:
		panic(fmt.Sprintf("types: %s is not a register", reg))
	}
}

// String formats the register file the way trace output expects it.
func (r Registers) String() string {
	return fmt.Sprintf("A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X SP=%04X PC=%04X",
		r.AF.High(), r.AF.Low(), r.BC.High(), r.BC.Low(), r.DE.High(), r.DE.Low(),
		r.HL.High(), r.HL.Low(), r.SP.Uint16(), r.PC.Uint16())
}
