package cpu

import "fmt"

// handler executes an instruction and returns the address of the next
// instruction along with the number of machine cycles consumed. A
// handler may mutate registers and memory, but never the program
// counter, which is committed by Step.
type handler func(c *CPU) (pc uint16, cycles uint8)

// Instruction is an entry in one of the two dispatch tables.
type Instruction struct {
	name   string
	length uint16
	fn     handler
}

// Name returns the mnemonic of the instruction, with operands named
// the way the disassembler substitutes them (d8, d16, a8, a16, r8).
func (i Instruction) Name() string {
	return i.name
}

// Length returns the encoded size of the instruction in bytes,
// including the 0xCB prefix for the extended table.
func (i Instruction) Length() uint16 {
	return i.length
}

// Valid reports whether the instruction can be executed.
func (i Instruction) Valid() bool {
	return i.fn != nil
}

// InstructionSet is the base opcode table.
var InstructionSet [256]Instruction

// InstructionSetCB is the opcode table selected by the 0xCB prefix.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction for opcode in the
// InstructionSet. Defining an opcode twice panics, so that overlapping
// generators are caught at start up.
func DefineInstruction(opcode uint8, name string, length uint16, fn handler) {
	if InstructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: opcode 0x%02X redefined as %s", opcode, name))
	}
	InstructionSet[opcode] = Instruction{
		name:   name,
		length: length,
		fn:     fn,
	}
}

// DefineInstructionCB defines the instruction for opcode in the
// InstructionSetCB. Every extended instruction is two bytes long.
func DefineInstructionCB(opcode uint8, name string, fn handler) {
	if InstructionSetCB[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: opcode 0xCB 0x%02X redefined as %s", opcode, name))
	}
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		length: 2,
		fn:     fn,
	}
}

// prefixCB selects the InstructionSetCB table for the following byte.
const prefixCB = 0xCB

var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", 1, func(c *CPU) (uint16, uint8) {
		return c.next(1, 1)
	})
	DefineInstruction(0x10, "STOP", 2, func(c *CPU) (uint16, uint8) {
		c.halted = true
		return c.next(2, 1)
	})
	DefineInstruction(0x76, "HALT", 1, func(c *CPU) (uint16, uint8) {
		c.halted = true
		return c.next(1, 1)
	})
	DefineInstruction(0xF3, "DI", 1, func(c *CPU) (uint16, uint8) {
		c.ime = false
		return c.next(1, 1)
	})
	DefineInstruction(0xFB, "EI", 1, func(c *CPU) (uint16, uint8) {
		c.ime = true
		return c.next(1, 1)
	})
	DefineInstruction(0x27, "DAA", 1, func(c *CPU) (uint16, uint8) {
		c.decimalAdjust()
		return c.next(1, 1)
	})
	DefineInstruction(0x2F, "CPL", 1, func(c *CPU) (uint16, uint8) {
		c.complement()
		return c.next(1, 1)
	})
	DefineInstruction(0x37, "SCF", 1, func(c *CPU) (uint16, uint8) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
		return c.next(1, 1)
	})
	DefineInstruction(0x3F, "CCF", 1, func(c *CPU) (uint16, uint8) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
		return c.next(1, 1)
	})

	// entries without a handler report an invalid opcode
	InstructionSet[prefixCB] = Instruction{name: "PREFIX CB", length: 1}
	for _, opcode := range disallowedOpcodes {
		InstructionSet[opcode] = Instruction{name: fmt.Sprintf("ILLEGAL_%02X", opcode), length: 1}
	}
}
