package cpu

import (
	"errors"
	"fmt"
)

// ErrInvalidOpcode is matched by every InvalidOpcodeError.
var ErrInvalidOpcode = errors.New("cpu: invalid opcode")

// InvalidOpcodeError is returned by Step when the byte at the program
// counter does not decode to an instruction. The CPU state is left as
// it was before the step.
type InvalidOpcodeError struct {
	Opcode   uint8
	Prefixed bool
	PC       uint16
}

func (e *InvalidOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: invalid opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: invalid opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// Is reports whether target is ErrInvalidOpcode.
func (e *InvalidOpcodeError) Is(target error) bool {
	return target == ErrInvalidOpcode
}
