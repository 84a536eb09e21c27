package interrupts

import (
	"github.com/thelolagemann/tomboy/internal/cpu"
	"github.com/thelolagemann/tomboy/internal/mmu"
	"github.com/thelolagemann/tomboy/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag uint8 = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag uint8 = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested
	// when TIMA overflows.
	TimerFlag uint8 = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3), requested
	// when a serial transfer completes.
	SerialFlag uint8 = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4).
	JoypadFlag uint8 = types.Bit4
)

// Service is the interrupt service, used to request interrupts and
// to dispatch them to the CPU.
//
// When an interrupt is requested, the corresponding bit in the Flag
// register (types.IF) is set. When an interrupt is requested and
// enabled (types.IE), a halted CPU wakes up, and if the IME is set the
// CPU jumps to the interrupt vector, clearing the requested bit.
//
// Both registers live in the address space, so programs may request
// and acknowledge interrupts by writing them directly.
type Service struct {
	bus *mmu.MMU
}

// NewService returns a new Service backed by the IF and IE registers
// of m.
func NewService(m *mmu.MMU) *Service {
	m.ReserveAddress(types.IF, func(v uint8) uint8 {
		return v | 0xE0 // the upper 3 bits are always set
	})
	m.Write(types.IF, 0)

	return &Service{bus: m}
}

// Flag returns the requested interrupts.
func (s *Service) Flag() uint8 {
	return s.bus.Read(types.IF) & 0x1F
}

// Enable returns the enabled interrupts.
func (s *Service) Enable() uint8 {
	return s.bus.Read(types.IE)
}

// Request requests the specified interrupt, by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.bus.Write(types.IF, s.Flag()|flag)
}

// HasInterrupts returns true if there are any interrupts that are
// requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable()&s.Flag() != 0
}

// Vector returns the vector of the highest priority pending
// interrupt, clearing its bit in the Flag register, or 0 if none is
// pending.
func (s *Service) Vector() uint16 {
	pending := s.Enable() & s.Flag()
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)
		if pending&flag != 0 {
			s.bus.Write(types.IF, s.Flag()&^flag)
			return uint16(0x0040 + uint16(i)*8)
		}
	}

	return 0
}

// Service runs between two instructions. A pending interrupt wakes a
// halted CPU, and is dispatched when the IME is set. It returns the
// cycles taken by the dispatch, 0 if nothing was dispatched.
func (s *Service) Service(c *cpu.CPU) uint8 {
	if !s.HasInterrupts() {
		return 0
	}
	c.SetHalted(false)
	if !c.IME() {
		return 0
	}
	return c.Interrupt(s.Vector())
}
