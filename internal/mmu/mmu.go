// Package mmu provides the address space the CPU executes against: a
// flat 64kB store in which every address resolves to a cell. The top
// page (0xFF00 - 0xFFFF) holds the memory-mapped I/O registers, which
// share the same storage but can have write hooks reserved on them by
// the peripherals that own them.
package mmu

import (
	"errors"
	"fmt"
	"io"

	"github.com/thelolagemann/tomboy/internal/boot"
	"github.com/thelolagemann/tomboy/internal/ram"
	"github.com/thelolagemann/tomboy/internal/types"
	"github.com/thelolagemann/tomboy/pkg/log"
)

// Bus is the interface through which the CPU reads and writes memory.
// ReadIO and WriteIO address the I/O page by offset, and must be
// equivalent to Read and Write at 0xFF00 + offset.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	ReadIO(offset uint8) uint8
	WriteIO(offset uint8, value uint8)
}

// ErrImageTooLarge is returned by Load when an image would extend past
// the end of the address space.
var ErrImageTooLarge = errors.New("mmu: image does not fit in the address space")

// MMU is a flat 64kB address space.
type MMU struct {
	mem ram.RAM

	// write hooks for 0xFF00 - 0xFFFF
	reserved [0x100]func(v uint8) uint8

	// 0x0000 - 0x00FF/0x0900 - BOOT ROM (256B/2304B)
	bootROM     *boot.ROM
	bootROMDone bool

	Log log.Logger
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithBootROM maps rom over the bottom of the address space until a
// non-zero value is written to types.BDIS.
func WithBootROM(rom *boot.ROM) Opt {
	return func(m *MMU) {
		m.bootROM = rom
	}
}

// WithSerialWriter emits every byte transferred through the serial
// port to w. Transfers complete instantly, there is no link partner.
func WithSerialWriter(w io.Writer) Opt {
	return func(m *MMU) {
		m.ReserveAddress(types.SC, func(v uint8) uint8 {
			if v&types.Bit7 == 0 {
				return v
			}
			if _, err := w.Write([]byte{m.Read(types.SB)}); err != nil {
				m.Log.Errorf("mmu: serial write failed: %v", err)
			}
			return v &^ types.Bit7
		})
	}
}

// NewMMU returns a new zero-initialised MMU.
func NewMMU(opts ...Opt) *MMU {
	m := &MMU{
		mem: ram.NewRAM(0x10000),
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.bootROM != nil {
		m.Log.Debugf("mmu: mapped boot rom %s (%s)", m.bootROM.Name(), m.bootROM.Checksum())
		m.ReserveAddress(types.BDIS, func(v uint8) uint8 {
			if v != 0 && !m.bootROMDone {
				m.bootROMDone = true
				m.Log.Debugf("mmu: boot rom unmapped")
			}
			return v
		})
	}

	return m
}

// ReserveAddress installs fn as the write hook for an I/O page address.
// The value returned by fn is what gets stored. Reserving an address
// outside of the I/O page panics.
func (m *MMU) ReserveAddress(address types.HardwareAddress, fn func(v uint8) uint8) {
	if address < types.IOPage {
		panic(fmt.Sprintf("mmu: 0x%04X is not on the I/O page", address))
	}
	if prev := m.reserved[address-types.IOPage]; prev != nil {
		// chain, so multiple collaborators can watch the same register
		m.reserved[address-types.IOPage] = func(v uint8) uint8 {
			return fn(prev(v))
		}
		return
	}
	m.reserved[address-types.IOPage] = fn
}

// BootROMMapped reports whether the boot ROM still overlays memory.
func (m *MMU) BootROMMapped() bool {
	return m.bootROM != nil && !m.bootROMDone
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	if m.bootROM != nil && !m.bootROMDone && m.bootROM.Contains(address) {
		return m.bootROM.Read(address)
	}
	return m.mem.Read(address)
}

// Write writes the value to the given address, passing it through the
// address's write hook if one is reserved.
func (m *MMU) Write(address uint16, value uint8) {
	if address >= types.IOPage {
		if fn := m.reserved[address-types.IOPage]; fn != nil {
			value = fn(value)
		}
	}
	m.mem.Write(address, value)
}

// ReadIO reads the I/O register at 0xFF00 + offset.
func (m *MMU) ReadIO(offset uint8) uint8 {
	return m.Read(types.IOPage + uint16(offset))
}

// WriteIO writes the I/O register at 0xFF00 + offset.
func (m *MMU) WriteIO(offset uint8, value uint8) {
	m.Write(types.IOPage+uint16(offset), value)
}

// Load copies image into memory starting at address, bypassing write
// hooks.
func (m *MMU) Load(address uint16, image []byte) error {
	if int(address)+len(image) > 0x10000 {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrImageTooLarge, len(image), address)
	}
	for i, b := range image {
		m.mem.Write(address+uint16(i), b)
	}
	m.Log.Debugf("mmu: loaded %d bytes at 0x%04X", len(image), address)
	return nil
}
