package types

import (
	"strings"
)

type Model int // The Model whose post-boot state is used.

const (
	Unset  Model = iota // Unset - Model hasn't been set - all registers zero
	DMG0                // DMG0 - early Game Boy, only released in Japan
	DMGABC              // DMGABC - Standard Game Boy
	CGB0                // CGB0 -  early Game Boy Colour, only released in Japan
	CGBABC              // CGBABC - Standard Game Boy Colour
	MGB                 // MGB - Pocket Game Boy
	SGB                 // SGB - Super Game Boy
	SGB2                // SGB2 - Super Game Boy 2
	AGB                 // AGB - Game Boy Advance
)

var ModelNames = map[Model]string{
	DMG0:   "DMG0",
	DMGABC: "DMG",
	CGB0:   "CGB0",
	CGBABC: "CGB",
	MGB:    "MGB",
	SGB:    "SGB",
	SGB2:   "SGB2",
	AGB:    "AGB",
	Unset:  "Unset",
}

// StringToModel converts a string to a Model. Unknown names, as well as
// the empty string and "none", resolve to Unset.
func StringToModel(s string) Model {
	for m, n := range ModelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}

	return Unset
}

func (m Model) String() string {
	if n, ok := ModelNames[m]; ok {
		return n
	}
	return "Unknown"
}

// modelRegisters holds the register values left behind by each
// model's boot ROM, in the order A, F, B, C, D, E, H, L.
var modelRegisters = map[Model][8]uint8{
	DMG0:   {0x01, 0x00, 0xFF, 0x13, 0x00, 0xC1, 0x84, 0x03},
	DMGABC: {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	CGB0:   {0x11, 0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x7C},
	CGBABC: {0x11, 0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x7C},
	MGB:    {0xFF, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	SGB:    {0x01, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	SGB2:   {0xFF, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	AGB:    {0x11, 0x00, 0x01, 0x00, 0x00, 0x08, 0x00, 0x7C},
}

// Registers returns the register file as the model's boot ROM leaves
// it when handing over to the cartridge at 0x0100. Unset yields the
// all-zero register file.
func (m Model) Registers() Registers {
	v, ok := modelRegisters[m]
	if !ok {
		return Registers{}
	}

	var r Registers
	r.AF.SetUint16(uint16(v[0])<<8 | uint16(v[1]))
	r.BC.SetUint16(uint16(v[2])<<8 | uint16(v[3]))
	r.DE.SetUint16(uint16(v[4])<<8 | uint16(v[5]))
	r.HL.SetUint16(uint16(v[6])<<8 | uint16(v[7]))
	r.SP.SetUint16(0xFFFE)
	r.PC.SetUint16(0x0100)
	return r
}
