// Package boot identifies boot ROM images. A boot ROM is mapped over
// the bottom of the address space at power on, runs from 0x0000 with
// every register zeroed, and unmaps itself by writing to types.BDIS
// before jumping to 0x0100.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/thelolagemann/tomboy/internal/types"
)

const (
	// DMGSize is the size of a DMG/MGB/SGB boot ROM.
	DMGSize = 256
	// CGBSize is the size of a CGB boot ROM, which is mapped at
	// 0x0000 - 0x00FF and 0x0200 - 0x08FF.
	CGBSize = 2304
)

// ErrInvalidLength is returned for images that are neither DMGSize
// nor CGBSize bytes long.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// ROM is a loaded boot ROM image.
type ROM struct {
	raw      []byte
	checksum string
}

// LoadBootROM validates the length of b and computes its MD5 checksum.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != DMGSize && len(b) != CGBSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(b))
	}

	sum := md5.Sum(b)
	raw := make([]byte, len(b))
	copy(raw, b)

	return &ROM{
		raw:      raw,
		checksum: hex.EncodeToString(sum[:]),
	}, nil
}

// Read returns the byte at the given offset into the image.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[int(addr)%len(b.raw)]
}

// Len returns the size of the image in bytes.
func (b *ROM) Len() int {
	return len(b.raw)
}

// Contains reports whether the boot ROM overlays addr while mapped.
func (b *ROM) Contains(addr uint16) bool {
	if addr < 0x0100 {
		return true
	}
	return len(b.raw) == CGBSize && addr >= 0x0200 && addr < 0x0900
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Name returns a human readable description of the boot ROM.
func (b *ROM) Name() string {
	if b == nil {
		return "none"
	}
	if k, ok := knownBootROMChecksums[b.checksum]; ok {
		return k.name
	}
	return "unknown"
}

// Model returns the hardware model the boot ROM belongs to, or
// types.Unset for unknown images.
func (b *ROM) Model() types.Model {
	if b == nil {
		return types.Unset
	}
	if k, ok := knownBootROMChecksums[b.checksum]; ok {
		return k.model
	}
	return types.Unset
}

type knownROM struct {
	name  string
	model types.Model
}

var knownBootROMChecksums = map[string]knownROM{
	DMG0:    {"Game Boy (DMG-0)", types.DMG0},
	DMG:     {"Game Boy (DMG-01)", types.DMGABC},
	MGB:     {"Game Boy Pocket", types.MGB},
	SGB:     {"Super Game Boy", types.SGB},
	SGB2:    {"Super Game Boy 2", types.SGB2},
	CGB0:    {"Game Boy Color (CGB-0)", types.CGB0},
	CGB:     {"Game Boy Color (CGB-A/B/C/D/E)", types.CGBABC},
	CGB_AGB: {"Game Boy Advance (AGB-001)", types.AGB},
}

const (
	// DMG0 is the early DMG boot ROM, only sold in Japan. It flashes
	// the screen on a failed logo check instead of hanging.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot ROM found in most DMG-01 units.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by one byte: it leaves 0xFF in A.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB hands the cartridge header to the SNES instead of
	// animating the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB the way MGB differs from DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// CGB0 is the early CGB boot ROM.
	CGB0 = "7c773f3c0b01cb73bca8e83227287b7f"
	// CGB is the boot ROM of most CGB units.
	CGB = "dbfce9db9deaa2567f6a84fde55f9680"
	// CGB_AGB is the GBA's CGB compatibility boot ROM.
	CGB_AGB = "e6cefb5f7d352fab6681989763917c73"
)
