// Package ram provides a basic RAM implementation.
package ram

// RAM represents a block of RAM.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Size() uint32
}

type ram struct {
	data []uint8
	mask uint32
}

// NewRAM returns a new zero-initialised RAM of the given size, which
// must be a power of two no larger than 64kB. Addresses beyond the
// size wrap around, so every address resolves to a cell.
func NewRAM(size uint32) RAM {
	if size == 0 || size > 0x10000 || size&(size-1) != 0 {
		panic("ram: size must be a power of two between 1 and 65536")
	}
	return &ram{
		data: make([]uint8, size),
		mask: size - 1,
	}
}

// Read returns the value at the given address.
func (r *ram) Read(address uint16) uint8 {
	return r.data[uint32(address)&r.mask]
}

// Write writes the value to the given address.
func (r *ram) Write(address uint16, value uint8) {
	r.data[uint32(address)&r.mask] = value
}

// Size returns the number of cells.
func (r *ram) Size() uint32 {
	return uint32(len(r.data))
}
