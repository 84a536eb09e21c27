package types

// HardwareAddress is the address of a register on the memory-mapped
// I/O page (0xFF00 - 0xFFFF). The CPU core treats the page as plain
// memory; the constants exist for the collaborators that attach to it.
type HardwareAddress = uint16

const (
	// IOPage is the first address of the memory-mapped I/O page.
	IOPage HardwareAddress = 0xFF00
	// SB holds the byte to be shifted out of (and into) the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port. Writing a value with bit 7 set
	// starts a transfer of SB.
	SC HardwareAddress = 0xFF02
	// IF is the interrupt request register.
	IF HardwareAddress = 0xFF0F
	// BDIS unmaps the boot ROM when written with a non-zero value.
	BDIS HardwareAddress = 0xFF50
	// IE is the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)
