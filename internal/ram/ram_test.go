package ram

import "testing"

func TestRAM_ReadWrite(t *testing.T) {
	r := NewRAM(0x10000)
	for i := 0; i <= 0xFFFF; i++ {
		if r.Read(uint16(i)) != 0 {
			t.Fatalf("expected zero initialised memory at 0x%04X", i)
		}
		r.Write(uint16(i), uint8(i^0xA5))
	}
	for i := 0; i <= 0xFFFF; i++ {
		if v := r.Read(uint16(i)); v != uint8(i^0xA5) {
			t.Fatalf("expected 0x%02X at 0x%04X, got 0x%02X", uint8(i^0xA5), i, v)
		}
	}
}

func TestRAM_Wrap(t *testing.T) {
	r := NewRAM(0x80)
	r.Write(0x0081, 0x42)
	if v := r.Read(0x0001); v != 0x42 {
		t.Errorf("expected write to wrap to 0x0001, got 0x%02X", v)
	}
	if r.Size() != 0x80 {
		t.Errorf("expected size 0x80, got 0x%X", r.Size())
	}
}

func TestRAM_InvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for non power of two size")
		}
	}()
	NewRAM(100)
}
