package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, code ...byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gb")
	require.NoError(t, os.WriteFile(path, code, 0o644))
	return path
}

// serialOK sends "OK" through the serial port and halts.
var serialOK = []byte{
	0x3E, 'O', // LD A, 'O'
	0xE0, 0x01, // LDH (SB), A
	0x3E, 0x81, // LD A, $81
	0xE0, 0x02, // LDH (SC), A
	0x3E, 'K',
	0xE0, 0x01,
	0x3E, 0x81,
	0xE0, 0x02,
	0x76, // HALT
}

func TestRun_Marker(t *testing.T) {
	var stdout, stderr bytes.Buffer
	image := writeImage(t, serialOK...)

	status := run([]string{"-image", image, "-load", "0x100", "-model", "dmg", "-until", "OK", "-digest", "-log", "error"}, &stdout, &stderr)
	assert.Equal(t, exitOK, status, stderr.String())
	assert.Contains(t, stdout.String(), "OK")
	assert.Contains(t, stdout.String(), "digest: ")
}

func TestRun_Trace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	image := writeImage(t, 0x00, 0x76)

	status := run([]string{"-image", image, "-load", "0x100", "-model", "dmg", "-trace", "-", "-log", "error"}, &stdout, &stderr)
	require.Equal(t, exitOK, status, stderr.String())
	assert.Equal(t,
		"PC=0100 OP=00 NOP cyc=1 A=01 F=B0 B=00 C=13 D=00 E=D8 H=01 L=4D SP=FFFE\n"+
			"PC=0101 OP=76 HALT cyc=1 A=01 F=B0 B=00 C=13 D=00 E=D8 H=01 L=4D SP=FFFE\n",
		stdout.String())
}

func TestRun_DigestIsStable(t *testing.T) {
	image := writeImage(t, serialOK...)
	digest := func() string {
		var stdout, stderr bytes.Buffer
		require.Equal(t, exitOK, run([]string{"-image", image, "-pc", "0", "-digest", "-log", "error"}, &stdout, &stderr))
		return stdout.String()
	}
	assert.Equal(t, digest(), digest())
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		status int
	}{
		{"invalid opcode", []string{"-image", writeImage(t, 0x00, 0xD3)}, exitFailed},
		{"missing marker", []string{"-image", writeImage(t, 0x76), "-until", "Passed"}, exitFailed},
		{"step limit", []string{"-image", writeImage(t, 0x18, 0xFE), "-steps", "100", "-until", "Passed"}, exitFailed},
		{"no image", []string{"-model", "dmg"}, exitUsage},
		{"unknown model", []string{"-image", writeImage(t, 0x76), "-model", "nes"}, exitUsage},
		{"bad address", []string{"-image", writeImage(t, 0x76), "-pc", "0x10000"}, exitUsage},
		{"missing image", []string{"-image", filepath.Join(t.TempDir(), "none.gb")}, exitUsage},
		{"short boot rom", []string{"-image", writeImage(t, 0x76), "-boot", writeImage(t, 0x00)}, exitUsage},
		{"unknown flag", []string{"-frames", "10"}, exitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.status, run(append(tt.args, "-log", "panic"), &stdout, &stderr))
		})
	}
}

func TestRun_Config(t *testing.T) {
	image := writeImage(t, serialOK...)
	profile := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("image: "+image+"\nuntil: Passed\nlog_level: panic\n"), 0o644))

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitFailed, run([]string{"-config", profile}, &stdout, &stderr))

	stdout.Reset()
	assert.Equal(t, exitOK, run([]string{"-config", profile, "-until", "OK"}, &stdout, &stderr))
}
