package bus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GeReV/yagbe/yagbe/hwio"
)

func newTestSerial() (*SerialSink, *int) {
	irqs := 0
	s := newSerialSink(func() { irqs++ })
	return &s, &irqs
}

func TestSerialTransferCompletesImmediately(t *testing.T) {
	s, irqs := newTestSerial()

	s.Write(hwio.SB, 'P')
	s.Write(hwio.SC, 0x81) // start, internal clock

	assert.Equal(t, uint8(0xFF), s.Read(hwio.SB), "no peer shifts in all ones")
	assert.Equal(t, uint8(0x7F), s.Read(hwio.SC), "start bit clears")
	assert.Equal(t, 1, *irqs)
}

func TestSerialWithoutStartBit(t *testing.T) {
	s, irqs := newTestSerial()

	s.Write(hwio.SB, 'P')
	s.Write(hwio.SC, 0x01) // clock source only, no start

	assert.Equal(t, uint8('P'), s.Read(hwio.SB))
	assert.Equal(t, 0, *irqs)
}

func TestSerialCapture(t *testing.T) {
	s, _ := newTestSerial()

	var captured bytes.Buffer
	s.CaptureOutput(&captured)

	for _, b := range []byte("Passed\n") {
		s.Write(hwio.SB, b)
		s.Write(hwio.SC, 0x81)
	}

	assert.Equal(t, "Passed\n", captured.String())
}

func TestSerialUnwiredSCBitsReadOne(t *testing.T) {
	s, _ := newTestSerial()
	assert.Equal(t, uint8(0x7E), s.Read(hwio.SC))
}
