package bus

import (
	"io"
	"log/slog"

	"github.com/GeReV/yagbe/yagbe/bits"
	"github.com/GeReV/yagbe/yagbe/hwio"
)

// SerialSink implements the SB/SC register pair with no peer attached:
// transfers complete immediately, the start bit clears, 0xFF shifts in
// as the received byte and the Serial interrupt is requested. Outgoing
// bytes are logged line-by-line, which is how CPU conformance ROMs
// report their results.
type SerialSink struct {
	sb uint8
	sc uint8

	requestIRQ func()
	out        io.Writer // optional raw byte capture
	line       []byte
}

func newSerialSink(requestIRQ func()) SerialSink {
	return SerialSink{sc: 0x7E, requestIRQ: requestIRQ}
}

// CaptureOutput mirrors every transferred byte to w, in addition to the
// line-buffered log. Tests use this to watch for a test ROM's
// pass/fail handshake.
func (s *SerialSink) CaptureOutput(w io.Writer) {
	s.out = w
}

func (s *SerialSink) Read(addr uint16) uint8 {
	switch addr {
	case hwio.SB:
		return s.sb
	case hwio.SC:
		return s.sc | 0x7E
	}
	return 0xFF
}

func (s *SerialSink) Write(addr uint16, value uint8) {
	switch addr {
	case hwio.SB:
		s.sb = value
	case hwio.SC:
		s.sc = value
		if bits.Test(7, value) && bits.Test(0, value) {
			s.completeTransfer()
		}
	}
}

func (s *SerialSink) completeTransfer() {
	b := s.sb

	if s.out != nil {
		s.out.Write([]byte{b})
	}

	if b == 0 || b == '\n' || b == '\r' {
		if len(s.line) > 0 {
			slog.Info("serial", "line", string(s.line))
			s.line = s.line[:0]
		}
	} else {
		s.line = append(s.line, b)
	}

	// No peer: all ones shift in.
	s.sb = 0xFF
	s.sc = bits.Clear(7, s.sc)

	if s.requestIRQ != nil {
		s.requestIRQ()
	}
}
