package yagbe

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// maxConformanceFrames bounds each ROM run; the Blargg CPU suites
// report well within this.
const maxConformanceFrames = 2000

// TestConformanceROMs runs every ROM under testdata/roms and watches
// the serial port for the pass/fail verdict. The directory is not
// checked in; drop test ROMs there to enable the suite.
func TestConformanceROMs(t *testing.T) {
	roms, err := filepath.Glob(filepath.Join("testdata", "roms", "*.gb"))
	require.NoError(t, err)
	if len(roms) == 0 {
		t.Skip("no ROMs under testdata/roms")
	}

	for _, path := range roms {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			m, err := New(data)
			require.NoError(t, err)

			var out bytes.Buffer
			m.CaptureSerial(&out)

			for i := 0; i < maxConformanceFrames; i++ {
				require.NoError(t, m.RunFrame())

				got := out.String()
				if strings.Contains(got, "Passed") {
					return
				}
				if strings.Contains(got, "Failed") {
					t.Fatalf("ROM reported failure:\n%s", got)
				}
			}
			t.Fatalf("no verdict after %d frames, serial output:\n%s",
				maxConformanceFrames, out.String())
		})
	}
}
