package frontend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeReV/yagbe/yagbe"
)

func loopROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0x18 // JR -2
	rom[0x0101] = 0xFE

	var sum uint8
	for i := 0x0134; i < 0x014D; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x014D] = sum
	return rom
}

func TestHeadlessRunsRequestedFrames(t *testing.T) {
	m, err := yagbe.New(loopROM())
	require.NoError(t, err)

	h := &Headless{Frames: 5}
	require.NoError(t, h.Run(m))
	assert.Equal(t, uint64(5), m.FrameCount())
}

func TestHeadlessSnapshots(t *testing.T) {
	m, err := yagbe.New(loopROM())
	require.NoError(t, err)

	dir := t.TempDir()
	h := &Headless{Frames: 4, SnapshotEvery: 2, SnapshotDir: dir}
	require.NoError(t, h.Run(m))

	for _, name := range []string{"frame-00002.txt", "frame-00004.txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
