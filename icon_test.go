package iconset

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngSignature is the fixed 8-byte prefix of every PNG file.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestIcons_ShouldKeepSizeOrder(t *testing.T) {
	icons := Icons()
	require.Len(t, icons, 4)

	for i, size := range []int{16, 32, 48, 128} {
		assert.Equal(t, size, icons[i].Size)
		assert.Equal(t, fmt.Sprintf("icon%d.png", size), icons[i].Name)
	}
}

func TestIcons_ShouldDecodeEmbeddedData(t *testing.T) {
	for _, ic := range Icons() {
		t.Run(ic.Name, func(t *testing.T) {
			data, err := ic.Decode()
			require.NoError(t, err)
			require.Greater(t, len(data), len(pngSignature))

			assert.Equal(t, pngSignature, data[:len(pngSignature)])
			assert.Equal(t, ic.Data, base64.StdEncoding.EncodeToString(data))

			cfg, err := png.DecodeConfig(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, ic.Size, cfg.Width)
			assert.Equal(t, ic.Size, cfg.Height)
		})
	}
}

func TestIcons_ShouldReturnCopy(t *testing.T) {
	icons := Icons()
	icons[0].Data = "modified"

	ic, ok := Lookup(16)
	require.True(t, ok)
	assert.NotEqual(t, "modified", ic.Data)
}

func TestIcons_Lookup(t *testing.T) {
	ic, ok := Lookup(48)
	require.True(t, ok)
	assert.Equal(t, "icon48.png", ic.Name)

	_, ok = Lookup(64)
	assert.False(t, ok)
}

func TestIcon_ShouldFailOnMalformedData(t *testing.T) {
	ic := Icon{Name: "broken.png", Size: 16, Data: "not*base64"}

	data, err := ic.Decode()
	assert.Nil(t, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.png")

	var corrupt base64.CorruptInputError
	assert.ErrorAs(t, err, &corrupt)
}
