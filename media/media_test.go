package media

import (
	"bytes"
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), imaging.PNG))
	return DataURI("image/png", buf.Bytes())
}

func TestDimensionsOfInlineImage(t *testing.T) {
	w, h, ok := Dimensions(pngDataURI(t, 640, 480))
	require.True(t, ok)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestDimensionsOfWideImage(t *testing.T) {
	w, h, ok := Dimensions(pngDataURI(t, 2400, 200))
	require.True(t, ok)
	assert.Equal(t, 2400, w)
	assert.Equal(t, 200, h)
}

func TestDimensionsRejectsNonImages(t *testing.T) {
	for _, uri := range []string{
		"",
		"hello",
		"https://example.com/cat.png",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,not-base64!!",
		"data:image/png;base64,aGVsbG8=",
	} {
		_, _, ok := Dimensions(uri)
		assert.False(t, ok, uri)
	}
}
