package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// Images travel inline as base64 data URIs and are stored exactly as
// submitted. The helpers here only inspect payloads, never rewrite them.

// Dimensions reports the pixel size of an inline image. ok is false when
// the string is not a decodable image data URI.
func Dimensions(dataURI string) (width, height int, ok bool) {
	payload, ok := decodePayload(dataURI)
	if !ok {
		return 0, 0, false
	}
	img, err := imaging.Decode(bytes.NewReader(payload))
	if err != nil {
		return 0, 0, false
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), true
}

// decodePayload extracts the base64 body of a data URI.
func decodePayload(dataURI string) ([]byte, bool) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return nil, false
	}
	idx := strings.Index(dataURI, ";base64,")
	if idx < 0 {
		return nil, false
	}
	payload, err := base64.StdEncoding.DecodeString(dataURI[idx+len(";base64,"):])
	if err != nil {
		return nil, false
	}
	return payload, true
}

// DataURI encodes raw image bytes for inline transport.
func DataURI(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
