// Package capture turns captured screenshots into sampling buffers.
package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"eyedropper/internal/domain/entity"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// EncodeDataURL wraps raw image bytes in a base64 data URL.
func EncodeDataURL(format string, data []byte) string {
	if format == "" {
		format = "png"
	}
	return "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL extracts the payload bytes of a base64 image data URL.
func DecodeDataURL(dataURL string) ([]byte, error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") {
		return nil, fmt.Errorf("not an image data URL")
	}
	if !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("data URL is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64 payload: %w", err)
	}
	return data, nil
}

// BufferFromImage rasterizes img into a dense RGBA buffer.
func BufferFromImage(img image.Image, scale float64) (*entity.CaptureBuffer, error) {
	// Clone normalises any decoded colour model to NRGBA with stride == 4*width.
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	return entity.NewCaptureBuffer(w, h, nrgba.Pix, scale)
}

// BufferFromDataURL decodes a captured viewport image. When scale is not
// positive it is derived from the image width and the logical viewport width.
func BufferFromDataURL(dataURL string, viewport entity.Viewport) (*entity.CaptureBuffer, error) {
	data, err := DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image decode failed (format: %s): %w", format, err)
	}

	scale := viewport.Scale
	if scale <= 0 {
		scale = 1
		if viewport.Width > 0 {
			scale = float64(img.Bounds().Dx()) / viewport.Width
		}
	}

	return BufferFromImage(img, scale)
}
