package rod

import (
	"context"
	"fmt"

	"eyedropper/internal/domain/entity"

	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// CaptureViewport screenshots the visible viewport at device resolution.
// The bytes are decoded once, by the page side, into the capture buffer.
func (p *Page) CaptureViewport(ctx context.Context) (*entity.Screenshot, error) {
	format := captureFormat(p.cfg.CaptureFormat)
	req := &proto.PageCaptureScreenshot{Format: format}
	if format != proto.PageCaptureScreenshotFormatPng {
		req.Quality = gson.Int(p.cfg.CaptureQuality)
	}

	data, err := p.page.Context(ctx).Timeout(p.cfg.Timeout).Screenshot(false, req)
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	return &entity.Screenshot{Data: data, Format: string(format)}, nil
}

func captureFormat(name string) proto.PageCaptureScreenshotFormat {
	switch proto.PageCaptureScreenshotFormat(name) {
	case proto.PageCaptureScreenshotFormatJpeg:
		return proto.PageCaptureScreenshotFormatJpeg
	case proto.PageCaptureScreenshotFormatWebp:
		return proto.PageCaptureScreenshotFormatWebp
	default:
		return proto.PageCaptureScreenshotFormatPng
	}
}
