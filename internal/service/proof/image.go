package proof

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const (
	jpegQuality = 85
	// decodeSideFactor сторона до декодирования не больше maxDimension*decodeSideFactor.
	decodeSideFactor = 8
	// maxDecodeSide предел стороны, когда уменьшение выключено.
	maxDecodeSide = 16384
)

type normalized struct {
	data        []byte
	contentType string
	ext         string
}

// normalizeImage уменьшает снимок до maxDimension по большей стороне и перекодирует.
// EXIF-ориентация применяется, чтобы снимок с телефона не оказался повернутым.
// GIF сохраняется как PNG, анимация не нужна.
func normalizeImage(data []byte, contentType string, maxDimension int) (normalized, error) {
	if err := checkDimensions(data, maxDimension); err != nil {
		return normalized{}, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return normalized{}, fmt.Errorf("%w: %w", ErrUnsupportedContent, err)
	}

	if maxDimension > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
			img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
		}
	}

	format := imaging.PNG
	result := normalized{contentType: "image/png", ext: ".png"}
	if contentType == "image/jpeg" {
		format = imaging.JPEG
		result = normalized{contentType: "image/jpeg", ext: allowedContentTypes["image/jpeg"]}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return normalized{}, fmt.Errorf("encode image: %w", err)
	}
	result.data = buf.Bytes()
	return result, nil
}

// checkDimensions читает только заголовок: маленький сжатый файл может объявить
// размер, декодирование которого займет гигабайты.
func checkDimensions(data []byte, maxDimension int) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedContent, err)
	}

	limit := maxDecodeSide
	if maxDimension > 0 {
		limit = min(maxDimension*decodeSideFactor, maxDecodeSide)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > limit || cfg.Height > limit {
		return fmt.Errorf("%w: image %dx%d exceeds %d px per side",
			ErrUnsupportedContent, cfg.Width, cfg.Height, limit)
	}
	return nil
}
