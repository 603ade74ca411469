package qrcode

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"juantap/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	jpegQuality          int
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string, jpegQuality int) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = jpeg.DefaultQuality
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		jpegQuality:          jpegQuality,
	}
}

// GenerateProfileQR renders the profile URL as a PNG for inline display.
func (s *qrcodeService) GenerateProfileQR(url string) ([]byte, error) {
	qrCode, err := s.encode(url)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// RasterizeProfileQR renders the profile URL as a JPEG, the format used for
// the "-qr.jpg" download artifact.
func (s *qrcodeService) RasterizeProfileQR(url string) ([]byte, error) {
	qrCode, err := s.encode(url)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, qrCode.Image(s.size), &jpeg.Options{Quality: s.jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *qrcodeService) encode(url string) (*qrcode.QRCode, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL for QR code")
	}

	qrCode, err := qrcode.New(url, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	return qrCode, nil
}
