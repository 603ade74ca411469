package service

// QRCodeService turns a profile URL into scannable share artifacts.
type QRCodeService interface {
	// GenerateProfileQR renders the URL as a PNG for inline display.
	GenerateProfileQR(url string) ([]byte, error)

	// RasterizeProfileQR renders the URL as a JPEG for file download.
	RasterizeProfileQR(url string) ([]byte, error)
}
