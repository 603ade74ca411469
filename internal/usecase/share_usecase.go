package usecase

import "context"

// Artifact is a downloadable share artifact.
type Artifact struct {
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Data     []byte `json:"-"`
}

// ShareUsecase derives the public profile URL and its share artifacts.
type ShareUsecase interface {
	// BuildProfileURL returns the public profile URL for a username. An
	// empty username yields ok=false and an empty URL so the caller renders
	// a disabled state instead of a malformed link.
	BuildProfileURL(username string) (url string, ok bool)

	// BuildTemplateURL returns the shareable catalog URL for a template slug.
	BuildTemplateURL(slug string) string

	// ProfileQR renders the current user's profile URL as an inline PNG.
	ProfileQR(ctx context.Context) (*Artifact, error)

	// ProfileQRDownload rasterizes the QR to the downloadable JPEG named
	// "<username>-qr.jpg".
	ProfileQRDownload(ctx context.Context) (*Artifact, error)

	// ContactCard serializes the current user into the downloadable vCard
	// named "<display name>.vcf".
	ContactCard(ctx context.Context) (*Artifact, error)
}
