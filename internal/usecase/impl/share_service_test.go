package impl

import (
	"context"
	"testing"
	"time"

	"juantap/config"
	"juantap/internal/domain/entity"
	domainerrors "juantap/internal/domain/errors"
	"juantap/internal/infra/qrcode"
	"juantap/internal/infra/vcard"
	"juantap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shareConfig() *config.Config {
	return &config.Config{
		Upstream: &config.UpstreamConfig{
			APIBaseURL:      "https://api.juantap.ph/api",
			ImageBaseURL:    "https://images.juantap.ph",
			FrontendBaseURL: "https://juantap.ph/",
			RequestTimeout:  5 * time.Second,
		},
	}
}

func newTestShareService(profiles *fakeProfileRepo) usecase.ShareUsecase {
	return NewShareService(ShareServiceParams{
		ProfileRepo: profiles,
		QRCode:      qrcode.NewQRCodeService(128, "M", 90),
		VCard:       vcard.NewVCardService(),
		Config:      shareConfig(),
	})
}

func TestShareService_BuildProfileURL(t *testing.T) {
	svc := newTestShareService(&fakeProfileRepo{})

	tests := []struct {
		name     string
		username string
		wantURL  string
		wantOK   bool
	}{
		{"plain username", "juan", "https://juantap.ph/juan", true},
		{"empty username disables sharing", "", "", false},
		{"blank username disables sharing", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := svc.BuildProfileURL(tt.username)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestShareService_BuildTemplateURL(t *testing.T) {
	svc := newTestShareService(&fakeProfileRepo{})

	assert.Equal(t, "https://juantap.ph/templates/neon-cyber", svc.BuildTemplateURL("neon-cyber"))
}

func TestShareService_ProfileQRDownloadArtifact(t *testing.T) {
	profiles := &fakeProfileRepo{profile: &entity.UserProfile{Username: "juan", Name: "Juan Dela Cruz"}}
	svc := newTestShareService(profiles)

	artifact, err := svc.ProfileQRDownload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "juan-qr.jpg", artifact.Filename)
	assert.Equal(t, "image/jpeg", artifact.MIME)
	require.NotEmpty(t, artifact.Data)
	// JPEG SOI marker.
	assert.Equal(t, byte(0xFF), artifact.Data[0])
	assert.Equal(t, byte(0xD8), artifact.Data[1])
}

func TestShareService_ProfileQRArtifact(t *testing.T) {
	profiles := &fakeProfileRepo{profile: &entity.UserProfile{Username: "juan"}}
	svc := newTestShareService(profiles)

	artifact, err := svc.ProfileQR(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "juan-qr.png", artifact.Filename)
	assert.Equal(t, "image/png", artifact.MIME)
	require.NotEmpty(t, artifact.Data)
	// PNG magic number.
	assert.Equal(t, byte(0x89), artifact.Data[0])
	assert.Equal(t, byte(0x50), artifact.Data[1])
}

func TestShareService_QRRequiresUsername(t *testing.T) {
	profiles := &fakeProfileRepo{profile: &entity.UserProfile{Name: "Juan"}}
	svc := newTestShareService(profiles)

	_, err := svc.ProfileQR(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNoUsername)

	_, err = svc.ProfileQRDownload(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNoUsername)
}

func TestShareService_ContactCard(t *testing.T) {
	profiles := &fakeProfileRepo{profile: &entity.UserProfile{
		Username:    "juan",
		DisplayName: "Juan D.",
		Email:       "juan@example.com",
	}}
	svc := newTestShareService(profiles)

	artifact, err := svc.ContactCard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Juan D..vcf", artifact.Filename)
	assert.Equal(t, "text/vcard", artifact.MIME)
	assert.Contains(t, string(artifact.Data), "BEGIN:VCARD")
	assert.Contains(t, string(artifact.Data), "FN:Juan D.")
	assert.Contains(t, string(artifact.Data), "EMAIL;TYPE=INTERNET:juan@example.com")
}

func TestShareService_ContactCardWithoutNames(t *testing.T) {
	profiles := &fakeProfileRepo{profile: &entity.UserProfile{}}
	svc := newTestShareService(profiles)

	artifact, err := svc.ContactCard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "contact.vcf", artifact.Filename)
}
