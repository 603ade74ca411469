package impl

import (
	"context"
	"strings"

	"juantap/config"
	"juantap/internal/domain/entity"
	domainerrors "juantap/internal/domain/errors"
	"juantap/internal/domain/repository"
	"juantap/internal/domain/service"
	"juantap/internal/errors"
	"juantap/internal/usecase"

	"go.uber.org/fx"
)

type shareService struct {
	profileRepo repository.ProfileRepository
	qrcode      service.QRCodeService
	vcard       service.VCardService
	frontendURL string
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	QRCode      service.QRCodeService
	VCard       service.VCardService
	Config      *config.Config
}

// NewShareService creates the share artifact usecase.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	return &shareService{
		profileRepo: params.ProfileRepo,
		qrcode:      params.QRCode,
		vcard:       params.VCard,
		frontendURL: strings.TrimRight(params.Config.Upstream.FrontendBaseURL, "/"),
	}
}

// BuildProfileURL returns the public profile URL for a username. An empty or
// blank username yields ok=false; callers render a disabled state.
func (s *shareService) BuildProfileURL(username string) (string, bool) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", false
	}

	return s.frontendURL + "/" + username, true
}

// BuildTemplateURL returns the shareable catalog URL for a template slug.
func (s *shareService) BuildTemplateURL(slug string) string {
	return s.frontendURL + "/templates/" + slug
}

// ProfileQR renders the current user's profile URL as an inline PNG.
func (s *shareService) ProfileQR(ctx context.Context) (*usecase.Artifact, error) {
	profile, url, err := s.profileURL(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.qrcode.GenerateProfileQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "generate profile qr")
	}

	return &usecase.Artifact{
		Filename: profile.Username + "-qr.png",
		MIME:     "image/png",
		Data:     data,
	}, nil
}

// ProfileQRDownload rasterizes the profile QR to the downloadable JPEG named
// "<username>-qr.jpg".
func (s *shareService) ProfileQRDownload(ctx context.Context) (*usecase.Artifact, error) {
	profile, url, err := s.profileURL(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.qrcode.RasterizeProfileQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "rasterize profile qr")
	}

	return &usecase.Artifact{
		Filename: profile.Username + "-qr.jpg",
		MIME:     "image/jpeg",
		Data:     data,
	}, nil
}

// ContactCard serializes the current user into the downloadable vCard named
// "<display name>.vcf".
func (s *shareService) ContactCard(ctx context.Context) (*usecase.Artifact, error) {
	profile, err := s.profileRepo.CurrentUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "current user")
	}

	name := profile.BestName()
	if name == "" {
		name = "contact"
	}

	return &usecase.Artifact{
		Filename: name + ".vcf",
		MIME:     "text/vcard",
		Data:     []byte(s.vcard.BuildVCard(profile)),
	}, nil
}

// profileURL resolves the current user and their public URL in one step.
// Accounts without a username cannot be shared.
func (s *shareService) profileURL(ctx context.Context) (*entity.UserProfile, string, error) {
	profile, err := s.profileRepo.CurrentUser(ctx)
	if err != nil {
		return nil, "", errors.Wrap(err, "current user")
	}

	url, ok := s.BuildProfileURL(profile.Username)
	if !ok {
		return nil, "", domainerrors.ErrNoUsername
	}

	return profile, url, nil
}
