package api

import (
	"context"
	"encoding/json"
	"net/http"

	"juantap/internal/domain/entity"
	"juantap/internal/domain/repository"
	"juantap/internal/errors"
)

type profileRepository struct {
	client *Client
}

// NewProfileRepository creates the account reader/writer backed by the
// upstream API.
func NewProfileRepository(client *Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

// userProfileDTO mirrors the /user-profile payload before normalization. The
// avatar may be a bare storage path and socialLinks may be an array or a
// JSON-encoded string depending on how the profile was last written.
type userProfileDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	IsAdmin     bool   `json:"is_admin"`
	ProfileImg  string `json:"profile_image"`
	Profile     *struct {
		Bio         string          `json:"bio"`
		Phone       json.Number     `json:"phone"`
		Website     string          `json:"website"`
		Location    string          `json:"location"`
		CoverImage  string          `json:"cover_image"`
		SocialLinks json.RawMessage `json:"socialLinks"`
	} `json:"profile"`
}

// CurrentUser retrieves the authenticated user (GET /user-profile) and
// normalizes it: avatar absolutized, social links parsed once at this
// boundary, optional fields defaulted to empty strings.
func (r *profileRepository) CurrentUser(ctx context.Context) (*entity.UserProfile, error) {
	var dto userProfileDTO
	if err := r.client.do(ctx, http.MethodGet, "/user-profile", nil, &dto); err != nil {
		return nil, err
	}

	user := &entity.UserProfile{
		ID:          dto.ID,
		Name:        dto.Name,
		Username:    dto.Username,
		DisplayName: dto.DisplayName,
		Email:       dto.Email,
		IsAdmin:     dto.IsAdmin,
		AvatarURL:   r.client.absolutizeAvatar(dto.ProfileImg),
	}
	if dto.Profile != nil {
		user.Contact = entity.ContactInfo{
			Bio:         dto.Profile.Bio,
			Phone:       dto.Profile.Phone.String(),
			Website:     dto.Profile.Website,
			Location:    dto.Profile.Location,
			CoverImage:  dto.Profile.CoverImage,
			SocialLinks: entity.ParseSocialLinks(dto.Profile.SocialLinks),
		}
	}

	return user, nil
}

// Register creates a new account (POST /register).
func (r *profileRepository) Register(ctx context.Context, input repository.RegisterInput) error {
	return r.client.do(ctx, http.MethodPost, "/register", input, nil)
}

// Login exchanges credentials for a bearer token (POST /login).
func (r *profileRepository) Login(ctx context.Context, creds repository.Credentials) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := r.client.do(ctx, http.MethodPost, "/login", creds, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.Wrap(repository.ErrUpstream, "login response carried no token")
	}

	return out.Token, nil
}

// Logout invalidates the current token upstream (POST /logout).
func (r *profileRepository) Logout(ctx context.Context) error {
	return r.client.do(ctx, http.MethodPost, "/logout", nil, nil)
}
