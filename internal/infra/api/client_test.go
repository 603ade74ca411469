package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"juantap/config"
	"juantap/internal/domain/repository"
	"juantap/internal/domain/service"
	"juantap/internal/errors"
	"juantap/internal/infra/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, upstream *httptest.Server) (*Client, service.Session) {
	t.Helper()

	cfg := &config.Config{
		Upstream: &config.UpstreamConfig{
			APIBaseURL:      upstream.URL,
			ImageBaseURL:    "https://images.juantap.ph",
			FrontendBaseURL: "https://juantap.ph",
			RequestTimeout:  5 * time.Second,
		},
	}
	sess := session.New()

	client := NewClient(ClientParams{
		Config:  cfg,
		Session: sess,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return client, sess
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	client, sess := testClient(t, upstream)
	repo := NewTemplateRepository(client)

	_, err := repo.ListTemplates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	require.NoError(t, sess.Start("tok-123"))
	_, err = repo.ListTemplates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestTemplateRepository_ListDecodesBothShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"slug":"neon-cyber","name":"Neon Cyber","category":"premium"}]`},
		{"wrapped object", `{"templates":[{"slug":"neon-cyber","name":"Neon Cyber","category":"premium"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer upstream.Close()

			client, _ := testClient(t, upstream)
			repo := NewTemplateRepository(client)

			templates, err := repo.ListTemplates(context.Background())
			require.NoError(t, err)
			require.Len(t, templates, 1)
			assert.Equal(t, "neon-cyber", templates[0].Slug)
		})
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"401 maps to unauthorized", http.StatusUnauthorized, repository.ErrUnauthorized},
		{"404 maps to not found", http.StatusNotFound, repository.ErrTemplateNotFound},
		{"500 maps to upstream", http.StatusInternalServerError, repository.ErrUpstream},
		{"502 maps to upstream", http.StatusBadGateway, repository.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer upstream.Close()

			client, _ := testClient(t, upstream)
			repo := NewTemplateRepository(client)

			_, err := repo.FindTemplateBySlug(context.Background(), "neon-cyber")
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
		})
	}
}

func TestStatusRepository_UsesSlugPaths(t *testing.T) {
	var calls []string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)
	repo := NewStatusRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.SaveTemplate(ctx, "neon-cyber"))
	require.NoError(t, repo.UnsaveTemplate(ctx, "neon-cyber"))
	require.NoError(t, repo.MarkTemplateUsed(ctx, "neon-cyber"))
	require.NoError(t, repo.MarkTemplateUnused(ctx, "neon-cyber"))

	assert.Equal(t, []string{
		"POST /templates/saved/neon-cyber",
		"DELETE /templates/saved/neon-cyber",
		"POST /templates/used/neon-cyber",
		"DELETE /templates/used/neon-cyber",
	}, calls)
}

func TestProfileRepository_CurrentUserNormalization(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": 7,
			"name": "Juan Dela Cruz",
			"username": "juan",
			"email": "juan@example.com",
			"profile_image": "avatars/juan.png",
			"profile": {
				"bio": "Designer",
				"phone": 639170000000,
				"socialLinks": "[{\"id\":\"1\",\"platform\":\"facebook\",\"url\":\"https://fb.com/juan\",\"isVisible\":1}]"
			}
		}`))
	}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)
	repo := NewProfileRepository(client)

	user, err := repo.CurrentUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://images.juantap.ph/avatars/juan.png", user.AvatarURL)
	assert.Equal(t, "639170000000", user.Contact.Phone)
	require.Len(t, user.Contact.SocialLinks, 1)
	assert.Equal(t, "facebook", user.Contact.SocialLinks[0].Platform)
	assert.True(t, user.Contact.SocialLinks[0].IsVisible.Bool())
}

func TestProfileRepository_MissingAvatarGetsDefault(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 7, "username": "juan"}`))
	}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)
	repo := NewProfileRepository(client)

	user, err := repo.CurrentUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://juantap.ph/default-avatar.png", user.AvatarURL)
}

func TestClient_AbsolutizeAvatar(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"absolute https passes through", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"absolute http passes through", "http://cdn.example.com/a.png", "http://cdn.example.com/a.png"},
		{"bare path joined to image origin", "avatars/juan.png", "https://images.juantap.ph/avatars/juan.png"},
		{"leading slash stripped", "/avatars/juan.png", "https://images.juantap.ph/avatars/juan.png"},
		{"empty gets frontend default", "", "https://juantap.ph/default-avatar.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.absolutizeAvatar(tt.raw))
		})
	}
}

func TestProfileRepository_LoginRequiresToken(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)
	repo := NewProfileRepository(client)

	_, err := repo.Login(context.Background(), repository.Credentials{Email: "juan@example.com", Password: "secret"})
	assert.True(t, errors.Is(err, repository.ErrUpstream))
}
