package impl

import (
	"context"
	"testing"

	"juantap/internal/domain/entity"
	domainerrors "juantap/internal/domain/errors"
	"juantap/internal/domain/repository"
	"juantap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminRepo records submitted templates and payment decisions.
type fakeAdminRepo struct {
	created   []*entity.Template
	updated   map[string]*entity.Template
	payments  []*repository.Payment
	decisions []string
	err       error
}

func (f *fakeAdminRepo) ListAllTemplates(ctx context.Context, includeHidden bool) ([]*entity.Template, error) {
	return nil, f.err
}

func (f *fakeAdminRepo) CreateTemplate(ctx context.Context, template *entity.Template) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, template)

	return nil
}

func (f *fakeAdminRepo) UpdateTemplate(ctx context.Context, slug string, template *entity.Template) error {
	if f.err != nil {
		return f.err
	}
	if f.updated == nil {
		f.updated = make(map[string]*entity.Template)
	}
	f.updated[slug] = template

	return nil
}

func (f *fakeAdminRepo) ListPayments(ctx context.Context) ([]*repository.Payment, error) {
	return f.payments, f.err
}

func (f *fakeAdminRepo) ApprovePayment(ctx context.Context, paymentID int64) error {
	f.decisions = append(f.decisions, "approve")

	return f.err
}

func (f *fakeAdminRepo) DisapprovePayment(ctx context.Context, paymentID int64) error {
	f.decisions = append(f.decisions, "disapprove")

	return f.err
}

func newTestAdminService(repo *fakeAdminRepo) usecase.AdminUsecase {
	return NewAdminService(AdminServiceParams{AdminRepo: repo})
}

func TestAdminService_CreateTemplateGeneratesSlugAndPrice(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := newTestAdminService(repo)

	template, err := svc.CreateTemplate(context.Background(), usecase.TemplateInput{
		Name:          "Neon Cyber 2",
		Category:      entity.CategoryPremium,
		OriginalPrice: 399,
		Discount:      25,
	})
	require.NoError(t, err)

	assert.Equal(t, "neon-cyber-2", template.Slug)
	assert.InDelta(t, 299.25, template.Price, 0.001)
	require.Len(t, repo.created, 1)
	assert.Same(t, template, repo.created[0])
}

func TestAdminService_CreateTemplateKeepsExplicitSlug(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := newTestAdminService(repo)

	template, err := svc.CreateTemplate(context.Background(), usecase.TemplateInput{
		Slug:     "custom-slug",
		Name:     "Some Name",
		Category: entity.CategoryFree,
	})
	require.NoError(t, err)

	assert.Equal(t, "custom-slug", template.Slug)
}

func TestAdminService_CreateTemplateValidation(t *testing.T) {
	svc := newTestAdminService(&fakeAdminRepo{})

	tests := []struct {
		name  string
		input usecase.TemplateInput
	}{
		{"missing name", usecase.TemplateInput{Category: entity.CategoryFree}},
		{"unknown category", usecase.TemplateInput{Name: "X", Category: "deluxe"}},
		{"negative price", usecase.TemplateInput{Name: "X", Category: entity.CategoryFree, OriginalPrice: -1}},
		{"discount above 100", usecase.TemplateInput{Name: "X", Category: entity.CategoryFree, Discount: 150}},
		{"unsluggable name", usecase.TemplateInput{Name: "!!!", Category: entity.CategoryFree}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTemplate(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAdminService_UpdateTemplateKeepsPathSlug(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := newTestAdminService(repo)

	template, err := svc.UpdateTemplate(context.Background(), "neon-cyber", usecase.TemplateInput{
		Slug:          "attempted-rename",
		Name:          "Neon Cyber",
		Category:      entity.CategoryPremium,
		OriginalPrice: 499,
		Discount:      10,
	})
	require.NoError(t, err)

	// The slug is immutable; the path parameter wins over the form value.
	assert.Equal(t, "neon-cyber", template.Slug)
	assert.InDelta(t, 449.1, template.Price, 0.001)
	assert.Contains(t, repo.updated, "neon-cyber")
}

func TestAdminService_PaymentDecisions(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := newTestAdminService(repo)
	ctx := context.Background()

	require.NoError(t, svc.ApprovePayment(ctx, 7))
	require.NoError(t, svc.DisapprovePayment(ctx, 8))

	assert.Equal(t, []string{"approve", "disapprove"}, repo.decisions)
}
