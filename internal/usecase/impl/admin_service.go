package impl

import (
	"context"
	"strings"

	"juantap/internal/domain/entity"
	domainerrors "juantap/internal/domain/errors"
	"juantap/internal/domain/repository"
	"juantap/internal/errors"
	"juantap/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

type adminService struct {
	adminRepo repository.AdminRepository
	validate  *validator.Validate
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo repository.AdminRepository
}

// NewAdminService creates the admin catalog and payment usecase.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		adminRepo: params.AdminRepo,
		validate:  validator.New(),
	}
}

// ListTemplates retrieves the catalog for the admin table.
func (a *adminService) ListTemplates(ctx context.Context, includeHidden bool) ([]*entity.Template, error) {
	templates, err := a.adminRepo.ListAllTemplates(ctx, includeHidden)
	if err != nil {
		return nil, errors.Wrap(err, "list all templates")
	}

	return templates, nil
}

// CreateTemplate builds a template from the form input and submits it. A
// missing slug is generated from the name; the selling price is always
// recomputed from original price and discount.
func (a *adminService) CreateTemplate(ctx context.Context, input usecase.TemplateInput) (*entity.Template, error) {
	template, err := a.fromInput(input)
	if err != nil {
		return nil, err
	}

	if template.Slug == "" {
		template.Slug = entity.GenerateSlug(template.Name)
	}
	if template.Slug == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	if err := a.adminRepo.CreateTemplate(ctx, template); err != nil {
		return nil, errors.Wrap(err, "create template")
	}

	return template, nil
}

// UpdateTemplate applies the form input to an existing template. The slug
// path parameter identifies the template and never changes.
func (a *adminService) UpdateTemplate(ctx context.Context, slug string, input usecase.TemplateInput) (*entity.Template, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domainerrors.ErrTemplateNotFound
	}

	template, err := a.fromInput(input)
	if err != nil {
		return nil, err
	}
	template.Slug = slug

	if err := a.adminRepo.UpdateTemplate(ctx, slug, template); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, domainerrors.ErrTemplateNotFound
		}

		return nil, errors.Wrapf(err, "update template %s", slug)
	}

	return template, nil
}

// ListPayments retrieves premium payments for review.
func (a *adminService) ListPayments(ctx context.Context) ([]*repository.Payment, error) {
	payments, err := a.adminRepo.ListPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list payments")
	}

	return payments, nil
}

// ApprovePayment approves a pending payment.
func (a *adminService) ApprovePayment(ctx context.Context, paymentID int64) error {
	if err := a.adminRepo.ApprovePayment(ctx, paymentID); err != nil {
		return errors.Wrapf(err, "approve payment %d", paymentID)
	}

	return nil
}

// DisapprovePayment rejects a pending payment.
func (a *adminService) DisapprovePayment(ctx context.Context, paymentID int64) error {
	if err := a.adminRepo.DisapprovePayment(ctx, paymentID); err != nil {
		return errors.Wrapf(err, "disapprove payment %d", paymentID)
	}

	return nil
}

// fromInput validates the form and materializes the template with its
// derived price.
func (a *adminService) fromInput(input usecase.TemplateInput) (*entity.Template, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed
	}

	template := &entity.Template{
		Slug:        strings.TrimSpace(input.Slug),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Category:    input.Category,
		Colors:      input.Colors,
		Fonts:       input.Fonts,
		Layout:      input.Layout,
		Tags:        input.Tags,
	}
	template.SetOriginalPrice(input.OriginalPrice)
	template.SetDiscount(input.Discount)

	return template, nil
}
