// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"context"

	"juantap/internal/domain/entity"
)

// GalleryItem is one template of the gallery together with its rendered
// preview card.
type GalleryItem struct {
	Template *entity.Template `json:"template"`
	Card     *entity.CardView `json:"card"`
}

// GalleryView is the filtered, partitioned catalog. Free and premium are
// derived views over the same fetched list; the source is never mutated.
type GalleryView struct {
	Query   string         `json:"query"`
	Free    []*GalleryItem `json:"free"`
	Premium []*GalleryItem `json:"premium"`
}

// TemplateDetail is one template with its preview card and the viewer's
// current status for it.
type TemplateDetail struct {
	Template *entity.Template      `json:"template"`
	Card     *entity.CardView      `json:"card"`
	Status   entity.TemplateStatus `json:"status"`
}

// GalleryUsecase drives the template gallery and detail pages.
type GalleryUsecase interface {
	// BrowseGallery fetches the catalog once and partitions it into free and
	// premium sections matching the free-text query (case-insensitive name
	// substring). Each visible template is rendered with the current user's
	// profile when one is available.
	BrowseGallery(ctx context.Context, query string) (*GalleryView, error)

	// TemplateDetail resolves one template by slug with preview and status.
	TemplateDetail(ctx context.Context, slug string) (*TemplateDetail, error)
}
