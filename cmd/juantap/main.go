package main

import (
	"context"
	"log/slog"
	"os"

	"juantap/config"
	"juantap/internal/delivery"
	"juantap/internal/delivery/http"
	"juantap/internal/delivery/http/middleware"
	"juantap/internal/delivery/http/router/handler"
	sharedmiddleware "juantap/internal/delivery/middleware"
	"juantap/internal/domain/service"
	"juantap/internal/infra/api"
	logs "juantap/internal/infra/log"
	"juantap/internal/infra/qrcode"
	"juantap/internal/infra/render"
	"juantap/internal/infra/session"
	"juantap/internal/infra/vcard"
	"juantap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		api.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewTemplateRepository,
			api.NewStatusRepository,
			api.NewProfileRepository,
			api.NewAdminRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			session.New,
			render.NewCardRenderer,
			vcard.NewVCardService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", 90)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.JPEGQuality)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStatusService,
			impl.NewGalleryService,
			impl.NewShareService,
			impl.NewProfileService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			sharedmiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGalleryHandler,
			handler.NewStatusHandler,
			handler.NewShareHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
