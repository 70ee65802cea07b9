package main

import (
	"context"
	"log/slog"
	"os"

	"smilelink/config"
	"smilelink/internal/delivery"
	deliveryhttp "smilelink/internal/delivery/http"
	"smilelink/internal/delivery/http/handler"
	"smilelink/internal/delivery/watcher"
	"smilelink/internal/domain/repository"
	"smilelink/internal/domain/service"
	"smilelink/internal/infra/api"
	"smilelink/internal/infra/auth"
	"smilelink/internal/infra/auth/google"
	"smilelink/internal/infra/events"
	logs "smilelink/internal/infra/log"
	"smilelink/internal/infra/mock"
	"smilelink/internal/infra/prefs"
	"smilelink/internal/infra/session"
	"smilelink/internal/usecase/impl"

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
		mock.NewStore,
	)
}

// The api.useMock switch picks the data source once, at wiring time. Every
// repository provider below resolves against the same flag so the whole graph
// is either live or seeded, never a mix.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewFileStore,
			prefs.NewFileStore,
			newChildRepository,
			newSponsorRepository,
			newSponsorshipRepository,
			newDeliveryRepository,
			newDeliveryPointRepository,
			newGiftRequestRepository,
			newAuthRepository,
		),
	)
}

func newChildRepository(cfg *config.Config, client *api.Client, store *mock.Store) repository.ChildRepository {
	if cfg.API.UseMock {
		return mock.NewChildRepository(store)
	}

	return api.NewChildRepository(client)
}

func newSponsorRepository(cfg *config.Config, client *api.Client, store *mock.Store) repository.SponsorRepository {
	if cfg.API.UseMock {
		return mock.NewSponsorRepository(store)
	}

	return api.NewSponsorRepository(client)
}

func newSponsorshipRepository(cfg *config.Config, client *api.Client, store *mock.Store) repository.SponsorshipRepository {
	if cfg.API.UseMock {
		return mock.NewSponsorshipRepository(store)
	}

	return api.NewSponsorshipRepository(client)
}

func newDeliveryRepository(cfg *config.Config, client *api.Client, store *mock.Store) repository.DeliveryRepository {
	if cfg.API.UseMock {
		return mock.NewDeliveryRepository(store)
	}

	return api.NewDeliveryRepository(client)
}

func newDeliveryPointRepository(cfg *config.Config, client *api.Client, store *mock.Store) repository.DeliveryPointRepository {
	if cfg.API.UseMock {
		return mock.NewDeliveryPointRepository(store)
	}

	return api.NewDeliveryPointRepository(client)
}

func newGiftRequestRepository(cfg *config.Config, client *api.Client, store *mock.Store) repository.GiftRequestRepository {
	if cfg.API.UseMock {
		return mock.NewGiftRequestRepository(store)
	}

	return api.NewGiftRequestRepository(client)
}

func newAuthRepository(cfg *config.Config, client *api.Client, store *mock.Store) repository.AuthRepository {
	if cfg.API.UseMock {
		return mock.NewAuthRepository(store)
	}

	return api.NewAuthRepository(client)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			google.NewAuthService,
			events.NewJournal,
			newEventSink,
			newUploader,
		),
	)
}

func newUploader(cfg *config.Config, client *api.Client, store *mock.Store) service.Uploader {
	if cfg.API.UseMock {
		return mock.NewUploader(store)
	}

	return api.NewUploader(client)
}

func newEventSink(journal *events.Journal) service.EventSink {
	return journal
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewChildService,
			impl.NewSponsorService,
			impl.NewSponsorshipService,
			impl.NewDeliveryService,
			impl.NewDeliveryPointService,
			impl.NewGiftRequestService,
			impl.NewAuthService,
			impl.NewDashboardService,
			impl.NewNotifierService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatusHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				watcher.NewWatcher,
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
