package applications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sl "driver_service/internal/lib/logger"
	"driver_service/internal/models"
	"driver_service/internal/storage"
)

var ErrNotFound = errors.New("application not found")

type AppSaver interface {
	SaveApplication(ctx context.Context, app models.Application) (models.Application, error)
}

type AppProvider interface {
	ApplicationByID(ctx context.Context, id string) (models.Application, error)
	Applications(ctx context.Context, skip, limit int64) ([]models.Application, error)
	CountApplications(ctx context.Context) (int64, error)
}

type AppUpdater interface {
	UpdateApplication(ctx context.Context, app models.Application) (models.Application, error)
}

// Pagination describes one page of the listing.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

type Page struct {
	Data       []models.Application `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// Applications manages driver application records: creation, paginated
// listing and archive toggling. Records are never deleted.
type Applications struct {
	log         *slog.Logger
	appSaver    AppSaver
	appProvider AppProvider
	appUpdater  AppUpdater
}

func New(
	log *slog.Logger,
	appSaver AppSaver,
	appProvider AppProvider,
	appUpdater AppUpdater,
) *Applications {
	return &Applications{
		log:         log,
		appSaver:    appSaver,
		appProvider: appProvider,
		appUpdater:  appUpdater,
	}
}

func (s *Applications) Create(ctx context.Context, app models.Application) (models.Application, error) {
	const op = "applications.Create"

	log := s.log.With(slog.String("op", op))

	app.Archived = false

	created, err := s.appSaver.SaveApplication(ctx, app)
	if err != nil {
		log.Error("failed to save application", sl.Err(err))
		return models.Application{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("application created", slog.String("id", created.ID.Hex()))

	return created, nil
}

// List returns one page of records in insertion order. page and limit are
// assumed to be >= 1; the handler normalizes raw query input.
func (s *Applications) List(ctx context.Context, page, limit int) (Page, error) {
	const op = "applications.List"

	log := s.log.With(slog.String("op", op))

	total, err := s.appProvider.CountApplications(ctx)
	if err != nil {
		log.Error("failed to count applications", sl.Err(err))
		return Page{}, fmt.Errorf("%s: %w", op, err)
	}

	skip := int64(page-1) * int64(limit)

	apps, err := s.appProvider.Applications(ctx, skip, int64(limit))
	if err != nil {
		log.Error("failed to list applications", sl.Err(err))
		return Page{}, fmt.Errorf("%s: %w", op, err)
	}

	return Page{
		Data: apps,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

// ToggleArchive flips the archived flag and persists the record.
func (s *Applications) ToggleArchive(ctx context.Context, id string) (models.Application, error) {
	const op = "applications.ToggleArchive"

	log := s.log.With(slog.String("op", op))

	app, err := s.appProvider.ApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrApplicationNotFound) {
			log.Warn("application not found", slog.String("id", id))
			return models.Application{}, ErrNotFound
		}

		log.Error("failed to get application", sl.Err(err))
		return models.Application{}, fmt.Errorf("%s: %w", op, err)
	}

	app.ToggleArchived()

	updated, err := s.appUpdater.UpdateApplication(ctx, app)
	if err != nil {
		if errors.Is(err, storage.ErrApplicationNotFound) {
			return models.Application{}, ErrNotFound
		}

		log.Error("failed to update application", sl.Err(err))
		return models.Application{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("application archive toggled",
		slog.String("id", id),
		slog.Bool("archived", updated.Archived),
	)

	return updated, nil
}
