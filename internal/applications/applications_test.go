package applications_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"driver_service/internal/applications"
	"driver_service/internal/models"
	"driver_service/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakeAppStore struct {
	apps []models.Application
}

func (s *fakeAppStore) SaveApplication(_ context.Context, app models.Application) (models.Application, error) {
	app.ID = bson.NewObjectID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now

	s.apps = append(s.apps, app)

	return app, nil
}

func (s *fakeAppStore) ApplicationByID(_ context.Context, id string) (models.Application, error) {
	for _, app := range s.apps {
		if app.ID.Hex() == id {
			return app, nil
		}
	}

	return models.Application{}, storage.ErrApplicationNotFound
}

func (s *fakeAppStore) Applications(_ context.Context, skip, limit int64) ([]models.Application, error) {
	if skip >= int64(len(s.apps)) {
		return []models.Application{}, nil
	}

	end := skip + limit
	if end > int64(len(s.apps)) {
		end = int64(len(s.apps))
	}

	return s.apps[skip:end], nil
}

func (s *fakeAppStore) CountApplications(_ context.Context) (int64, error) {
	return int64(len(s.apps)), nil
}

func (s *fakeAppStore) UpdateApplication(_ context.Context, app models.Application) (models.Application, error) {
	for i := range s.apps {
		if s.apps[i].ID == app.ID {
			app.UpdatedAt = time.Now().UTC()
			s.apps[i] = app
			return app, nil
		}
	}

	return models.Application{}, storage.ErrApplicationNotFound
}

func newTestService(t *testing.T) (*applications.Applications, *fakeAppStore) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &fakeAppStore{}

	return applications.New(log, store, store, store), store
}

func testApplication(n int) models.Application {
	return models.Application{
		FullName:          fmt.Sprintf("Driver %d", n),
		PhoneNumber:       "555-0100",
		Email:             fmt.Sprintf("driver%d@example.com", n),
		CdlLicense:        fmt.Sprintf("CDL-%d", n),
		State:             "TX",
		DrivingExperience: "5 years",
		TruckTypes:        []string{"flatbed"},
		LongHaulTrips:     "yes",
	}
}

func TestCreate_DefaultsNotArchived(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	app := testApplication(1)
	app.Archived = true // caller input must not pre-archive a record

	created, err := svc.Create(context.Background(), app)
	require.NoError(t, err)

	assert.False(t, created.Archived)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())
}

func TestList_Pagination(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	for i := 0; i < 25; i++ {
		_, err := svc.Create(context.Background(), testApplication(i))
		require.NoError(t, err)
	}

	page1, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Data, 10)
	assert.Equal(t, int64(25), page1.Pagination.Total)
	assert.Equal(t, 1, page1.Pagination.Page)
	assert.Equal(t, 10, page1.Pagination.Limit)
	assert.Equal(t, int64(3), page1.Pagination.Pages)

	page3, err := svc.List(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Len(t, page3.Data, 5)

	// insertion order is preserved across pages
	assert.Equal(t, "driver0@example.com", page1.Data[0].Email)
	assert.Equal(t, "driver20@example.com", page3.Data[0].Email)
}

func TestList_PastTheEnd(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), testApplication(1))
	require.NoError(t, err)

	page, err := svc.List(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestToggleArchive_IdempotentPair(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), testApplication(1))
	require.NoError(t, err)

	once, err := svc.ToggleArchive(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.True(t, once.Archived)

	twice, err := svc.ToggleArchive(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.Archived, twice.Archived)
}

func TestToggleArchive_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.ToggleArchive(context.Background(), bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, applications.ErrNotFound)
}
