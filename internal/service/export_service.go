package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
	"fittracker/backend/internal/storage"
	"fittracker/backend/internal/telemetry/metrics"
)

var (
	ErrExportDisabled = errors.New("workout export storage is not configured")
)

// WorkoutExport is the document uploaded to object storage.
type WorkoutExport struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Workouts   []domain.Workout `json:"workouts"`
	Stats      domain.UserStats `json:"stats"`
}

// ExportResult points at an uploaded export.
type ExportResult struct {
	ObjectKey   string `json:"objectKey"`
	DownloadURL string `json:"downloadUrl"`
}

type ExportService interface {
	// ExportWorkouts uploads the whole workout history plus the current stats
	// and returns a presigned download link.
	ExportWorkouts(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	store          repository.Store
	objectStorage  storage.ObjectStorage
	urlExpiry      time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time
}

// NewExportService accepts a nil objectStorage; every export then fails with ErrExportDisabled.
func NewExportService(store repository.Store, objectStorage storage.ObjectStorage, urlExpiry time.Duration, metricsManager *metrics.Manager) ExportService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		store:          store,
		objectStorage:  objectStorage,
		urlExpiry:      urlExpiry,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *exportService) ExportWorkouts(ctx context.Context) (*ExportResult, error) {
	if s.objectStorage == nil {
		return nil, ErrExportDisabled
	}

	workouts, err := s.store.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	stats, err := s.store.GetUserStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}

	now := s.now().UTC()
	body, err := json.Marshal(WorkoutExport{
		ExportedAt: now,
		Workouts:   workouts,
		Stats:      *stats,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	objectKey := fmt.Sprintf("exports/workouts-%s-%s.json", now.Format("20060102T150405Z"), uuid.NewString())
	if err := s.objectStorage.PutObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.objectStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		// an export nobody can download is removed again
		if delErr := s.objectStorage.DeleteObject(ctx, objectKey); delErr != nil {
			log.WithError(delErr).WithField("object_key", objectKey).Warn("failed to remove undownloadable export")
		}
		return nil, fmt.Errorf("presign export: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterExports.Inc()
	}
	log.WithFields(log.Fields{
		"object_key": objectKey,
		"workouts":   len(workouts),
	}).Info("workout history exported")

	return &ExportResult{ObjectKey: objectKey, DownloadURL: url}, nil
}
