package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittracker/backend/internal/repository/memory"
	"fittracker/backend/internal/storage"
	"fittracker/backend/internal/telemetry/metrics"
)

type fakeObjectStorage struct {
	objects    map[string][]byte
	presignErr error
	expiry     time.Duration
	deleted    []string
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (f *fakeObjectStorage) PutObject(_ context.Context, key, _ string, body []byte) error {
	f.objects[key] = body
	return nil
}

func (f *fakeObjectStorage) GeneratePresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	f.expiry = expires
	return "https://storage.example.com/" + key + "?signed", nil
}

func (f *fakeObjectStorage) DeleteObject(_ context.Context, key string) error {
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func TestExportService_Disabled(t *testing.T) {
	svc := NewExportService(memory.NewStore(), nil, 0, nil)
	_, err := svc.ExportWorkouts(context.Background())
	assert.ErrorIs(t, err, ErrExportDisabled)
}

func TestExportService_ExportWorkouts(t *testing.T) {
	store := memory.NewStore(memory.WithSeedData())
	objects := newFakeObjectStorage()
	m := metrics.NewTestManager()
	svc := NewExportService(store, objects, 10*time.Minute, m)

	result, err := svc.ExportWorkouts(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.ObjectKey, "exports/workouts-"))
	assert.True(t, strings.HasSuffix(result.ObjectKey, ".json"))
	assert.Contains(t, result.DownloadURL, result.ObjectKey)
	assert.Equal(t, 10*time.Minute, objects.expiry)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterExports))

	var export WorkoutExport
	require.NoError(t, json.Unmarshal(objects.objects[result.ObjectKey], &export))
	assert.Len(t, export.Workouts, 7)
	assert.Equal(t, 42, export.Stats.TotalWorkouts)
}

func TestExportService_PresignFailureRemovesObject(t *testing.T) {
	objects := newFakeObjectStorage()
	objects.presignErr = errors.New("no credentials")
	svc := NewExportService(memory.NewStore(), objects, 0, nil)

	_, err := svc.ExportWorkouts(context.Background())
	require.Error(t, err)
	assert.Empty(t, objects.objects)
	require.Len(t, objects.deleted, 1)
	assert.Equal(t, storage.DefaultPresignedURLExpiry, svc.(*exportService).urlExpiry)
}
