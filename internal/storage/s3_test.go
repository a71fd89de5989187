package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittracker/backend/internal/config"
)

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "", endpointURL("", true))
	assert.Equal(t, "https://minio:9000", endpointURL("minio:9000", true))
	assert.Equal(t, "http://minio:9000", endpointURL("minio:9000", false))
	assert.Equal(t, "http://localhost:9000", endpointURL("http://localhost:9000", true))
}

func newTestStorage(t *testing.T, endpoint string) ObjectStorage {
	t.Helper()
	s, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		BucketName:      "exports",
	})
	require.NoError(t, err)
	return s
}

func TestS3Storage_PutObject(t *testing.T) {
	var gotPath, gotBody, gotType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := newTestStorage(t, server.URL)
	err := s.PutObject(context.Background(), "exports/workouts.json", "application/json", []byte(`[]`))
	require.NoError(t, err)

	assert.Equal(t, "/exports/exports/workouts.json", gotPath)
	assert.Equal(t, "application/json", gotType)
	assert.Contains(t, gotBody, "[]")
}

func TestS3Storage_PutObject_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`))
	}))
	defer server.Close()

	s := newTestStorage(t, server.URL)
	err := s.PutObject(context.Background(), "k", "application/json", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `put object "k"`)
}

func TestS3Storage_PresignedDownloadURL(t *testing.T) {
	s := newTestStorage(t, "http://localhost:9000")

	url, err := s.GeneratePresignedDownloadURL(context.Background(), "exports/a.json", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/exports/exports/a.json?"), url)
	assert.Contains(t, url, "X-Amz-Expires=300")
	assert.Contains(t, url, "X-Amz-Signature=")
}
