package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImageRejectsDisallowedType(t *testing.T) {
	uploads := NewUploadService(newFakeStore())

	err := uploads.ValidateImage(fileHeader(t, "notes.pdf", "application/pdf", 100))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "file type")
}

func TestValidateImageRejectsOversizedFile(t *testing.T) {
	uploads := NewUploadService(newFakeStore())

	// 6 MiB PNG: type is fine, size is not.
	err := uploads.ValidateImage(fileHeader(t, "big.png", "image/png", 6*1024*1024))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "size")
}

func TestValidateImageAcceptsAllowedTypes(t *testing.T) {
	uploads := NewUploadService(newFakeStore())

	for _, contentType := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		assert.NoError(t, uploads.ValidateImage(fileHeader(t, "pic", contentType, 1024)))
	}
}

func TestStoreRejectedFileWritesNothing(t *testing.T) {
	blob := newFakeStore()
	uploads := NewUploadService(blob)

	_, err := uploads.Store(context.Background(), "brands", fileHeader(t, "x.txt", "text/plain", 10))
	require.Error(t, err)
	assert.Empty(t, blob.puts)
}

func TestStoreUploadsUnderPrefix(t *testing.T) {
	blob := newFakeStore()
	uploads := NewUploadService(blob)

	key, err := uploads.Store(context.Background(), "brands", fileHeader(t, "logo one.png", "image/png", 2*1024*1024))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "brands/"))
	assert.NotContains(t, key, " ")
	assert.Contains(t, blob.objects, key)
}

func TestStorePropagatesUploadFailure(t *testing.T) {
	blob := newFakeStore()
	blob.putErr = errors.New("bucket unavailable")
	uploads := NewUploadService(blob)

	_, err := uploads.Store(context.Background(), "brands", fileHeader(t, "logo.png", "image/png", 100))
	require.Error(t, err)
	assert.False(t, IsValidation(err))
}

func TestRemoveSwallowsDeleteFailures(t *testing.T) {
	blob := newFakeStore()
	blob.delErr = errors.New("object locked")
	uploads := NewUploadService(blob)

	uploads.Remove(context.Background(), "brands/1-a.png", "", "brands/2-b.png")

	// Both non-empty keys were attempted despite the failures.
	assert.Equal(t, []string{"brands/1-a.png", "brands/2-b.png"}, blob.deletes)
}
