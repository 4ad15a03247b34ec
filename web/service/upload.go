// Package service implements the content operations behind the web
// controllers: credential checks, entity CRUD and the image upload
// pipeline against the blob store.
package service

import (
	"context"
	"mime/multipart"

	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/storage"
)

// MaxFileSize is the upload ceiling for every image-accepting endpoint.
const MaxFileSize = 5 * 1024 * 1024 // 5 MiB

// allowedImageTypes is the single constraint table shared by every
// image-bearing entity. Validation runs server-side regardless of what
// the admin UI already checked.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService validates incoming image files and moves them in and
// out of the blob store. It never touches the database; entity services
// order the blob and DB writes so a stored reference always points at
// an existing object.
type UploadService struct {
	blob storage.ObjectStore
}

func NewUploadService(blob storage.ObjectStore) *UploadService {
	return &UploadService{blob: blob}
}

// ValidateImage checks the declared content type and size of an upload.
// The returned error names the rule that was broken.
func (s *UploadService) ValidateImage(file *multipart.FileHeader) error {
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return newValidationError("Invalid file type. Only JPEG, PNG, GIF, and WebP images are allowed.")
	}
	if file.Size > MaxFileSize {
		return newValidationError("File size too large. Maximum size is 5MB.")
	}
	return nil
}

// Store validates and uploads a file under a fresh key namespaced by
// entity type. A failed upload aborts before any DB write happens.
func (s *UploadService) Store(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	return s.store(ctx, storage.ObjectKey(prefix, file.Filename), file)
}

// StoreIndexed is Store for entities with multiple image slots; the
// slot index becomes part of the key.
func (s *UploadService) StoreIndexed(ctx context.Context, prefix string, index int, file *multipart.FileHeader) (string, error) {
	return s.store(ctx, storage.ObjectKeyIndexed(prefix, index, file.Filename), file)
}

func (s *UploadService) store(ctx context.Context, key string, file *multipart.FileHeader) (string, error) {
	if err := s.ValidateImage(file); err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := s.blob.Put(ctx, key, file.Header.Get("Content-Type"), f, file.Size); err != nil {
		return "", err
	}
	return key, nil
}

// Remove deletes objects best-effort. Cleanup failures are logged and
// swallowed: a leaked blob is preferable to failing the operation the
// user asked for.
func (s *UploadService) Remove(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.blob.Delete(ctx, key); err != nil {
			logger.Warningf("failed to delete blob %s: %v", key, err)
			continue
		}
		logger.Debug("deleted blob:", key)
	}
}
