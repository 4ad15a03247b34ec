package service

import (
	"context"
	"mime/multipart"

	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/database/model"
)

const brandKeyPrefix = "brands"

// BrandService manages manufacturer brands and their logo images.
type BrandService struct {
	uploads *UploadService
}

func NewBrandService(uploads *UploadService) *BrandService {
	return &BrandService{uploads: uploads}
}

func (s *BrandService) GetAll() ([]model.Brand, error) {
	db := database.GetDB()
	brands := make([]model.Brand, 0)
	err := db.Order("brand_name asc").Find(&brands).Error
	return brands, err
}

// Create uploads the logo first, then inserts the row. An upload
// failure leaves no dangling DB reference; an insert failure after a
// successful upload leaks the blob, which is logged and accepted.
func (s *BrandService) Create(ctx context.Context, name string, file *multipart.FileHeader) (*model.Brand, error) {
	key, err := s.uploads.Store(ctx, brandKeyPrefix, file)
	if err != nil {
		return nil, err
	}

	brand := &model.Brand{
		BrandName:  name,
		BrandImage: key,
	}
	if err := database.GetDB().Create(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

// Update swaps the logo when a new file is supplied: upload-new, update
// the DB reference, then best-effort delete of the old key. Without a
// new file the caller-supplied old key is preserved unchanged.
func (s *BrandService) Update(ctx context.Context, id int, name string, file *multipart.FileHeader, oldKey string) (*model.Brand, error) {
	db := database.GetDB()

	err := db.First(&model.Brand{}, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	newKey := oldKey
	if file != nil {
		key, err := s.uploads.Store(ctx, brandKeyPrefix, file)
		if err != nil {
			return nil, err
		}
		newKey = key
	}

	err = db.Model(model.Brand{}).
		Where("id = ?", id).
		Updates(map[string]any{"brand_name": name, "brand_image": newKey}).
		Error
	if err != nil {
		return nil, err
	}

	if file != nil && oldKey != "" {
		s.uploads.Remove(ctx, oldKey)
	}

	brand := &model.Brand{}
	if err := db.First(brand, id).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

// Delete removes the logo best-effort, then the row. Reports ErrNotFound
// unless a row was actually removed.
func (s *BrandService) Delete(ctx context.Context, id int) error {
	db := database.GetDB()

	brand := &model.Brand{}
	err := db.First(brand, id).Error
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	if brand.BrandImage != "" {
		s.uploads.Remove(ctx, brand.BrandImage)
	}

	result := db.Delete(&model.Brand{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
