package service

import (
	"context"
	"mime/multipart"

	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/database/model"
)

const equipmentKeyPrefix = "equipments"

// EquipmentService manages rental equipment entries and their photos.
type EquipmentService struct {
	uploads *UploadService
}

func NewEquipmentService(uploads *UploadService) *EquipmentService {
	return &EquipmentService{uploads: uploads}
}

func (s *EquipmentService) GetAll() ([]model.Equipment, error) {
	db := database.GetDB()
	equipments := make([]model.Equipment, 0)
	err := db.Order("equipment_name asc").Find(&equipments).Error
	return equipments, err
}

func (s *EquipmentService) Create(ctx context.Context, name string, description string, file *multipart.FileHeader) (*model.Equipment, error) {
	key, err := s.uploads.Store(ctx, equipmentKeyPrefix, file)
	if err != nil {
		return nil, err
	}

	equipment := &model.Equipment{
		EquipmentName:  name,
		Description:    description,
		EquipmentImage: key,
	}
	if err := database.GetDB().Create(equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *EquipmentService) Update(ctx context.Context, id int, name string, description string, file *multipart.FileHeader, oldKey string) (*model.Equipment, error) {
	db := database.GetDB()

	err := db.First(&model.Equipment{}, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	newKey := oldKey
	if file != nil {
		key, err := s.uploads.Store(ctx, equipmentKeyPrefix, file)
		if err != nil {
			return nil, err
		}
		newKey = key
	}

	err = db.Model(model.Equipment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"equipment_name":  name,
			"description":     description,
			"equipment_image": newKey,
		}).
		Error
	if err != nil {
		return nil, err
	}

	if file != nil && oldKey != "" {
		s.uploads.Remove(ctx, oldKey)
	}

	equipment := &model.Equipment{}
	if err := db.First(equipment, id).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *EquipmentService) Delete(ctx context.Context, id int) error {
	db := database.GetDB()

	equipment := &model.Equipment{}
	err := db.First(equipment, id).Error
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	if equipment.EquipmentImage != "" {
		s.uploads.Remove(ctx, equipment.EquipmentImage)
	}

	result := db.Delete(&model.Equipment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
