package service

import (
	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/database/model"
)

// CoreValueService manages the "core values" shown on the about page.
type CoreValueService struct{}

func (s *CoreValueService) GetAll() ([]model.CoreValue, error) {
	db := database.GetDB()
	values := make([]model.CoreValue, 0)
	err := db.Order("title asc").Find(&values).Error
	return values, err
}

func (s *CoreValueService) Create(value *model.CoreValue) error {
	return database.GetDB().Create(value).Error
}

func (s *CoreValueService) Update(id int, value *model.CoreValue) (*model.CoreValue, error) {
	db := database.GetDB()

	err := db.Model(model.CoreValue{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       value.Title,
			"description": value.Description,
			"icon":        value.Icon,
		}).
		Error
	if err != nil {
		return nil, err
	}

	updated := &model.CoreValue{}
	err = db.First(updated, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CoreValueService) Delete(id int) error {
	result := database.GetDB().Delete(&model.CoreValue{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
