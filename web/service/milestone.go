package service

import (
	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/database/model"
)

// MilestoneService manages company-history milestones. No images, plain
// JSON CRUD.
type MilestoneService struct{}

func (s *MilestoneService) GetAll() ([]model.Milestone, error) {
	db := database.GetDB()
	milestones := make([]model.Milestone, 0)
	err := db.Order("year asc").Find(&milestones).Error
	return milestones, err
}

func (s *MilestoneService) Create(milestone *model.Milestone) error {
	return database.GetDB().Create(milestone).Error
}

func (s *MilestoneService) Update(id int, milestone *model.Milestone) (*model.Milestone, error) {
	db := database.GetDB()

	err := db.Model(model.Milestone{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"year":        milestone.Year,
			"title":       milestone.Title,
			"description": milestone.Description,
		}).
		Error
	if err != nil {
		return nil, err
	}

	updated := &model.Milestone{}
	err = db.First(updated, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *MilestoneService) Delete(id int) error {
	result := database.GetDB().Delete(&model.Milestone{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
