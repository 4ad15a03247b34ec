package service

import (
	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/database/model"
)

// MissionVisionService manages the singleton mission/vision document.
type MissionVisionService struct{}

// Get returns the document, or nil when nothing has been saved yet.
func (s *MissionVisionService) Get() (*model.MissionVision, error) {
	db := database.GetDB()

	mv := &model.MissionVision{}
	err := db.First(mv).Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return mv, nil
}

// Upsert creates the document on first write and overwrites it after.
func (s *MissionVisionService) Upsert(mission string, vision string) (*model.MissionVision, error) {
	db := database.GetDB()

	mv := &model.MissionVision{}
	err := db.First(mv).Error
	if err != nil && !database.IsNotFound(err) {
		return nil, err
	}

	mv.Mission = mission
	mv.Vision = vision
	if err := db.Save(mv).Error; err != nil {
		return nil, err
	}
	return mv, nil
}
