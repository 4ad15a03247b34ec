package service

import (
	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/database/model"
	"github.com/jsprime/prime-cms/web/entity"
)

// DashboardService aggregates collection counts for the admin home.
type DashboardService struct{}

func (s *DashboardService) Counts() (*entity.DashboardCounts, error) {
	db := database.GetDB()

	counts := &entity.DashboardCounts{}
	if err := db.Model(model.Equipment{}).Count(&counts.Equipment).Error; err != nil {
		return nil, err
	}
	if err := db.Model(model.Brand{}).Count(&counts.Brands).Error; err != nil {
		return nil, err
	}
	if err := db.Model(model.Project{}).Count(&counts.Projects).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
