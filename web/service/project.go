package service

import (
	"context"
	"mime/multipart"

	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/database/model"
)

const projectKeyPrefix = "projects"

// ProjectService manages completed projects. Each project carries
// exactly two images; on update each slot is independently replaceable.
type ProjectService struct {
	uploads *UploadService
}

func NewProjectService(uploads *UploadService) *ProjectService {
	return &ProjectService{uploads: uploads}
}

func (s *ProjectService) GetAll() ([]model.Project, error) {
	db := database.GetDB()
	projects := make([]model.Project, 0)
	err := db.Order("created_at asc").Find(&projects).Error
	return projects, err
}

// Create requires both images. Both are validated before either is
// uploaded so a size or type violation writes nothing anywhere.
func (s *ProjectService) Create(ctx context.Context, title string, location string, image1, image2 *multipart.FileHeader) (*model.Project, error) {
	if err := s.uploads.ValidateImage(image1); err != nil {
		return nil, err
	}
	if err := s.uploads.ValidateImage(image2); err != nil {
		return nil, err
	}

	key1, err := s.uploads.StoreIndexed(ctx, projectKeyPrefix, 1, image1)
	if err != nil {
		return nil, err
	}
	key2, err := s.uploads.StoreIndexed(ctx, projectKeyPrefix, 2, image2)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:    title,
		Location: location,
		Images:   []string{key1, key2},
	}
	if err := database.GetDB().Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Update replaces images per slot: a slot without a new file keeps its
// caller-supplied old key, a slot with one gets a fresh upload. Old
// blobs are deleted best-effort only after the DB reference is swapped.
func (s *ProjectService) Update(ctx context.Context, id int, title string, location string,
	image1, image2 *multipart.FileHeader, oldImage1, oldImage2 string) (*model.Project, error) {

	db := database.GetDB()

	project := &model.Project{}
	err := db.First(project, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	for _, file := range []*multipart.FileHeader{image1, image2} {
		if file == nil {
			continue
		}
		if err := s.uploads.ValidateImage(file); err != nil {
			return nil, err
		}
	}

	key1, key2 := oldImage1, oldImage2
	var replaced []string

	if image1 != nil {
		key, err := s.uploads.StoreIndexed(ctx, projectKeyPrefix, 1, image1)
		if err != nil {
			return nil, err
		}
		key1 = key
		replaced = append(replaced, oldImage1)
	}
	if image2 != nil {
		key, err := s.uploads.StoreIndexed(ctx, projectKeyPrefix, 2, image2)
		if err != nil {
			return nil, err
		}
		key2 = key
		replaced = append(replaced, oldImage2)
	}

	project.Title = title
	project.Location = location
	project.Images = []string{key1, key2}
	if err := db.Save(project).Error; err != nil {
		return nil, err
	}

	s.uploads.Remove(ctx, replaced...)

	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int) error {
	db := database.GetDB()

	project := &model.Project{}
	err := db.First(project, id).Error
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	s.uploads.Remove(ctx, project.Images...)

	result := db.Delete(&model.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
