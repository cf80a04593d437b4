package services

import (
	"arka/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultCategoryColor = "#888888"

// CategoryService handles business logic for categories
type CategoryService struct {
	repo   CategoryRepository
	spaces *SpaceService
	audit  *AuditService
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository, spaces *SpaceService, audit *AuditService) *CategoryService {
	return &CategoryService{
		repo:   repo,
		spaces: spaces,
		audit:  audit,
	}
}

// Create creates a category inside a space the caller can see.
func (cs *CategoryService) Create(actor *models.Session, spaceID string, req *models.CreateCategoryRequest) (*models.Category, error) {
	if _, err := cs.spaces.Get(actor, spaceID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	existing, err := cs.repo.GetCategoryByName(spaceID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryAlreadyExists
	}

	color := req.Color
	if color == "" {
		color = defaultCategoryColor
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New().String(),
		SpaceID:   spaceID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := cs.repo.CreateCategory(category); err != nil {
		return nil, err
	}

	cs.audit.Record(actor.FamilyID, actor.MemberID, "category.create", "category", category.ID, name)
	return category, nil
}

// List returns the categories of a space.
func (cs *CategoryService) List(actor *models.Session, spaceID string) ([]models.Category, error) {
	if _, err := cs.spaces.Get(actor, spaceID); err != nil {
		return nil, err
	}
	return cs.repo.GetCategoriesBySpace(spaceID)
}

// Get returns a category the caller can see.
func (cs *CategoryService) Get(actor *models.Session, categoryID string) (*models.Category, error) {
	category, err := cs.repo.GetCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := cs.spaces.Get(actor, category.SpaceID); err != nil {
		return nil, err
	}
	return category, nil
}

// Update renames or recolors a category; the name stays unique per space.
func (cs *CategoryService) Update(actor *models.Session, categoryID string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := cs.Get(actor, categoryID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != category.Name {
		dup, err := cs.repo.GetCategoryByName(category.SpaceID, name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrCategoryAlreadyExists
		}
	}

	color := req.Color
	if color == "" {
		color = category.Color
	}

	if err := cs.repo.UpdateCategory(categoryID, name, color); err != nil {
		return nil, err
	}

	cs.audit.Record(actor.FamilyID, actor.MemberID, "category.update", "category", categoryID, name)
	return cs.repo.GetCategory(categoryID)
}

// Delete removes a category; folders and files cascade.
func (cs *CategoryService) Delete(actor *models.Session, categoryID string) error {
	category, err := cs.Get(actor, categoryID)
	if err != nil {
		return err
	}

	if err := cs.repo.DeleteCategory(categoryID); err != nil {
		return err
	}

	cs.audit.Record(actor.FamilyID, actor.MemberID, "category.delete", "category", categoryID, category.Name)
	return nil
}
