package services

import (
	"arka/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FolderService handles business logic for the folder hierarchy
type FolderService struct {
	repo       FolderRepository
	categories *CategoryService
	audit      *AuditService
}

// NewFolderService creates a new folder service
func NewFolderService(repo FolderRepository, categories *CategoryService, audit *AuditService) *FolderService {
	return &FolderService{
		repo:       repo,
		categories: categories,
		audit:      audit,
	}
}

// Create creates a folder; the name must be unique among its siblings.
func (fs *FolderService) Create(actor *models.Session, req *models.CreateFolderRequest) (*models.Folder, error) {
	if _, err := fs.categories.Get(actor, req.CategoryID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := fs.repo.GetFolder(*req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.CategoryID != req.CategoryID {
			return nil, ErrFolderNotFound
		}
	}

	name := strings.TrimSpace(req.Name)
	existing, err := fs.repo.GetFolderByName(req.CategoryID, req.ParentID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFolderAlreadyExists
	}

	now := time.Now()
	folder := &models.Folder{
		ID:         uuid.New().String(),
		CategoryID: req.CategoryID,
		ParentID:   req.ParentID,
		Name:       name,
		CreatedBy:  actor.MemberID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := fs.repo.CreateFolder(folder); err != nil {
		return nil, err
	}

	fs.audit.Record(actor.FamilyID, actor.MemberID, "folder.create", "folder", folder.ID, name)
	return folder, nil
}

// Get returns a folder the caller can see.
func (fs *FolderService) Get(actor *models.Session, folderID string) (*models.Folder, error) {
	folder, err := fs.repo.GetFolder(folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	if _, err := fs.categories.Get(actor, folder.CategoryID); err != nil {
		return nil, err
	}
	return folder, nil
}

// ListChildren lists direct subfolders. A nil parentID lists the category root.
func (fs *FolderService) ListChildren(actor *models.Session, categoryID string, parentID *string) ([]models.Folder, error) {
	if _, err := fs.categories.Get(actor, categoryID); err != nil {
		return nil, err
	}
	return fs.repo.GetChildFolders(categoryID, parentID)
}

// Path returns the chain from the category root down to the folder.
func (fs *FolderService) Path(actor *models.Session, folderID string) ([]models.Folder, error) {
	folder, err := fs.Get(actor, folderID)
	if err != nil {
		return nil, err
	}

	chain := []models.Folder{*folder}
	current := folder
	for current.ParentID != nil {
		parent, err := fs.repo.GetFolder(*current.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			break
		}
		chain = append([]models.Folder{*parent}, chain...)
		current = parent
	}

	return chain, nil
}

// Rename renames a folder; sibling uniqueness still holds.
func (fs *FolderService) Rename(actor *models.Session, folderID string, req *models.RenameFolderRequest) (*models.Folder, error) {
	folder, err := fs.Get(actor, folderID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != folder.Name {
		dup, err := fs.repo.GetFolderByName(folder.CategoryID, folder.ParentID, name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrFolderAlreadyExists
		}
	}

	if err := fs.repo.RenameFolder(folderID, name); err != nil {
		return nil, err
	}

	fs.audit.Record(actor.FamilyID, actor.MemberID, "folder.rename", "folder", folderID, name)
	return fs.repo.GetFolder(folderID)
}

// Move reparents a folder within its category. Moving under its own subtree
// is rejected: the destination's parent chain is walked upward and must not
// contain the folder being moved.
func (fs *FolderService) Move(actor *models.Session, folderID string, req *models.MoveFolderRequest) (*models.Folder, error) {
	folder, err := fs.Get(actor, folderID)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if *req.ParentID == folderID {
			return nil, ErrFolderCycle
		}

		dest, err := fs.repo.GetFolder(*req.ParentID)
		if err != nil {
			return nil, err
		}
		if dest == nil || dest.CategoryID != folder.CategoryID {
			return nil, ErrFolderNotFound
		}

		onChain, err := fs.isOnParentChain(dest, folderID)
		if err != nil {
			return nil, err
		}
		if onChain {
			return nil, ErrFolderCycle
		}
	}

	dup, err := fs.repo.GetFolderByName(folder.CategoryID, req.ParentID, folder.Name)
	if err != nil {
		return nil, err
	}
	if dup != nil && dup.ID != folderID {
		return nil, ErrFolderAlreadyExists
	}

	if err := fs.repo.MoveFolder(folderID, req.ParentID); err != nil {
		return nil, err
	}

	fs.audit.Record(actor.FamilyID, actor.MemberID, "folder.move", "folder", folderID, folder.Name)
	return fs.repo.GetFolder(folderID)
}

// Delete removes a folder and everything beneath it in one transaction.
func (fs *FolderService) Delete(actor *models.Session, folderID string) error {
	folder, err := fs.Get(actor, folderID)
	if err != nil {
		return err
	}

	ids, err := fs.collectSubtree(folder)
	if err != nil {
		return err
	}

	if err := fs.repo.DeleteFolderTree(ids); err != nil {
		return err
	}

	fs.audit.Record(actor.FamilyID, actor.MemberID, "folder.delete", "folder", folderID, folder.Name)
	return nil
}

// isOnParentChain walks upward from start and reports whether targetID
// appears among its ancestors (or is start itself).
func (fs *FolderService) isOnParentChain(start *models.Folder, targetID string) (bool, error) {
	current := start
	for current != nil {
		if current.ID == targetID {
			return true, nil
		}
		if current.ParentID == nil {
			return false, nil
		}
		parent, err := fs.repo.GetFolder(*current.ParentID)
		if err != nil {
			return false, err
		}
		current = parent
	}
	return false, nil
}

// collectSubtree returns the folder's id followed by every descendant id,
// parents before children.
func (fs *FolderService) collectSubtree(root *models.Folder) ([]string, error) {
	ids := []string{root.ID}
	queue := []string{root.ID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		children, err := fs.repo.GetChildFolders(root.CategoryID, &id)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}

	return ids, nil
}
