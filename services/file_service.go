package services

import (
	"arka/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileService handles file metadata and blob content
type FileService struct {
	repo    FileRepository
	folders *FolderService
	spaces  *SpaceService
	blobs   BlobStore
	audit   *AuditService
}

// NewFileService creates a new file service
func NewFileService(repo FileRepository, folders *FolderService, spaces *SpaceService, blobs BlobStore, audit *AuditService) *FileService {
	return &FileService{
		repo:    repo,
		folders: folders,
		spaces:  spaces,
		blobs:   blobs,
		audit:   audit,
	}
}

// Upload stores the content in the blob store and records the metadata row.
func (fls *FileService) Upload(actor *models.Session, folderID, name, mimeType string, data []byte, description string) (*models.File, error) {
	if _, err := fls.folders.Get(actor, folderID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	existing, err := fls.repo.GetFileByName(folderID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFileAlreadyExists
	}

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	now := time.Now()
	file := &models.File{
		ID:          uuid.New().String(),
		FolderID:    folderID,
		Name:        name,
		MimeType:    mimeType,
		SizeBytes:   int64(len(data)),
		StorageKey:  uuid.New().String(),
		Description: strings.TrimSpace(description),
		UploadedBy:  actor.MemberID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := fls.blobs.Put(file.StorageKey, data); err != nil {
		return nil, err
	}

	if err := fls.repo.CreateFile(file); err != nil {
		// Metadata insert failed; don't strand the blob
		fls.blobs.Delete(file.StorageKey)
		return nil, err
	}

	fls.audit.Record(actor.FamilyID, actor.MemberID, "file.upload", "file", file.ID, name)
	return file, nil
}

// Get returns file metadata the caller can see.
func (fls *FileService) Get(actor *models.Session, fileID string) (*models.File, error) {
	file, err := fls.repo.GetFile(fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	if _, err := fls.folders.Get(actor, file.FolderID); err != nil {
		return nil, err
	}
	return file, nil
}

// Download returns the metadata and blob content.
func (fls *FileService) Download(actor *models.Session, fileID string) (*models.File, []byte, error) {
	file, err := fls.Get(actor, fileID)
	if err != nil {
		return nil, nil, err
	}

	data, err := fls.blobs.Get(file.StorageKey)
	if err != nil {
		return nil, nil, err
	}

	return file, data, nil
}

// ListByFolder lists the files of a folder.
func (fls *FileService) ListByFolder(actor *models.Session, folderID string) ([]models.File, error) {
	if _, err := fls.folders.Get(actor, folderID); err != nil {
		return nil, err
	}
	return fls.repo.GetFilesByFolder(folderID)
}

// Search matches file names within a space the caller can see.
func (fls *FileService) Search(actor *models.Session, spaceID, query string, limit int) ([]models.File, error) {
	if _, err := fls.spaces.Get(actor, spaceID); err != nil {
		return nil, err
	}
	return fls.repo.SearchFilesInSpace(spaceID, query, limit)
}

// Rename renames a file; names stay unique per folder.
func (fls *FileService) Rename(actor *models.Session, fileID string, req *models.RenameFileRequest) (*models.File, error) {
	file, err := fls.Get(actor, fileID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != file.Name {
		dup, err := fls.repo.GetFileByName(file.FolderID, name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrFileAlreadyExists
		}
	}

	if err := fls.repo.RenameFile(fileID, name); err != nil {
		return nil, err
	}

	fls.audit.Record(actor.FamilyID, actor.MemberID, "file.rename", "file", fileID, name)
	return fls.repo.GetFile(fileID)
}

// Move relocates a file to another folder the caller can see.
func (fls *FileService) Move(actor *models.Session, fileID string, req *models.MoveFileRequest) (*models.File, error) {
	file, err := fls.Get(actor, fileID)
	if err != nil {
		return nil, err
	}

	if _, err := fls.folders.Get(actor, req.FolderID); err != nil {
		return nil, err
	}

	dup, err := fls.repo.GetFileByName(req.FolderID, file.Name)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, ErrFileAlreadyExists
	}

	if err := fls.repo.MoveFile(fileID, req.FolderID); err != nil {
		return nil, err
	}

	fls.audit.Record(actor.FamilyID, actor.MemberID, "file.move", "file", fileID, file.Name)
	return fls.repo.GetFile(fileID)
}

// UpdateDescription updates the free-text description.
func (fls *FileService) UpdateDescription(actor *models.Session, fileID string, req *models.UpdateFileRequest) (*models.File, error) {
	if _, err := fls.Get(actor, fileID); err != nil {
		return nil, err
	}

	if err := fls.repo.UpdateFileDescription(fileID, strings.TrimSpace(req.Description)); err != nil {
		return nil, err
	}

	return fls.repo.GetFile(fileID)
}

// Delete removes the metadata row and the blob. The blob removal is
// best-effort once the row is gone.
func (fls *FileService) Delete(actor *models.Session, fileID string) error {
	file, err := fls.Get(actor, fileID)
	if err != nil {
		return err
	}

	if err := fls.repo.DeleteFile(fileID); err != nil {
		return err
	}

	fls.blobs.Delete(file.StorageKey)
	fls.audit.Record(actor.FamilyID, actor.MemberID, "file.delete", "file", fileID, file.Name)
	return nil
}
