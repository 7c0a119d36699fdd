package services

import (
	"context"
	"fmt"
	"io"

	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	"github.com/plantify-app/plantify-backend/internal/storage"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileService pushes uploads to object storage and keeps their records.
type FileService struct {
	uploader storage.Uploader
	repo     *repository.FileRepository
	folder   string
}

// NewFileService creates a new instance of FileService.
func NewFileService(uploader storage.Uploader, repo *repository.FileRepository, folder string) *FileService {
	return &FileService{
		uploader: uploader,
		repo:     repo,
		folder:   folder,
	}
}

// UploadImage forwards one image buffer to storage and returns its handle.
func (s *FileService) UploadImage(ctx context.Context, content io.Reader) (*storage.UploadResult, error) {
	result, err := s.uploader.Upload(ctx, content, s.folder)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %v", err)
	}
	return result, nil
}

// UploadFile stores one named file and records it in the files collection.
func (s *FileService) UploadFile(ctx context.Context, name string, content io.Reader) (*models.File, error) {
	result, err := s.uploader.Upload(ctx, content, s.folder)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %v", err)
	}

	file := &models.File{
		PublicID:     result.PublicID,
		URL:          result.URL,
		OriginalName: name,
	}

	created, err := s.repo.CreateFile(ctx, file)
	if err != nil {
		logrus.WithError(err).Error("Failed to record uploaded file")
		return nil, err
	}
	return created, nil
}

// GetFile fetches an upload record by ID.
func (s *FileService) GetFile(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	return s.repo.GetFileByID(ctx, id)
}
