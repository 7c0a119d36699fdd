package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadResult is the subset of the storage response the API exposes.
type UploadResult struct {
	URL      string
	PublicID string
}

// Uploader forwards raw file content to an external object storage.
type Uploader interface {
	Upload(ctx context.Context, content io.Reader, folder string) (*UploadResult, error)
}

// CloudinaryUploader stores assets in Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL style DSN.
func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary URL is not configured")
	}

	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary client: %v", err)
	}
	return &CloudinaryUploader{client: client}, nil
}

// Upload pushes the content into the given folder and returns its public handle.
func (u *CloudinaryUploader) Upload(ctx context.Context, content io.Reader, folder string) (*UploadResult, error) {
	publicID := uuid.NewString()

	resp, err := u.client.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		logrus.WithError(err).Error("Cloudinary upload failed")
		return nil, fmt.Errorf("failed to upload file: %v", err)
	}

	logrus.WithField("public_id", resp.PublicID).Info("File uploaded to Cloudinary")
	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}
