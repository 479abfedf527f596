// Package storage wraps the object storage service used for frame and
// product images, and detects documents left half-written by the
// non-atomic upload-then-link sequence.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader is the object storage surface the handlers need.
type Uploader interface {
	// Upload stores the binary and returns its retrievable URL and
	// the public id used for later deletion.
	Upload(ctx context.Context, r io.Reader) (url, publicID string, err error)
	// Destroy removes a previously uploaded binary by public id.
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryUploader implements Uploader against Cloudinary.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader) (string, string, error) {
	res, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}
	return res.SecureURL, res.PublicID, nil
}

func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	if _, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to destroy image %s: %w", publicID, err)
	}
	return nil
}
