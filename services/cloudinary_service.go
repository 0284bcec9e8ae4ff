package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadAvatar uploads a profile picture and returns the secure URL.
// One avatar per session: the public ID is derived from the session so
// re-uploads overwrite the previous image.
func (s *CloudinaryService) UploadAvatar(ctx context.Context, file multipart.File, sessionID string) (string, error) {
	overwrite := true
	unique := false
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         "sonaa/avatars",
		PublicID:       "avatar_" + sessionID,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// DeleteAvatar removes the session's profile picture from Cloudinary
func (s *CloudinaryService) DeleteAvatar(ctx context.Context, sessionID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: "sonaa/avatars/avatar_" + sessionID,
	})
	return err
}
