package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/jesap-it/recruiting-backend/internal/auth"
)

// DriveStore uploads resumes to a Google Drive folder using the same
// service account as the sheet mirror. The returned reference is the
// file's web view link.
type DriveStore struct {
	service  *drive.Service
	folderID string
}

func NewDriveStore(ctx context.Context, credentialsPath, folderID string) (*DriveStore, error) {
	client, err := auth.ServiceAccountClient(ctx, credentialsPath, drive.DriveFileScope)
	if err != nil {
		return nil, err
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive service: %w", err)
	}

	return &DriveStore{service: service, folderID: folderID}, nil
}

func (s *DriveStore) Upload(ctx context.Context, key string, content io.Reader) (string, error) {
	meta := &drive.File{
		// Keys look like resumes/<timestamp>-<name>; Drive has no real
		// directories, so only the base name becomes the file name.
		Name: path.Base(key),
	}
	if s.folderID != "" {
		meta.Parents = []string{s.folderID}
	}

	created, err := s.service.Files.Create(meta).
		Media(content).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive upload failed: %w", err)
	}

	if created.WebViewLink != "" {
		return created.WebViewLink, nil
	}
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view", created.Id), nil
}
