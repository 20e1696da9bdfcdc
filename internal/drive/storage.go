package drive

import (
	"context"

	"github.com/teemow/drivecopy/internal/replicate"
)

// Storage adapts a Client to the replication engine's storage interface
type Storage struct {
	client *Client
}

// NewStorage creates a replicate.Storage backed by the given Drive client
func NewStorage(client *Client) *Storage {
	return &Storage{client: client}
}

var _ replicate.Storage = (*Storage)(nil)

// CreateFolder implements replicate.Storage
func (s *Storage) CreateFolder(ctx context.Context, name string, parentID string) (string, error) {
	item, err := s.client.CreateFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// ListChildren implements replicate.Storage
func (s *Storage) ListChildren(ctx context.Context, folderID string, kind replicate.Kind) ([]replicate.Item, error) {
	items, err := s.client.ListChildren(ctx, folderID, convertKind(kind))
	if err != nil {
		return nil, err
	}

	children := make([]replicate.Item, len(items))
	for i, item := range items {
		children[i] = replicate.Item{
			ID:     item.ID,
			Name:   item.Name,
			Folder: item.IsFolder(),
		}
	}
	return children, nil
}

// CopyFile implements replicate.Storage
func (s *Storage) CopyFile(ctx context.Context, fileID string, newName string, destParentID string) error {
	return s.client.CopyFile(ctx, fileID, newName, destParentID)
}

// DownloadFile implements replicate.Storage
func (s *Storage) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	return s.client.DownloadFile(ctx, fileID)
}

// UploadFile implements replicate.Storage
func (s *Storage) UploadFile(ctx context.Context, name string, content []byte, parentID string) (string, error) {
	item, err := s.client.UploadFile(ctx, name, content, parentID)
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// UpdateFile implements replicate.Storage
func (s *Storage) UpdateFile(ctx context.Context, fileID string, content []byte) error {
	return s.client.UpdateFile(ctx, fileID, content)
}

func convertKind(kind replicate.Kind) Filter {
	switch kind {
	case replicate.KindFolder:
		return FoldersOnly
	case replicate.KindFile:
		return FilesOnly
	default:
		return All
	}
}
