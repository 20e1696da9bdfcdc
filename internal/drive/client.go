package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/teemow/drivecopy/internal/google"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"

	itemFields = "id, name, mimeType"
)

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// GetAuthURLForAccount returns the OAuth URL for user authorization for a specific account
func GetAuthURLForAccount(account string) string {
	return google.GetAuthURLForAccount(account)
}

// SaveTokenForAccount exchanges an authorization code for tokens and saves them for a specific account
func SaveTokenForAccount(ctx context.Context, account string, authCode string) error {
	return google.SaveTokenForAccount(ctx, account, authCode)
}

// NewClientForAccount creates a new Google Drive client with OAuth2 authentication for a specific account
// Returns an error if no valid token exists - use HasTokenForAccount() to check first
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", google.GetAuthenticationErrorMessage(account), err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		service: driveService,
		account: account,
	}, nil
}

// NewClient creates a new Google Drive client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// CreateFolder creates a new folder under parentID. An empty parentID places
// the folder in the Drive root.
func (c *Client) CreateFolder(ctx context.Context, name string, parentID string) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}

	file := &drive.File{
		Name:     name,
		MimeType: FolderMimeType,
	}
	if parentID != "" {
		file.Parents = []string{parentID}
	}

	driveFile, err := c.service.Files.Create(file).
		Context(ctx).
		Fields(itemFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return convertToItem(driveFile), nil
}

// ListChildren returns all immediate children of folderID, optionally
// filtered by type. Trashed items are excluded and pagination is handled
// internally; the full child set is returned in one call.
func (c *Client) ListChildren(ctx context.Context, folderID string, filter Filter) ([]*Item, error) {
	if folderID == "" {
		return nil, fmt.Errorf("folderID is required")
	}

	var items []*Item
	pageToken := ""
	for {
		call := c.service.Files.List().
			Context(ctx).
			Q(buildChildQuery(folderID, filter)).
			Fields("nextPageToken, files(" + itemFields + ")").
			PageSize(1000)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		fileList, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list children of %s: %w", folderID, err)
		}

		for _, f := range fileList.Files {
			items = append(items, convertToItem(f))
		}

		pageToken = fileList.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return items, nil
}

// CopyFile copies the file fileID into destParentID under newName. Folders
// cannot be copied through this call; the engine recreates them instead.
func (c *Client) CopyFile(ctx context.Context, fileID string, newName string, destParentID string) error {
	if fileID == "" {
		return fmt.Errorf("fileID is required")
	}
	if destParentID == "" {
		return fmt.Errorf("destParentID is required")
	}

	_, err := c.service.Files.Copy(fileID, &drive.File{
		Name:    newName,
		Parents: []string{destParentID},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to copy file %s: %w", fileID, err)
	}

	return nil
}

// DownloadFile returns the content of the file fileID
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}

	return content, nil
}

// UploadFile creates a new file with the given content under parentID
func (c *Client) UploadFile(ctx context.Context, name string, content []byte, parentID string) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if parentID == "" {
		return nil, fmt.Errorf("parentID is required")
	}

	file := &drive.File{
		Name:    name,
		Parents: []string{parentID},
	}

	driveFile, err := c.service.Files.Create(file).
		Context(ctx).
		Media(bytes.NewReader(content)).
		Fields(itemFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return convertToItem(driveFile), nil
}

// UpdateFile replaces the content of the existing file fileID in place
func (c *Client) UpdateFile(ctx context.Context, fileID string, content []byte) error {
	if fileID == "" {
		return fmt.Errorf("fileID is required")
	}

	_, err := c.service.Files.Update(fileID, &drive.File{}).
		Context(ctx).
		Media(bytes.NewReader(content)).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update file %s: %w", fileID, err)
	}

	return nil
}

// buildChildQuery returns the Drive search query for the children of
// folderID. See https://developers.google.com/drive/api/guides/search-files
func buildChildQuery(folderID string, filter Filter) string {
	q := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	switch filter {
	case FoldersOnly:
		q += fmt.Sprintf(" and mimeType = '%s'", FolderMimeType)
	case FilesOnly:
		q += fmt.Sprintf(" and mimeType != '%s'", FolderMimeType)
	}
	return q
}

// convertToItem converts a Drive API File to our Item type
func convertToItem(f *drive.File) *Item {
	return &Item{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
	}
}
