package replicate

import "context"

// Kind filters child listings by item type.
type Kind int

const (
	// KindAny lists folders and files alike
	KindAny Kind = iota
	// KindFolder lists only folders
	KindFolder
	// KindFile lists only non-folder files
	KindFile
)

// Item is a single node in the source or destination hierarchy.
// IDs are assigned by the storage backend and are opaque to the engine;
// names are not guaranteed to be unique among siblings.
type Item struct {
	ID     string
	Name   string
	Folder bool
}

// Storage is the interface the engine needs from a storage backend.
//
// Implementations must handle pagination internally (ListChildren returns
// the complete child set) and must exclude trashed items. Listings are not
// transactionally isolated from writes: a listing taken mid-run may observe
// items created earlier in the same run.
type Storage interface {
	// CreateFolder creates a folder under parentID ("" means the backend's
	// root) and returns its new ID.
	CreateFolder(ctx context.Context, name string, parentID string) (string, error)

	// ListChildren returns all immediate children of folderID, optionally
	// filtered by kind.
	ListChildren(ctx context.Context, folderID string, kind Kind) ([]Item, error)

	// CopyFile copies the file fileID into destParentID under newName.
	CopyFile(ctx context.Context, fileID string, newName string, destParentID string) error

	// DownloadFile returns the content of the file fileID.
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)

	// UploadFile creates a new file named name with the given content under
	// parentID and returns its new ID.
	UploadFile(ctx context.Context, name string, content []byte, parentID string) (string, error)

	// UpdateFile replaces the content of the existing file fileID in place.
	UpdateFile(ctx context.Context, fileID string, content []byte) error
}
