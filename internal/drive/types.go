package drive

// Item represents a file or folder in Google Drive, reduced to the fields
// the replication engine needs
type Item struct {
	// ID is the unique identifier assigned by Drive
	ID string `json:"id"`

	// Name is the name of the item (not unique among siblings)
	Name string `json:"name"`

	// MimeType is the MIME type of the item
	MimeType string `json:"mimeType"`
}

// IsFolder reports whether the item is a folder
func (i *Item) IsFolder() bool {
	return i.MimeType == FolderMimeType
}

// Filter restricts child listings by item type
type Filter int

const (
	// All lists folders and files alike
	All Filter = iota
	// FoldersOnly lists only folders
	FoldersOnly
	// FilesOnly lists only non-folder files
	FilesOnly
)
