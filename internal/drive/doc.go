// Package drive provides a client for interacting with the Google Drive API.
//
// This package is the storage backend of the replication engine. It exposes
// the narrow set of Drive operations the engine needs:
//   - Creating folders
//   - Listing the children of a folder (pagination handled internally,
//     trashed items excluded)
//   - Copying files server-side
//   - Downloading and uploading small files (identity tag sidecars)
//
// The Storage type adapts the client to the replicate.Storage interface so
// that the engine stays independent of the Drive API types.
//
// OAuth Authentication:
// This package uses the unified Google OAuth token from the google package.
// The OAuth scope includes full Google Drive access (drive scope), allowing
// read and write operations on all files in the user's Drive.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := drive.NewClientForAccount(ctx, "work")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	children, err := client.ListChildren(ctx, folderID, drive.FoldersOnly)
//	if err != nil {
//	    log.Fatal(err)
//	}
package drive
