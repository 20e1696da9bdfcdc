package replicate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

const (
	// MetaFolderName is the reserved folder that holds the identity tag of a
	// reconciled destination folder. It is never matched against source
	// children and never copied.
	MetaFolderName = "_system"

	// MetaFileName is the identity tag file inside the meta folder.
	MetaFileName = ".meta.json"
)

// IdentityTag binds a destination folder to the source it was copied from.
// SourceID is the ID of the source folder; Identifier is the logical name
// the destination folder was created under. The pair survives renames of the
// destination folder and is the join key for merge detection.
type IdentityTag struct {
	SourceID   string `json:"source_id"`
	Identifier string `json:"identifier"`
}

// Valid reports whether both required fields are present.
func (t *IdentityTag) Valid() bool {
	return t != nil && t.SourceID != "" && t.Identifier != ""
}

// readTag returns the identity tag stored under folderID, or nil if the
// folder carries no readable tag. A missing _system folder, a missing or
// unreadable meta file, or malformed content all count as "no tag" so that
// partial writes from an interrupted run never block reconciliation.
func readTag(ctx context.Context, st Storage, folderID string, log *slog.Logger) *IdentityTag {
	sysID, metaID, err := findTagFiles(ctx, st, folderID)
	if err != nil || sysID == "" || metaID == "" {
		if err != nil {
			log.Debug("skipping unreadable identity tag", "folder_id", folderID, "error", err)
		}
		return nil
	}

	content, err := st.DownloadFile(ctx, metaID)
	if err != nil {
		log.Debug("skipping unreadable identity tag", "folder_id", folderID, "error", err)
		return nil
	}

	var tag IdentityTag
	if err := json.Unmarshal(content, &tag); err != nil {
		log.Debug("skipping malformed identity tag", "folder_id", folderID, "error", err)
		return nil
	}
	if !tag.Valid() {
		log.Debug("skipping incomplete identity tag", "folder_id", folderID)
		return nil
	}

	return &tag
}

// writeTag persists tag under folderID, creating the _system folder if
// needed. An existing meta file is updated in place rather than recreated.
func writeTag(ctx context.Context, st Storage, folderID string, tag *IdentityTag) error {
	content, err := json.Marshal(tag)
	if err != nil {
		return fmt.Errorf("failed to encode identity tag: %w", err)
	}

	sysID, metaID, err := findTagFiles(ctx, st, folderID)
	if err != nil {
		return fmt.Errorf("failed to inspect folder %s: %w", folderID, err)
	}

	if sysID == "" {
		sysID, err = st.CreateFolder(ctx, MetaFolderName, folderID)
		if err != nil {
			return fmt.Errorf("failed to create %s folder: %w", MetaFolderName, err)
		}
	}

	if metaID != "" {
		if err := st.UpdateFile(ctx, metaID, content); err != nil {
			return fmt.Errorf("failed to update identity tag: %w", err)
		}
		return nil
	}

	if _, err := st.UploadFile(ctx, MetaFileName, content, sysID); err != nil {
		return fmt.Errorf("failed to write identity tag: %w", err)
	}
	return nil
}

// findTagFiles locates the _system folder and the meta file under folderID.
// Either ID may be empty when the corresponding item does not exist yet.
func findTagFiles(ctx context.Context, st Storage, folderID string) (sysID, metaID string, err error) {
	folders, err := st.ListChildren(ctx, folderID, KindFolder)
	if err != nil {
		return "", "", err
	}
	for _, f := range folders {
		if f.Name == MetaFolderName {
			sysID = f.ID
			break
		}
	}
	if sysID == "" {
		return "", "", nil
	}

	files, err := st.ListChildren(ctx, sysID, KindFile)
	if err != nil {
		return sysID, "", err
	}
	for _, f := range files {
		if f.Name == MetaFileName {
			metaID = f.ID
			break
		}
	}
	return sysID, metaID, nil
}
