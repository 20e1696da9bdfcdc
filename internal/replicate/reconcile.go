package replicate

import (
	"context"
	"fmt"
)

// reconcile decides which destination folder a replication task targets.
//
// It scans the folders directly under destParentID for an identity tag
// matching (srcID, logicalName) and reuses the first match. Matching is by
// tag, not by name, so a destination folder that was renamed after an
// earlier run is still recognized. When no folder matches, a new one named
// logicalName is created and tagged.
func (r *Replicator) reconcile(ctx context.Context, srcID, destParentID, logicalName string) (destID string, reused bool, err error) {
	candidates, err := r.st.ListChildren(ctx, destParentID, KindFolder)
	if err != nil {
		return "", false, fmt.Errorf("failed to list folders under %s: %w", destParentID, err)
	}

	for _, c := range candidates {
		tag := readTag(ctx, r.st, c.ID, r.log)
		if tag == nil {
			continue
		}
		if tag.SourceID == srcID && tag.Identifier == logicalName {
			r.log.Debug("reusing destination folder",
				"name", logicalName, "folder_id", c.ID, "current_name", c.Name)
			return c.ID, true, nil
		}
	}

	destID, err = r.st.CreateFolder(ctx, logicalName, destParentID)
	if err != nil {
		return "", false, fmt.Errorf("failed to create folder %q: %w", logicalName, err)
	}

	tag := &IdentityTag{SourceID: srcID, Identifier: logicalName}
	if err := writeTag(ctx, r.st, destID, tag); err != nil {
		return "", false, err
	}

	r.log.Debug("created destination folder", "name", logicalName, "folder_id", destID)
	return destID, false, nil
}
