package replicate

import (
	"context"
	"fmt"
	"log/slog"
)

// Task seeds one replication: copy the tree rooted at SourceID into a folder
// named LogicalName under DestParentID. LogicalName may differ from the
// source folder's own name when the Planner disambiguated it.
type Task struct {
	SourceID     string
	DestParentID string
	LogicalName  string
}

// Result summarizes one completed replication.
type Result struct {
	// FolderID is the reconciled top-level destination folder
	FolderID string

	// Reused is true when the top-level folder was matched by identity tag
	// rather than newly created
	Reused bool

	FilesCopied    int
	FoldersCreated int

	// ItemsSkipped counts source children that were already present in the
	// destination by name
	ItemsSkipped int
}

// Replicator copies source folder trees into destination folders. It is
// stateless across calls; all state lives in the storage backend.
type Replicator struct {
	st  Storage
	log *slog.Logger
}

// NewReplicator creates a Replicator on top of the given storage backend.
// If logger is nil, slog.Default() is used.
func NewReplicator(st Storage, logger *slog.Logger) *Replicator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Replicator{st: st, log: logger}
}

// Replicate runs one replication task to completion.
//
// The top-level destination folder is reconciled by identity tag, then the
// source tree is walked depth-first and every child not already present in
// the destination by name is copied. Already-present children are skipped
// wholesale, including folders, which are not descended into. Re-running the
// same task is therefore a no-op beyond the identity check.
//
// Errors abort the walk where they occur; items copied before the error
// remain in place and a later run completes the remainder.
func (r *Replicator) Replicate(ctx context.Context, task Task) (*Result, error) {
	destID, reused, err := r.reconcile(ctx, task.SourceID, task.DestParentID, task.LogicalName)
	if err != nil {
		return nil, err
	}

	res := &Result{FolderID: destID, Reused: reused}
	if err := r.copyChildren(ctx, task.SourceID, destID, res); err != nil {
		return nil, err
	}
	return res, nil
}

// copyChildren copies every child of srcID missing from destID, recursing
// into sub-folders. Sub-folders are matched against the destination by
// literal name only; identity tags apply to the top level alone.
func (r *Replicator) copyChildren(ctx context.Context, srcID, destID string, res *Result) error {
	existing, err := r.st.ListChildren(ctx, destID, KindAny)
	if err != nil {
		return fmt.Errorf("failed to list destination folder %s: %w", destID, err)
	}
	existingNames := make(map[string]bool, len(existing))
	for _, item := range existing {
		if item.Name == MetaFolderName && item.Folder {
			continue
		}
		existingNames[item.Name] = true
	}

	children, err := r.st.ListChildren(ctx, srcID, KindAny)
	if err != nil {
		return fmt.Errorf("failed to list source folder %s: %w", srcID, err)
	}

	for _, child := range children {
		if child.Name == MetaFolderName && child.Folder {
			// Copying it would collide with the reserved metadata folder in
			// the destination and corrupt identity tracking.
			r.log.Warn("skipping reserved source folder", "name", child.Name, "source_id", child.ID)
			continue
		}
		if existingNames[child.Name] {
			r.log.Debug("skipping existing item", "name", child.Name)
			res.ItemsSkipped++
			continue
		}

		if child.Folder {
			subID, err := r.st.CreateFolder(ctx, child.Name, destID)
			if err != nil {
				return fmt.Errorf("failed to create folder %q: %w", child.Name, err)
			}
			res.FoldersCreated++
			if err := r.copyChildren(ctx, child.ID, subID, res); err != nil {
				return err
			}
			continue
		}

		if err := r.st.CopyFile(ctx, child.ID, child.Name, destID); err != nil {
			return fmt.Errorf("failed to copy file %q: %w", child.Name, err)
		}
		res.FilesCopied++
	}

	return nil
}
