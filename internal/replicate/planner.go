package replicate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrSourceFolderNotFound is returned when the configured source folder does
// not exist under the root folder. It is a precondition failure that aborts
// the whole run before any batch is processed.
var ErrSourceFolderNotFound = errors.New("source folder not found")

// Batch is a named group of source folders to copy together into one
// destination folder.
type Batch struct {
	// Name is the destination folder the batch is copied into
	Name string

	// Items are the names of source folders to copy, in order. The same name
	// may appear more than once; later occurrences are disambiguated.
	Items []string
}

// Request describes one planner run.
type Request struct {
	// RootFolderID is the folder that holds both the source and the
	// destination subfolders
	RootFolderID string

	// SourceFolder is the name of the subfolder the requested items live in.
	// It must already exist.
	SourceFolder string

	// DestinationFolder is the name of the subfolder batches are copied
	// into. It is created when absent.
	DestinationFolder string

	Batches []Batch
}

// BatchReport records the outcome of one batch.
type BatchReport struct {
	Name string

	// Created and Reused hold the logical names of top-level destination
	// folders that were newly created resp. matched by identity tag
	Created []string
	Reused  []string

	// Missing holds requested names that were not found in the source folder
	Missing []string

	FilesCopied    int
	FoldersCreated int
}

// Report summarizes a planner run across all batches.
type Report struct {
	Batches []BatchReport
}

// Missing returns the requested names that were not found, across all
// batches.
func (r *Report) Missing() []string {
	var missing []string
	for _, b := range r.Batches {
		missing = append(missing, b.Missing...)
	}
	return missing
}

// Totals returns the number of files copied and folders created across all
// batches.
func (r *Report) Totals() (files, folders int) {
	for _, b := range r.Batches {
		files += b.FilesCopied
		folders += b.FoldersCreated
	}
	return files, folders
}

// Planner resolves the configured folder layout and drives one replication
// per requested source folder, per batch.
type Planner struct {
	st  Storage
	rep *Replicator
	log *slog.Logger
}

// NewPlanner creates a Planner on top of the given storage backend.
// If logger is nil, slog.Default() is used.
func NewPlanner(st Storage, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		st:  st,
		rep: NewReplicator(st, logger),
		log: logger,
	}
}

// Run executes the request: resolve the source folder (fatal when absent),
// resolve or create the destination folder, then process each batch in
// order. A requested name missing from the source folder is logged and
// recorded but never aborts the run; storage errors do.
func (p *Planner) Run(ctx context.Context, req Request) (*Report, error) {
	srcID, err := p.findFolder(ctx, req.RootFolderID, req.SourceFolder)
	if err != nil {
		return nil, err
	}
	if srcID == "" {
		return nil, fmt.Errorf("%w: %q under folder %s", ErrSourceFolderNotFound, req.SourceFolder, req.RootFolderID)
	}

	destID, err := p.findOrCreateFolder(ctx, req.RootFolderID, req.DestinationFolder)
	if err != nil {
		return nil, err
	}

	// One snapshot of the source folder serves the whole run. Duplicate
	// names among source folders resolve to the last one listed.
	sources, err := p.sourceFolders(ctx, srcID)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, batch := range req.Batches {
		br, err := p.runBatch(ctx, destID, sources, batch)
		if err != nil {
			return nil, err
		}
		report.Batches = append(report.Batches, *br)
	}
	return report, nil
}

func (p *Planner) runBatch(ctx context.Context, destID string, sources map[string]string, batch Batch) (*BatchReport, error) {
	batchID, err := p.findOrCreateFolder(ctx, destID, batch.Name)
	if err != nil {
		return nil, err
	}

	log := p.log.With("batch", batch.Name)
	report := &BatchReport{Name: batch.Name}
	seen := make(map[string]int, len(batch.Items))

	for _, name := range batch.Items {
		seen[name]++
		logicalName := name
		if n := seen[name]; n > 1 {
			logicalName = fmt.Sprintf("%s (%d)", name, n)
		}

		srcID, ok := sources[name]
		if !ok {
			log.Warn("source folder not found, skipping", "name", name)
			report.Missing = append(report.Missing, name)
			continue
		}

		log.Info("copying folder", "name", logicalName)
		res, err := p.rep.Replicate(ctx, Task{
			SourceID:     srcID,
			DestParentID: batchID,
			LogicalName:  logicalName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to replicate %q: %w", logicalName, err)
		}

		if res.Reused {
			report.Reused = append(report.Reused, logicalName)
		} else {
			report.Created = append(report.Created, logicalName)
		}
		report.FilesCopied += res.FilesCopied
		report.FoldersCreated += res.FoldersCreated
	}

	return report, nil
}

// sourceFolders maps the names of the folders directly under srcID to their
// IDs. The last folder listed wins when names repeat.
func (p *Planner) sourceFolders(ctx context.Context, srcID string) (map[string]string, error) {
	folders, err := p.st.ListChildren(ctx, srcID, KindFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to list source folder %s: %w", srcID, err)
	}
	byName := make(map[string]string, len(folders))
	for _, f := range folders {
		byName[f.Name] = f.ID
	}
	return byName, nil
}

// findFolder returns the ID of the first folder named name directly under
// parentID, or "" when no such folder exists.
func (p *Planner) findFolder(ctx context.Context, parentID, name string) (string, error) {
	folders, err := p.st.ListChildren(ctx, parentID, KindFolder)
	if err != nil {
		return "", fmt.Errorf("failed to list folder %s: %w", parentID, err)
	}
	for _, f := range folders {
		if f.Name == name {
			return f.ID, nil
		}
	}
	return "", nil
}

// findOrCreateFolder resolves a folder by literal name, creating it when
// absent. Batch and destination folders carry no identity tags.
func (p *Planner) findOrCreateFolder(ctx context.Context, parentID, name string) (string, error) {
	id, err := p.findFolder(ctx, parentID, name)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	id, err = p.st.CreateFolder(ctx, name, parentID)
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}
	p.log.Debug("created folder", "name", name, "folder_id", id)
	return id, nil
}
