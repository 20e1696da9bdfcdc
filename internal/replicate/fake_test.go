package replicate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// fakeStorage is an in-memory Storage implementation for tests. It models a
// flat node table with parent links, like a real storage backend assigns
// opaque IDs and allows duplicate names among siblings.
type fakeStorage struct {
	nodes map[string]*fakeNode

	// order holds node IDs in creation order so listings are deterministic
	order []string

	// copyErr, when set, is returned by the next CopyFile call
	copyErr error

	// calls counts storage operations by method name
	calls map[string]int
}

type fakeNode struct {
	id      string
	name    string
	parent  string
	folder  bool
	content []byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		nodes: make(map[string]*fakeNode),
		calls: make(map[string]int),
	}
}

func (s *fakeStorage) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	s.calls["CreateFolder"]++
	id := uuid.NewString()
	s.nodes[id] = &fakeNode{id: id, name: name, parent: parentID, folder: true}
	s.order = append(s.order, id)
	return id, nil
}

func (s *fakeStorage) ListChildren(ctx context.Context, folderID string, kind Kind) ([]Item, error) {
	s.calls["ListChildren"]++
	var items []Item
	for _, id := range s.order {
		n, ok := s.nodes[id]
		if !ok || n.parent != folderID {
			continue
		}
		if kind == KindFolder && !n.folder || kind == KindFile && n.folder {
			continue
		}
		items = append(items, Item{ID: n.id, Name: n.name, Folder: n.folder})
	}
	return items, nil
}

func (s *fakeStorage) CopyFile(ctx context.Context, fileID, newName, destParentID string) error {
	s.calls["CopyFile"]++
	if s.copyErr != nil {
		err := s.copyErr
		s.copyErr = nil
		return err
	}
	src, ok := s.nodes[fileID]
	if !ok || src.folder {
		return fmt.Errorf("no such file: %s", fileID)
	}
	id := uuid.NewString()
	s.nodes[id] = &fakeNode{id: id, name: newName, parent: destParentID, content: src.content}
	s.order = append(s.order, id)
	return nil
}

func (s *fakeStorage) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	s.calls["DownloadFile"]++
	n, ok := s.nodes[fileID]
	if !ok || n.folder {
		return nil, fmt.Errorf("no such file: %s", fileID)
	}
	return n.content, nil
}

func (s *fakeStorage) UploadFile(ctx context.Context, name string, content []byte, parentID string) (string, error) {
	s.calls["UploadFile"]++
	id := uuid.NewString()
	s.nodes[id] = &fakeNode{id: id, name: name, parent: parentID, content: content}
	s.order = append(s.order, id)
	return id, nil
}

func (s *fakeStorage) UpdateFile(ctx context.Context, fileID string, content []byte) error {
	s.calls["UpdateFile"]++
	n, ok := s.nodes[fileID]
	if !ok || n.folder {
		return fmt.Errorf("no such file: %s", fileID)
	}
	n.content = content
	return nil
}

// Test helpers below bypass the Storage interface to arrange and inspect
// state directly.

func (s *fakeStorage) addFolder(parentID, name string) string {
	id, _ := s.CreateFolder(context.Background(), name, parentID)
	return id
}

func (s *fakeStorage) addFile(parentID, name string, content []byte) string {
	id, _ := s.UploadFile(context.Background(), name, content, parentID)
	return id
}

func (s *fakeStorage) rename(id, newName string) {
	s.nodes[id].name = newName
}

// childNames returns the names of all children of folderID, as a set.
func (s *fakeStorage) childNames(folderID string) map[string]bool {
	names := make(map[string]bool)
	for _, n := range s.nodes {
		if n.parent == folderID {
			names[n.name] = true
		}
	}
	return names
}

// child returns the first child of folderID named name, or nil.
func (s *fakeStorage) child(folderID, name string) *fakeNode {
	for _, n := range s.nodes {
		if n.parent == folderID && n.name == name {
			return n
		}
	}
	return nil
}

// countChildren returns how many children of folderID share the given name.
func (s *fakeStorage) countChildren(folderID, name string) int {
	count := 0
	for _, n := range s.nodes {
		if n.parent == folderID && n.name == name {
			count++
		}
	}
	return count
}
