package replicate

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadTag(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()
	folder := st.addFolder("", "Copied")

	tag := &IdentityTag{SourceID: "src-1", Identifier: "Reports"}
	require.NoError(t, writeTag(ctx, st, folder, tag))

	got := readTag(ctx, st, folder, slog.Default())
	require.NotNil(t, got)
	assert.Equal(t, "src-1", got.SourceID)
	assert.Equal(t, "Reports", got.Identifier)

	// The tag lives in _system/.meta.json
	sys := st.child(folder, MetaFolderName)
	require.NotNil(t, sys)
	assert.True(t, sys.folder)
	meta := st.child(sys.id, MetaFileName)
	require.NotNil(t, meta)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(meta.content, &decoded))
	assert.Equal(t, map[string]string{"source_id": "src-1", "identifier": "Reports"}, decoded)
}

func TestWriteTagUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()
	folder := st.addFolder("", "Copied")

	require.NoError(t, writeTag(ctx, st, folder, &IdentityTag{SourceID: "src-1", Identifier: "A"}))
	require.NoError(t, writeTag(ctx, st, folder, &IdentityTag{SourceID: "src-2", Identifier: "B"}))

	sys := st.child(folder, MetaFolderName)
	require.NotNil(t, sys)
	assert.Equal(t, 1, st.countChildren(sys.id, MetaFileName), "meta file must not be recreated")
	assert.Equal(t, 1, st.countChildren(folder, MetaFolderName))

	got := readTag(ctx, st, folder, slog.Default())
	require.NotNil(t, got)
	assert.Equal(t, "src-2", got.SourceID)
	assert.Equal(t, "B", got.Identifier)
}

func TestReadTagAbsent(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()

	t.Run("no meta folder", func(t *testing.T) {
		folder := st.addFolder("", "plain")
		assert.Nil(t, readTag(ctx, st, folder, slog.Default()))
	})

	t.Run("empty meta folder", func(t *testing.T) {
		folder := st.addFolder("", "half-written")
		st.addFolder(folder, MetaFolderName)
		assert.Nil(t, readTag(ctx, st, folder, slog.Default()))
	})
}

func TestReadTagMalformed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content []byte
	}{
		{"invalid json", []byte("{not json")},
		{"empty file", []byte("")},
		{"missing fields", []byte(`{"something":"else"}`)},
		{"empty fields", []byte(`{"source_id":"","identifier":""}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeStorage()
			folder := st.addFolder("", "tagged")
			sys := st.addFolder(folder, MetaFolderName)
			st.addFile(sys, MetaFileName, tt.content)

			assert.Nil(t, readTag(ctx, st, folder, slog.Default()))
		})
	}
}

func TestTagValid(t *testing.T) {
	assert.False(t, (*IdentityTag)(nil).Valid())
	assert.False(t, (&IdentityTag{SourceID: "a"}).Valid())
	assert.False(t, (&IdentityTag{Identifier: "b"}).Valid())
	assert.True(t, (&IdentityTag{SourceID: "a", Identifier: "b"}).Valid())
}
