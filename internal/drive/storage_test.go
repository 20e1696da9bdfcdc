package drive

import (
	"testing"

	"github.com/teemow/drivecopy/internal/replicate"
)

func TestConvertKind(t *testing.T) {
	tests := []struct {
		kind     replicate.Kind
		expected Filter
	}{
		{replicate.KindAny, All},
		{replicate.KindFolder, FoldersOnly},
		{replicate.KindFile, FilesOnly},
	}

	for _, tt := range tests {
		if got := convertKind(tt.kind); got != tt.expected {
			t.Errorf("convertKind(%v) = %v, want %v", tt.kind, got, tt.expected)
		}
	}
}
