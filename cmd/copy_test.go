package cmd

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/teemow/drivecopy/internal/replicate"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	report := &replicate.Report{
		Batches: []replicate.BatchReport{
			{
				Name:        "batch-1",
				Created:     []string{"A", "A (2)"},
				Reused:      []string{"B"},
				Missing:     []string{"nope"},
				FilesCopied: 3,
			},
		},
	}

	printSummary(logger, report, 2*time.Second)
	out := buf.String()

	if !strings.Contains(out, "batch-1") {
		t.Errorf("Expected summary to mention the batch, got %q", out)
	}
	if !strings.Contains(out, "A (2)") {
		t.Errorf("Expected summary to list created folders, got %q", out)
	}
	if !strings.Contains(out, "nope") {
		t.Errorf("Expected summary to warn about missing folders, got %q", out)
	}
	if !strings.Contains(out, "3 files") {
		t.Errorf("Expected summary to count copied files, got %q", out)
	}
}
