package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/biasharaledger/docextract/internal/repository"
)

// FSLoader reads already-extracted document text from the local filesystem
// and registers it for processing. Upstream systems own the binary-to-text
// step; the loader only accepts plain text.
type FSLoader struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewFSLoader(docs repository.DocumentRepository, logger *slog.Logger) *FSLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSLoader{docs: docs, logger: logger}
}

// LoadResult reports the outcome for one file.
type LoadResult struct {
	SourcePath string
	DocumentID uuid.UUID
	Err        string
}

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned   int
	Matched   int
	Succeeded int
	Failed    int
	Skipped   int
}

// sourceFormatByExt maps file extensions to the stored source format. The
// extension tells us what the text was extracted from, not what the file on
// disk is.
var sourceFormatByExt = map[string]string{
	"txt":      "TXT",
	"text":     "TXT",
	"pdf.txt":  "PDF",
	"ocr.txt":  "IMAGE",
	"docx.txt": "DOCX",
}

// LoadPath registers a single text file as a pending document for the
// company. Empty or non-UTF-8 content is rejected here rather than left to
// fail extraction later.
func (l *FSLoader) LoadPath(ctx context.Context, companyID uuid.UUID, path string) (LoadResult, error) {
	out := LoadResult{SourcePath: path}

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}

	format, ok := formatFor(abs)
	if !ok {
		return out, errors.New("unsupported extension")
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return out, err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return out, errors.New("file is empty")
	}
	if !utf8.ValidString(text) {
		return out, errors.New("file is not valid UTF-8 text")
	}

	doc, err := l.docs.Create(ctx, companyID, text, format)
	if err != nil {
		return out, err
	}

	out.DocumentID = doc.ID
	l.logger.Info("document loaded",
		"document_id", doc.ID,
		"company_id", companyID,
		"source_path", abs,
		"source_format", format,
		"bytes", len(text),
	)
	return out, nil
}

// LoadDirectory walks root, skipping hidden entries, and registers every
// matching text file. One bad file never aborts the walk; failures are
// reported per file.
func (l *FSLoader) LoadDirectory(ctx context.Context, companyID uuid.UUID, root string) ([]LoadResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []LoadResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, LoadResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := formatFor(path); !ok {
			stats.Skipped++
			return nil
		}
		stats.Matched++

		r, err := l.LoadPath(ctx, companyID, path)
		if err != nil {
			r.Err = err.Error()
			results = append(results, r)
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		return nil
	})
	if err != nil {
		return results, stats, err
	}

	l.logger.Info("directory loaded",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)
	return results, stats, nil
}

// formatFor reports the stored source format for a path, preferring the
// longest matching compound extension ("invoice.pdf.txt" -> PDF).
func formatFor(path string) (string, bool) {
	name := strings.ToLower(filepath.Base(path))
	for ext, format := range sourceFormatByExt {
		if len(ext) > 4 && strings.HasSuffix(name, "."+ext) {
			return format, true
		}
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	format, ok := sourceFormatByExt[ext]
	return format, ok
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
