package ingest_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/ingest"
	"github.com/biasharaledger/docextract/internal/repository"
)

func setupLoader(t *testing.T) (*ingest.FSLoader, repository.DocumentRepository, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	logger := slog.Default()

	entc, err := repository.OpenSQLiteInMemory(ctx, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = entc.Close() })

	company, err := repository.NewCompanyRepository(entc, logger).GetOrCreateByName(ctx, "Loader Co")
	require.NoError(t, err)

	docs := repository.NewDocumentRepository(entc, logger)
	return ingest.NewFSLoader(docs, logger), docs, company.ID
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPath(t *testing.T) {
	ctx := context.Background()
	loader, docs, companyID := setupLoader(t)
	dir := t.TempDir()

	path := write(t, dir, "invoice.txt", "Total: KES 1,000.00")

	res, err := loader.LoadPath(ctx, companyID, path)
	require.NoError(t, err)

	doc, err := docs.GetByID(ctx, res.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, "Total: KES 1,000.00", doc.RawText)
	assert.Equal(t, "TXT", doc.SourceFormat)
	assert.Equal(t, string(constants.DocStatusPending), doc.Status)
}

func TestLoadPathSourceFormats(t *testing.T) {
	ctx := context.Background()
	loader, docs, companyID := setupLoader(t)
	dir := t.TempDir()

	for name, want := range map[string]string{
		"a.txt":         "TXT",
		"scan.pdf.txt":  "PDF",
		"photo.ocr.txt": "IMAGE",
		"memo.docx.txt": "DOCX",
	} {
		res, err := loader.LoadPath(ctx, companyID, write(t, dir, name, "content"))
		require.NoError(t, err, name)
		doc, err := docs.GetByID(ctx, res.DocumentID)
		require.NoError(t, err)
		assert.Equal(t, want, doc.SourceFormat, name)
	}
}

func TestLoadPathRejectsEmptyAndBinary(t *testing.T) {
	ctx := context.Background()
	loader, _, companyID := setupLoader(t)
	dir := t.TempDir()

	_, err := loader.LoadPath(ctx, companyID, write(t, dir, "empty.txt", "   \n"))
	assert.Error(t, err)

	_, err = loader.LoadPath(ctx, companyID, write(t, dir, "binary.txt", string([]byte{0xff, 0xfe, 0x01})))
	assert.Error(t, err)

	_, err = loader.LoadPath(ctx, companyID, write(t, dir, "scan.pdf", "%PDF-1.4"))
	assert.Error(t, err, "raw binaries are not ingestible")
}

func TestLoadDirectory(t *testing.T) {
	ctx := context.Background()
	loader, _, companyID := setupLoader(t)
	dir := t.TempDir()

	write(t, dir, "one.txt", "Total: KES 1,000.00")
	write(t, dir, "two.txt", "Total: KES 2,000.00")
	write(t, dir, "skipme.csv", "a,b,c")
	write(t, dir, ".hidden.txt", "nope")
	write(t, dir, "empty.txt", "")

	results, stats, err := loader.LoadDirectory(ctx, companyID, dir)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Succeeded)
	assert.Equal(t, 1, stats.Failed, "empty file fails, walk continues")
	assert.Equal(t, 1, stats.Skipped)
	assert.Len(t, results, 3)
}
