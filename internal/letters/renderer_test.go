package letters

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRenderer(t.TempDir(), "", logger)
}

func writeCV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake cv"), 0o644))
	return path
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Maria_Puig_Serra", SafeName("  Maria Puig Serra "))
	assert.Equal(t, "Anna", SafeName("Anna"))
}

func TestPaths(t *testing.T) {
	r := newTestRenderer(t)

	letter := r.LetterPath("4821", "Maria Puig")
	cv := r.CVCopyPath("4821", "Maria Puig")

	assert.Equal(t, filepath.Join(r.OfferDir("4821"), "Carta_Presentacio_Maria_Puig.pdf"), letter)
	assert.Equal(t, filepath.Join(r.OfferDir("4821"), "Maria_Puig_CV.pdf"), cv)
}

func TestRender_CreatesBothFiles(t *testing.T) {
	r := newTestRenderer(t)
	cvPath := writeCV(t)

	assert.False(t, r.FilesPresent("4821", "Maria Puig"))

	err := r.Render("4821", "Maria Puig", "Benvolguts,\n\nEm presento com a candidata.", cvPath)
	require.NoError(t, err)

	assert.True(t, r.FilesPresent("4821", "Maria Puig"))

	copied, err := os.ReadFile(r.CVCopyPath("4821", "Maria Puig"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake cv"), copied)

	letter, err := os.ReadFile(r.LetterPath("4821", "Maria Puig"))
	require.NoError(t, err)
	assert.True(t, len(letter) > 0)
}

func TestRender_MissingCVFails(t *testing.T) {
	r := newTestRenderer(t)

	err := r.Render("4821", "Maria Puig", "text", filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}

func TestFilesPresent_FalseWhenOneFileMissing(t *testing.T) {
	r := newTestRenderer(t)
	cvPath := writeCV(t)

	require.NoError(t, r.Render("4821", "Maria Puig", "text", cvPath))
	require.NoError(t, os.Remove(r.CVCopyPath("4821", "Maria Puig")))

	assert.False(t, r.FilesPresent("4821", "Maria Puig"))
}
