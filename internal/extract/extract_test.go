package extract

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(logger)
}

func TestHTMLText_StripsMarkupAndScripts(t *testing.T) {
	e := newTestExtractor(t)

	raw := `<html><head><style>p { color: red }</style></head><body>
		<script>alert("nope")</script>
		<p>Busquem un perfil tècnic.</p>
		<p>Incorporació   immediata.<br>Jornada completa.</p>
	</body></html>`

	text := e.HTMLText(raw)
	assert.Contains(t, text, "Busquem un perfil tècnic.")
	assert.Contains(t, text, "Incorporació immediata.")
	assert.Contains(t, text, "Jornada completa.")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
}

func TestHTMLText_CollapsesWhitespaceRuns(t *testing.T) {
	e := newTestExtractor(t)

	text := e.HTMLText("<p>a     b</p>\n\n\n\n<p>c</p>")
	assert.NotContains(t, text, "  ")
	assert.NotContains(t, text, "\n\n\n")
}

func TestContacts_HarvestsChannels(t *testing.T) {
	e := newTestExtractor(t)

	raw := `<body>
		<a href="mailto:hr@example.com">Envia CV</a>
		<a href="tel:+34931234567">Truca</a>
		<a href="https://drive.google.com/file/d/abc">Bases</a>
		<a href="https://example.com/about">Qui som</a>
		<p>També a seleccio@example.org indicant la referència.</p>
	</body>`

	contacts := e.Contacts(raw)
	assert.Equal(t, []string{
		"mailto:hr@example.com",
		"tel:+34931234567",
		"https://drive.google.com/file/d/abc",
		"mailto:seleccio@example.org",
	}, contacts)
}

func TestContacts_DeduplicatesPreservingOrder(t *testing.T) {
	e := newTestExtractor(t)

	raw := `<body>
		<a href="mailto:hr@example.com">primer</a>
		<a href="mailto:hr@example.com">repetit</a>
		<p>hr@example.com</p>
	</body>`

	contacts := e.Contacts(raw)
	assert.Equal(t, []string{"mailto:hr@example.com"}, contacts)
}

func TestContacts_EmptyWhenNothingFound(t *testing.T) {
	e := newTestExtractor(t)
	assert.Empty(t, e.Contacts("<p>sense contactes</p>"))
}

func TestPDFText_GarbageReturnsEmpty(t *testing.T) {
	e := newTestExtractor(t)
	assert.Empty(t, e.PDFText([]byte("definitely not a pdf")))
}

func TestFileText_PlainTextFile(t *testing.T) {
	e := newTestExtractor(t)

	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Experiència: 5 anys\n"), 0o644))

	assert.Equal(t, "Experiència: 5 anys", e.FileText(path))
}

func TestFileText_MissingFileReturnsEmpty(t *testing.T) {
	e := newTestExtractor(t)
	assert.Empty(t, e.FileText(filepath.Join(t.TempDir(), "absent.pdf")))
}
