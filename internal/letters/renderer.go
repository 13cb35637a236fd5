// Package letters renders generated cover letters as PDF binders and
// lays out the per-offer output folders. The folder contents, not any
// database flag, are what the reconciliation pass trusts.
package letters

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

type Renderer struct {
	outputDir string
	fontDir   string
	logger    *slog.Logger
}

func NewRenderer(outputDir, fontDir string, logger *slog.Logger) *Renderer {
	return &Renderer{
		outputDir: outputDir,
		fontDir:   fontDir,
		logger:    logger.With("component", "letters"),
	}
}

// SafeName derives the deterministic file-name fragment for a user's
// display name.
func SafeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// OfferDir is the output folder for one offer.
func (r *Renderer) OfferDir(offerID string) string {
	return filepath.Join(r.outputDir, offerID)
}

// LetterPath is where the rendered letter for (offer, user) lives.
func (r *Renderer) LetterPath(offerID, userName string) string {
	return filepath.Join(r.OfferDir(offerID), fmt.Sprintf("Carta_Presentacio_%s.pdf", SafeName(userName)))
}

// CVCopyPath is where the user's CV copy for the offer lives.
func (r *Renderer) CVCopyPath(offerID, userName string) string {
	return filepath.Join(r.OfferDir(offerID), fmt.Sprintf("%s_CV.pdf", SafeName(userName)))
}

// FilesPresent reports whether both expected output files exist. This
// check is authoritative for "needs (re)render".
func (r *Renderer) FilesPresent(offerID, userName string) bool {
	if _, err := os.Stat(r.LetterPath(offerID, userName)); err != nil {
		return false
	}
	if _, err := os.Stat(r.CVCopyPath(offerID, userName)); err != nil {
		return false
	}
	return true
}

// Render writes the letter PDF and copies the user's CV into the
// offer's folder, creating it as needed.
func (r *Renderer) Render(offerID, userName, letterText, cvPath string) error {
	dir := r.OfferDir(offerID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create offer dir: %w", err)
	}

	if err := r.renderPDF(r.LetterPath(offerID, userName), userName, letterText); err != nil {
		return fmt.Errorf("render letter: %w", err)
	}

	if err := copyFile(cvPath, r.CVCopyPath(offerID, userName)); err != nil {
		return fmt.Errorf("copy cv: %w", err)
	}

	r.logger.Info("letter rendered", "offer_id", offerID, "user", userName, "dir", dir)
	return nil
}

func (r *Renderer) renderPDF(path, userName, letterText string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetLeftMargin(25)
	pdf.SetRightMargin(25)

	family := "Helvetica"
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	if r.fontDir != "" {
		family = "DejaVu"
		pdf.AddUTF8Font(family, "", filepath.Join(r.fontDir, "DejaVuSans.ttf"))
		pdf.AddUTF8Font(family, "B", filepath.Join(r.fontDir, "DejaVuSans-Bold.ttf"))
		translate = func(s string) string { return s }
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(family, "B", 11)
		pdf.CellFormat(0, 10, translate(userName), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetDrawColor(100, 100, 100)
		pdf.Line(25, pdf.GetY(), 185, pdf.GetY())
		pdf.Ln(8)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(family, "", 9)
		pdf.CellFormat(0, 10, translate(fmt.Sprintf("Pàgina %d", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(family, "", 11)
	pdf.MultiCell(0, 10, translate(letterText), "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return err
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
