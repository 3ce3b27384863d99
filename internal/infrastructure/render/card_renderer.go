package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/go-pdf/fpdf"
)

// Card canvas size used when no template image is configured. Matches the
// aspect ratio of a standard ID card.
const (
	defaultWidth  = 900
	defaultHeight = 568
)

// Fields are the identity values printed onto the card
type Fields struct {
	Name         string
	DOB          string
	Gender       string
	VID          string
	MaskedNumber string
}

// Config holds renderer settings
type Config struct {
	TemplatePath string // base card image; blank card drawn when empty/missing
	FontPath     string // TTF for field text; gg's built-in face when empty
	OutputDir    string
}

// Renderer fills a card template with identity fields and produces a PNG and
// a single-page PDF per user, keyed by email. Concurrent renders for the same
// email are not excluded: last writer wins.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a new card renderer
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// ArtifactPaths returns where the card files for an email live, whether or
// not they exist yet.
func (r *Renderer) ArtifactPaths(email string) (pdfPath, imagePath string) {
	name := filepath.Base(email) // email is validated upstream; Base guards traversal
	return filepath.Join(r.cfg.OutputDir, name+".pdf"), filepath.Join(r.cfg.OutputDir, name+".png")
}

// Render draws the fields at fixed coordinates, writes the PNG, then embeds
// it as page 1 of the PDF. Returns the written paths.
func (r *Renderer) Render(email string, f Fields) (pdfPath, imagePath string, err error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	dc, err := r.baseCanvas()
	if err != nil {
		return "", "", err
	}

	if r.cfg.FontPath != "" {
		if err := dc.LoadFontFace(r.cfg.FontPath, 28); err != nil {
			return "", "", fmt.Errorf("load font: %w", err)
		}
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawString("Name: "+f.Name, 60, 180)
	dc.DrawString("DOB: "+f.DOB, 60, 230)
	dc.DrawString("Gender: "+f.Gender, 60, 280)
	dc.DrawString("VID: "+f.VID, 60, 330)

	dc.SetRGB(0.75, 0.1, 0.1)
	dc.DrawString(f.MaskedNumber, 60, 420)

	pdfPath, imagePath = r.ArtifactPaths(email)

	if err := dc.SavePNG(imagePath); err != nil {
		return "", "", fmt.Errorf("write card image: %w", err)
	}

	if err := r.writePDF(imagePath, pdfPath, dc.Width(), dc.Height()); err != nil {
		return "", "", err
	}

	return pdfPath, imagePath, nil
}

func (r *Renderer) baseCanvas() (*gg.Context, error) {
	if r.cfg.TemplatePath != "" {
		img, err := gg.LoadImage(r.cfg.TemplatePath)
		if err == nil {
			return gg.NewContextForImage(img), nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load template: %w", err)
		}
	}

	// blank card fallback: white body with a header band
	dc := gg.NewContext(defaultWidth, defaultHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB255(247, 148, 29)
	dc.DrawRectangle(0, 0, defaultWidth, 80)
	dc.Fill()
	dc.SetRGB255(19, 136, 8)
	dc.DrawRectangle(0, defaultHeight-40, defaultWidth, 40)
	dc.Fill()
	return dc, nil
}

func (r *Renderer) writePDF(imagePath, pdfPath string, widthPx, heightPx int) error {
	// 300 DPI: pixels to points
	const dpi = 300.0
	wd := float64(widthPx) * 72 / dpi
	ht := float64(heightPx) * 72 / dpi

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.AddPage()
	pdf.ImageOptions(imagePath, 0, 0, wd, ht, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		return fmt.Errorf("write card pdf: %w", err)
	}
	return nil
}
