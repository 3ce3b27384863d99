package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFields() Fields {
	return Fields{
		Name:         "Alice",
		DOB:          "1990-04-12",
		Gender:       "female",
		VID:          "1234567890123456",
		MaskedNumber: "XXXX XXXX 3333",
	}
}

func TestRender_WritesBothArtifacts(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(Config{OutputDir: dir})

	pdfPath, imagePath, err := r.Render("alice@example.com", sampleFields())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "alice@example.com.pdf"), pdfPath)
	assert.Equal(t, filepath.Join(dir, "alice@example.com.png"), imagePath)

	f, err := os.Open(imagePath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, img.Bounds().Dx())
	assert.Equal(t, defaultHeight, img.Bounds().Dy())

	pdfBytes, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 4 && string(pdfBytes[:4]) == "%PDF")
}

func TestRender_UsesTemplateDimensions(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.png")

	dc := gg.NewContext(640, 400)
	dc.SetRGB(0.9, 0.9, 0.8)
	dc.Clear()
	require.NoError(t, dc.SavePNG(templatePath))

	r := NewRenderer(Config{TemplatePath: templatePath, OutputDir: dir})
	_, imagePath, err := r.Render("bob@example.com", sampleFields())
	require.NoError(t, err)

	f, err := os.Open(imagePath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestRender_MissingTemplateFallsBack(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(Config{TemplatePath: filepath.Join(dir, "nope.png"), OutputDir: dir})

	_, _, err := r.Render("carol@example.com", sampleFields())
	assert.NoError(t, err)
}

func TestRender_LastWriterWins(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(Config{OutputDir: dir})

	_, imagePath, err := r.Render("alice@example.com", sampleFields())
	require.NoError(t, err)
	firstInfo, err := os.Stat(imagePath)
	require.NoError(t, err)

	fields := sampleFields()
	fields.Name = "Alice Updated"
	_, imagePath2, err := r.Render("alice@example.com", fields)
	require.NoError(t, err)
	assert.Equal(t, imagePath, imagePath2)

	secondInfo, err := os.Stat(imagePath)
	require.NoError(t, err)
	assert.False(t, secondInfo.ModTime().Before(firstInfo.ModTime()))
}

func TestArtifactPaths_StripsPathComponents(t *testing.T) {
	r := NewRenderer(Config{OutputDir: "/tmp/cards"})
	pdfPath, imagePath := r.ArtifactPaths("../../etc/passwd")
	assert.Equal(t, "/tmp/cards/passwd.pdf", pdfPath)
	assert.Equal(t, "/tmp/cards/passwd.png", imagePath)
}
