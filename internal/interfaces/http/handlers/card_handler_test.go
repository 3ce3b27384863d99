package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
)

type cardServiceStub struct {
	generateFn func(ctx context.Context, email string) (*entities.User, error)
	pdfFn      func(email string) (string, error)
	imageFn    func(email string) (string, error)
}

func (s cardServiceStub) Generate(ctx context.Context, email string) (*entities.User, error) {
	return s.generateFn(ctx, email)
}
func (s cardServiceStub) PDFPath(email string) (string, error)   { return s.pdfFn(email) }
func (s cardServiceStub) ImagePath(email string) (string, error) { return s.imageFn(email) }

func cardRouter(service CardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCardHandler(service)
	router := gin.New()
	router.GET("/generate-aadhaar-card/:email", h.Generate)
	router.GET("/download-pdf/:email", h.DownloadPDF)
	router.GET("/download-image/:email", h.DownloadImage)
	return router
}

func TestCardGenerate_Handler(t *testing.T) {
	router := cardRouter(cardServiceStub{
		generateFn: func(_ context.Context, email string) (*entities.User, error) {
			return &entities.User{Email: email, VID: "4821736450192837"}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate-aadhaar-card/asha@example.com", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sent to your email")
}

func TestCardGenerate_UnknownUserAndMailFailure(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown user", domainerrors.ErrNotFound, http.StatusNotFound},
		{"mail failure", domainerrors.ErrMailDelivery, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := cardRouter(cardServiceStub{
				generateFn: func(context.Context, string) (*entities.User, error) {
					return nil, tc.err
				},
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate-aadhaar-card/asha@example.com", nil))
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestCardDownloads(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "asha@example.com.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644))

	router := cardRouter(cardServiceStub{
		pdfFn: func(email string) (string, error) { return pdfPath, nil },
		imageFn: func(email string) (string, error) {
			return "", domainerrors.ErrCardNotGenerated
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download-pdf/asha@example.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "aadhaar-card.pdf")
	assert.Equal(t, "%PDF-1.4", w.Body.String())

	// never rendered
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download-image/asha@example.com", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
