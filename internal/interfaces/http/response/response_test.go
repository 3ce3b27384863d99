package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/interfaces/http/response"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestError_AppErrorPassthrough(t *testing.T) {
	w, body := recordError(t, domainerrors.NotFound("no such user"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domainerrors.CodeNotFound, body["code"])
	assert.Equal(t, "no such user", body["message"])
	assert.Equal(t, "no such user", body["error"])
}

func TestError_SentinelMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"duplicate identity", domainerrors.ErrDuplicateIdentity, http.StatusBadRequest, domainerrors.CodeConflict},
		{"invalid otp", domainerrors.ErrInvalidOTP, http.StatusBadRequest, domainerrors.CodeInvalidOTP},
		{"expired otp", domainerrors.ErrOTPExpired, http.StatusBadRequest, domainerrors.CodeOTPExpired},
		{"mail delivery", domainerrors.ErrMailDelivery, http.StatusBadGateway, domainerrors.CodeMailDelivery},
		{"card missing", domainerrors.ErrCardNotGenerated, http.StatusNotFound, domainerrors.CodeNotFound},
		{"not found", domainerrors.ErrNotFound, http.StatusNotFound, domainerrors.CodeNotFound},
		{"bad credentials", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, domainerrors.CodeInvalidCredentials},
		{"anything else", assert.AnError, http.StatusInternalServerError, domainerrors.CodeInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := recordError(t, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, body["code"])
		})
	}
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Success(c, http.StatusCreated, gin.H{"ok": true})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
