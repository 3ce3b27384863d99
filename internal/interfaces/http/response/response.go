package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Sentinel domain errors are translated to
// their wire shape; anything unrecognized becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrDuplicateIdentity):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeConflict,
			"Aadhaar number or email already registered.", err)
	case errors.Is(err, domainerrors.ErrInvalidOTP):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidOTP,
			"Invalid OTP.", err)
	case errors.Is(err, domainerrors.ErrOTPExpired):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeOTPExpired,
			"OTP has expired.", err)
	case errors.Is(err, domainerrors.ErrMailDelivery):
		return domainerrors.NewAppError(http.StatusBadGateway, domainerrors.CodeMailDelivery,
			"Failed to send email. Please try again.", err)
	case errors.Is(err, domainerrors.ErrCardNotGenerated):
		return domainerrors.NewAppError(http.StatusNotFound, domainerrors.CodeNotFound,
			"Card has not been generated yet.", err)
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NewAppError(http.StatusNotFound, domainerrors.CodeNotFound,
			"Resource not found.", err)
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials,
			"Invalid email or password.", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized,
			"Unauthorized.", err)
	default:
		return domainerrors.InternalError(err)
	}
}
