package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode define el código de error de la aplicación
type ErrorCode string

const (
	// Errores de validación
	ErrCodeValidacion      ErrorCode = "VALIDATION_ERROR"
	ErrCodeCampoRequerido  ErrorCode = "REQUIRED_FIELD"
	ErrCodeFormatoInvalido ErrorCode = "INVALID_FORMAT"
	ErrCodeIdInvalido      ErrorCode = "INVALID_ID"
	ErrCodeIdNoCoincide    ErrorCode = "ID_MISMATCH"

	// Errores de dominio
	ErrCodeNombreExiste    ErrorCode = "NOMBRE_EXISTE"
	ErrCodeNumeroExiste    ErrorCode = "NUMERO_VILLA_EXISTE"
	ErrCodeClaveForanea    ErrorCode = "CLAVE_FORANEA"
	ErrCodeVillaConNumeros ErrorCode = "VILLA_CON_NUMEROS"

	// Errores de base de datos
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Errores del documento parche
	ErrCodeParcheRuta      ErrorCode = "PATCH_PATH"
	ErrCodeParcheOperacion ErrorCode = "PATCH_OP"
)

// AppError define el error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un AppError nuevo
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError verifica si el error es un AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extrae el AppError de un error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HTTPStatus traduce el código de error a un status HTTP según la taxonomía:
// validación, duplicado y clave foránea responden 400, ausencia 404 y
// cualquier falla de almacenamiento 500.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeDBNotFound:
		return http.StatusNotFound
	case ErrCodeDBError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
