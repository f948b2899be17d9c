package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiResponse es la envoltura uniforme de toda respuesta: código de estado,
// bandera de éxito, lista de mensajes de error y la carga útil.
type ApiResponse struct {
	Codigo        int         `json:"statusCode"`
	IsExitoso     bool        `json:"isExitoso"`
	ErrorMessages []string    `json:"errorMessages"`
	Resultado     interface{} `json:"resultado,omitempty"`
}

func nueva(codigo int, resultado interface{}) ApiResponse {
	return ApiResponse{
		Codigo:        codigo,
		IsExitoso:     true,
		ErrorMessages: []string{},
		Resultado:     resultado,
	}
}

func nuevaError(codigo int, mensajes ...string) ApiResponse {
	return ApiResponse{
		Codigo:        codigo,
		IsExitoso:     false,
		ErrorMessages: mensajes,
	}
}

// Success responde 200 con el resultado envuelto
func Success(c *gin.Context, resultado interface{}) {
	c.JSON(http.StatusOK, nueva(http.StatusOK, resultado))
}

// Created responde 201 con el recurso creado y la cabecera Location
// apuntando a su ruta de lectura.
func Created(c *gin.Context, location string, resultado interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, nueva(http.StatusCreated, resultado))
}

// NoContent responde una operación exitosa sin carga útil. El HTTP va en 200
// para poder transportar la envoltura; el código 204 viaja dentro de ella.
func NoContent(c *gin.Context) {
	c.JSON(http.StatusOK, nueva(http.StatusNoContent, nil))
}

// BadRequest responde 400 con los mensajes de validación
func BadRequest(c *gin.Context, mensajes ...string) {
	if len(mensajes) == 0 {
		mensajes = []string{"solicitud inválida"}
	}
	c.JSON(http.StatusBadRequest, nuevaError(http.StatusBadRequest, mensajes...))
}

// NotFound responde 404
func NotFound(c *gin.Context, mensaje string) {
	c.JSON(http.StatusNotFound, nuevaError(http.StatusNotFound, mensaje))
}

// ServerError responde 500. Toda falla de almacenamiento no clasificada
// termina aquí, siempre con el mismo código.
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError,
		nuevaError(http.StatusInternalServerError, fmt.Sprintf("error interno: %v", err)))
}
