package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"magicvilla/models"
	"magicvilla/routes"
)

// envoltura refleja el ApiResponse serializado, con el resultado crudo
// para decodificarlo según el caso.
type envoltura struct {
	Codigo        int             `json:"statusCode"`
	IsExitoso     bool            `json:"isExitoso"`
	ErrorMessages []string        `json:"errorMessages"`
	Resultado     json.RawMessage `json:"resultado"`
}

func setupServidor(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Villa{}, &models.NumeroVilla{}))

	router := gin.New()
	routes.SetupRoutes(router, db, nil)
	return router, db
}

func hacerRequest(t *testing.T, router *gin.Engine, metodo, ruta, cuerpo string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	var err error
	if cuerpo == "" {
		req, err = http.NewRequest(metodo, ruta, nil)
	} else {
		req, err = http.NewRequest(metodo, ruta, strings.NewReader(cuerpo))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodificar(t *testing.T, w *httptest.ResponseRecorder) envoltura {
	t.Helper()

	var env envoltura
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
