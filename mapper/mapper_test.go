package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"magicvilla/dto"
	"magicvilla/models"
)

func TestVillaIdaYVuelta(t *testing.T) {
	ahora := time.Now()
	villa := models.Villa{
		Id:                 7,
		Nombre:             "Casa Real",
		Detalle:            "frente al mar",
		ImagenUrl:          "https://ejemplo.com/casa.jpg",
		Ocupantes:          4,
		MetrosCuadrados:    120.5,
		Tarifa:             150.0,
		Amenidad:           "piscina",
		FechaCreacion:      ahora,
		FechaActualizacion: ahora,
	}

	resp := AVillaResponse(villa)
	assert.Equal(t, villa.Id, resp.Id)
	assert.Equal(t, villa.Nombre, resp.Nombre)
	assert.Equal(t, villa.Tarifa, resp.Tarifa)
	assert.Equal(t, villa.FechaCreacion, resp.FechaCreacion)

	// entidad → DTO de actualización → entidad conserva los campos de negocio
	vuelta := DesdeVillaUpdate(AVillaUpdate(villa))
	assert.Equal(t, villa.Id, vuelta.Id)
	assert.Equal(t, villa.Nombre, vuelta.Nombre)
	assert.Equal(t, villa.Detalle, vuelta.Detalle)
	assert.Equal(t, villa.ImagenUrl, vuelta.ImagenUrl)
	assert.Equal(t, villa.Ocupantes, vuelta.Ocupantes)
	assert.Equal(t, villa.MetrosCuadrados, vuelta.MetrosCuadrados)
	assert.Equal(t, villa.Tarifa, vuelta.Tarifa)
	assert.Equal(t, villa.Amenidad, vuelta.Amenidad)
}

func TestDesdeVillaCreateNoAsignaId(t *testing.T) {
	modelo := DesdeVillaCreate(dto.VillaCreateRequest{
		Nombre:    "Casa Real",
		Ocupantes: 4,
		Tarifa:    150.0,
	})

	assert.Zero(t, modelo.Id)
	assert.Equal(t, "Casa Real", modelo.Nombre)
	assert.True(t, modelo.FechaCreacion.IsZero())
}

func TestNumeroVillaIdaYVuelta(t *testing.T) {
	numero := models.NumeroVilla{
		VillaNo:         101,
		VillaId:         7,
		DetalleEspecial: "último piso",
	}

	resp := ANumeroVillaResponse(numero)
	assert.Equal(t, 101, resp.VillaNo)
	assert.Equal(t, 7, resp.VillaId)

	vuelta := DesdeNumeroVillaUpdate(ANumeroVillaUpdate(numero))
	assert.Equal(t, numero.VillaNo, vuelta.VillaNo)
	assert.Equal(t, numero.VillaId, vuelta.VillaId)
	assert.Equal(t, numero.DetalleEspecial, vuelta.DetalleEspecial)
}

func TestListasVacias(t *testing.T) {
	assert.NotNil(t, AVillaResponseLista(nil))
	assert.Empty(t, AVillaResponseLista(nil))
	assert.NotNil(t, ANumeroVillaResponseLista([]models.NumeroVilla{}))
}
