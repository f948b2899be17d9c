package models

import (
	"time"
)

// Villa representa una unidad rentable.
type Villa struct {
	Id                 int       `json:"id" gorm:"primaryKey"`
	Nombre             string    `json:"nombre" gorm:"uniqueIndex;not null"`
	Detalle            string    `json:"detalle"`
	ImagenUrl          string    `json:"imagenUrl"`
	Ocupantes          int       `json:"ocupantes"`
	MetrosCuadrados    float64   `json:"metrosCuadrados"`
	Tarifa             float64   `json:"tarifa"`
	Amenidad           string    `json:"amenidad"`
	FechaCreacion      time.Time `json:"fechaCreacion" gorm:"autoCreateTime"`
	FechaActualizacion time.Time `json:"fechaActualizacion" gorm:"autoUpdateTime"`
}
