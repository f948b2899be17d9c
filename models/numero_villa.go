package models

import (
	"time"
)

// NumeroVilla es un número de unidad perteneciente a una Villa.
// VillaNo lo asigna el cliente, no la base de datos.
type NumeroVilla struct {
	VillaNo            int       `json:"villaNo" gorm:"primaryKey;autoIncrement:false"`
	VillaId            int       `json:"villaId" gorm:"not null"`
	DetalleEspecial    string    `json:"detalleEspecial"`
	FechaCreacion      time.Time `json:"fechaCreacion" gorm:"autoCreateTime"`
	FechaActualizacion time.Time `json:"fechaActualizacion" gorm:"autoUpdateTime"`

	Villa Villa `json:"-" gorm:"foreignKey:VillaId;constraint:OnDelete:RESTRICT"`
}
