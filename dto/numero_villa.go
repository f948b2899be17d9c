package dto

import "time"

// NumeroVillaCreateRequest es el DTO para crear un número de villa.
// VillaNo lo asigna el cliente y actúa como clave única.
type NumeroVillaCreateRequest struct {
	VillaNo         int    `json:"villaNo" binding:"required,min=1"`
	VillaId         int    `json:"villaId" binding:"required,min=1"`
	DetalleEspecial string `json:"detalleEspecial"`
}

// NumeroVillaUpdateRequest es el DTO para actualizar un número de villa
type NumeroVillaUpdateRequest struct {
	VillaNo         int    `json:"villaNo" validate:"required,min=1"`
	VillaId         int    `json:"villaId" validate:"required,min=1"`
	DetalleEspecial string `json:"detalleEspecial"`
}

// NumeroVillaResponse es el DTO de lectura de un número de villa
type NumeroVillaResponse struct {
	VillaNo            int       `json:"villaNo"`
	VillaId            int       `json:"villaId"`
	DetalleEspecial    string    `json:"detalleEspecial"`
	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}
