package dto

import "time"

// VillaCreateRequest es el DTO para crear una villa
type VillaCreateRequest struct {
	Nombre          string  `json:"nombre" binding:"required,max=100"`
	Detalle         string  `json:"detalle"`
	ImagenUrl       string  `json:"imagenUrl"`
	Ocupantes       int     `json:"ocupantes" binding:"omitempty,min=1"`
	MetrosCuadrados float64 `json:"metrosCuadrados" binding:"omitempty,min=0"`
	Tarifa          float64 `json:"tarifa" binding:"omitempty,min=0"`
	Amenidad        string  `json:"amenidad"`
}

// VillaUpdateRequest es el DTO para actualizar una villa; el Id debe
// coincidir con el de la ruta.
type VillaUpdateRequest struct {
	Id              int     `json:"id" validate:"required,min=1"`
	Nombre          string  `json:"nombre" validate:"required,max=100"`
	Detalle         string  `json:"detalle"`
	ImagenUrl       string  `json:"imagenUrl"`
	Ocupantes       int     `json:"ocupantes" validate:"omitempty,min=1"`
	MetrosCuadrados float64 `json:"metrosCuadrados" validate:"omitempty,min=0"`
	Tarifa          float64 `json:"tarifa" validate:"omitempty,min=0"`
	Amenidad        string  `json:"amenidad"`
}

// VillaResponse es el DTO de lectura de una villa
type VillaResponse struct {
	Id                 int       `json:"id"`
	Nombre             string    `json:"nombre"`
	Detalle            string    `json:"detalle"`
	ImagenUrl          string    `json:"imagenUrl"`
	Ocupantes          int       `json:"ocupantes"`
	MetrosCuadrados    float64   `json:"metrosCuadrados"`
	Tarifa             float64   `json:"tarifa"`
	Amenidad           string    `json:"amenidad"`
	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}
