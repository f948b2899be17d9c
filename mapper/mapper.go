// Package mapper define la correspondencia campo a campo entre los modelos
// persistidos y sus DTOs. Son funciones puras, sin acceso a almacenamiento.
package mapper

import (
	"magicvilla/dto"
	"magicvilla/models"
)

func AVillaResponse(v models.Villa) dto.VillaResponse {
	return dto.VillaResponse{
		Id:                 v.Id,
		Nombre:             v.Nombre,
		Detalle:            v.Detalle,
		ImagenUrl:          v.ImagenUrl,
		Ocupantes:          v.Ocupantes,
		MetrosCuadrados:    v.MetrosCuadrados,
		Tarifa:             v.Tarifa,
		Amenidad:           v.Amenidad,
		FechaCreacion:      v.FechaCreacion,
		FechaActualizacion: v.FechaActualizacion,
	}
}

func AVillaResponseLista(villas []models.Villa) []dto.VillaResponse {
	lista := make([]dto.VillaResponse, 0, len(villas))
	for _, v := range villas {
		lista = append(lista, AVillaResponse(v))
	}
	return lista
}

func DesdeVillaCreate(req dto.VillaCreateRequest) models.Villa {
	return models.Villa{
		Nombre:          req.Nombre,
		Detalle:         req.Detalle,
		ImagenUrl:       req.ImagenUrl,
		Ocupantes:       req.Ocupantes,
		MetrosCuadrados: req.MetrosCuadrados,
		Tarifa:          req.Tarifa,
		Amenidad:        req.Amenidad,
	}
}

func DesdeVillaUpdate(req dto.VillaUpdateRequest) models.Villa {
	return models.Villa{
		Id:              req.Id,
		Nombre:          req.Nombre,
		Detalle:         req.Detalle,
		ImagenUrl:       req.ImagenUrl,
		Ocupantes:       req.Ocupantes,
		MetrosCuadrados: req.MetrosCuadrados,
		Tarifa:          req.Tarifa,
		Amenidad:        req.Amenidad,
	}
}

// AVillaUpdate proyecta el modelo a su DTO de actualización; es el primer
// paso de la secuencia de parche (leer-modificar-escribir).
func AVillaUpdate(v models.Villa) dto.VillaUpdateRequest {
	return dto.VillaUpdateRequest{
		Id:              v.Id,
		Nombre:          v.Nombre,
		Detalle:         v.Detalle,
		ImagenUrl:       v.ImagenUrl,
		Ocupantes:       v.Ocupantes,
		MetrosCuadrados: v.MetrosCuadrados,
		Tarifa:          v.Tarifa,
		Amenidad:        v.Amenidad,
	}
}

func ANumeroVillaResponse(n models.NumeroVilla) dto.NumeroVillaResponse {
	return dto.NumeroVillaResponse{
		VillaNo:            n.VillaNo,
		VillaId:            n.VillaId,
		DetalleEspecial:    n.DetalleEspecial,
		FechaCreacion:      n.FechaCreacion,
		FechaActualizacion: n.FechaActualizacion,
	}
}

func ANumeroVillaResponseLista(numeros []models.NumeroVilla) []dto.NumeroVillaResponse {
	lista := make([]dto.NumeroVillaResponse, 0, len(numeros))
	for _, n := range numeros {
		lista = append(lista, ANumeroVillaResponse(n))
	}
	return lista
}

func DesdeNumeroVillaCreate(req dto.NumeroVillaCreateRequest) models.NumeroVilla {
	return models.NumeroVilla{
		VillaNo:         req.VillaNo,
		VillaId:         req.VillaId,
		DetalleEspecial: req.DetalleEspecial,
	}
}

func DesdeNumeroVillaUpdate(req dto.NumeroVillaUpdateRequest) models.NumeroVilla {
	return models.NumeroVilla{
		VillaNo:         req.VillaNo,
		VillaId:         req.VillaId,
		DetalleEspecial: req.DetalleEspecial,
	}
}

func ANumeroVillaUpdate(n models.NumeroVilla) dto.NumeroVillaUpdateRequest {
	return dto.NumeroVillaUpdateRequest{
		VillaNo:         n.VillaNo,
		VillaId:         n.VillaId,
		DetalleEspecial: n.DetalleEspecial,
	}
}
