package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "magicvilla/errors"
	"magicvilla/models"
)

// VillaRepositorio agrega a las operaciones genéricas las búsquedas con
// clave propias de Villa.
type VillaRepositorio struct {
	*Repositorio[models.Villa]
}

func NuevoVillaRepositorio(db *gorm.DB) *VillaRepositorio {
	return &VillaRepositorio{Repositorio: NuevoRepositorio[models.Villa](db)}
}

func (r *VillaRepositorio) ObtenerPorId(ctx context.Context, id int, tracked bool) (*models.Villa, error) {
	return r.Obtener(ctx, tracked, "id = ?", id)
}

// ObtenerPorNombre busca sin distinguir mayúsculas; es la verificación
// rápida de unicidad previa al insert.
func (r *VillaRepositorio) ObtenerPorNombre(ctx context.Context, nombre string) (*models.Villa, error) {
	return r.Obtener(ctx, true, "LOWER(nombre) = LOWER(?)", nombre)
}

// NumeroVillaRepositorio agrega las búsquedas con clave de NumeroVilla.
type NumeroVillaRepositorio struct {
	*Repositorio[models.NumeroVilla]
}

func NuevoNumeroVillaRepositorio(db *gorm.DB) *NumeroVillaRepositorio {
	return &NumeroVillaRepositorio{Repositorio: NuevoRepositorio[models.NumeroVilla](db)}
}

func (r *NumeroVillaRepositorio) ObtenerPorNumero(ctx context.Context, villaNo int, tracked bool) (*models.NumeroVilla, error) {
	return r.Obtener(ctx, tracked, "villa_no = ?", villaNo)
}

// ContarPorVilla cuenta los números que referencian a una villa; respalda la
// regla de borrado restringido de Villa.
func (r *NumeroVillaRepositorio) ContarPorVilla(ctx context.Context, villaId int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.NumeroVilla{}).
		Where("villa_id = ?", villaId).
		Count(&total).Error
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "error al consultar la base de datos", err)
	}
	return total, nil
}
