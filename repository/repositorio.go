// Package repository media todas las lecturas y escrituras contra una tabla,
// ocultando el acceso directo a gorm a la capa de controladores.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "magicvilla/errors"
)

// Repositorio implementa el acceso genérico a datos de una entidad.
type Repositorio[T any] struct {
	db *gorm.DB
}

func NuevoRepositorio[T any](db *gorm.DB) *Repositorio[T] {
	return &Repositorio[T]{db: db}
}

// ObtenerTodos devuelve todas las filas, sin filtro ni paginación.
func (r *Repositorio[T]) ObtenerTodos(ctx context.Context) ([]T, error) {
	var entidades []T
	if err := r.db.WithContext(ctx).Find(&entidades).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "error al consultar la base de datos", err)
	}
	return entidades, nil
}

// Obtener devuelve la primera fila que cumple la condición, o nil si no
// existe: la ausencia es un valor, no un error. Con tracked=false la consulta
// corre sobre una sesión nueva, de modo que la copia devuelta queda
// desligada de escrituras posteriores sobre la misma sesión; es el paso
// previo obligado de la secuencia de parche.
func (r *Repositorio[T]) Obtener(ctx context.Context, tracked bool, cond string, args ...interface{}) (*T, error) {
	db := r.db
	if !tracked {
		db = r.db.Session(&gorm.Session{NewDB: true})
	}

	var entidad T
	err := db.WithContext(ctx).Where(cond, args...).First(&entidad).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "error al consultar la base de datos", err)
	}
	return &entidad, nil
}

// Crear inserta la fila y confirma. El rechazo por restricción única de la
// base es la señal autoritativa de duplicado; la verificación previa del
// controlador sólo mejora el mensaje al usuario.
func (r *Repositorio[T]) Crear(ctx context.Context, entidad *T) error {
	// Cada escritura toca exactamente una tabla; las asociaciones nunca se
	// persisten en cascada.
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entidad).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewAppError(apperrors.ErrCodeDBDuplicate, "ya existe una fila con esa clave", err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.NewAppError(apperrors.ErrCodeClaveForanea, "la clave foránea no existe", err)
	}
	return apperrors.NewAppError(apperrors.ErrCodeDBError, "error al insertar en la base de datos", err)
}

// Actualizar reemplaza por completo la fila identificada por la clave
// primaria de la entidad y confirma. La fecha de creación no se toca.
func (r *Repositorio[T]) Actualizar(ctx context.Context, entidad *T) error {
	err := r.db.WithContext(ctx).
		Model(entidad).
		Select("*").
		Omit("fecha_creacion", clause.Associations).
		Updates(entidad).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewAppError(apperrors.ErrCodeDBDuplicate, "ya existe una fila con esa clave", err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.NewAppError(apperrors.ErrCodeClaveForanea, "la clave foránea no existe", err)
	}
	return apperrors.NewAppError(apperrors.ErrCodeDBError, "error al actualizar la base de datos", err)
}

// Remover elimina la fila y confirma (borrado físico).
func (r *Repositorio[T]) Remover(ctx context.Context, entidad *T) error {
	if err := r.db.WithContext(ctx).Delete(entidad).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.NewAppError(apperrors.ErrCodeClaveForanea, "otras filas dependen de esta entidad", err)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "error al eliminar de la base de datos", err)
	}
	return nil
}
