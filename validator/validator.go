package validator

import (
	"magicvilla/errors"
	"magicvilla/models"
)

// ValidarVilla valida el modelo a nivel de negocio antes de persistir
func ValidarVilla(villa *models.Villa) error {
	if villa.Nombre == "" {
		return errors.NewAppError(errors.ErrCodeCampoRequerido, "el nombre no puede estar vacío", nil)
	}

	if len(villa.Nombre) > 100 {
		return errors.NewAppError(errors.ErrCodeValidacion, "el nombre no puede superar 100 caracteres", nil)
	}

	if villa.Ocupantes < 0 {
		return errors.NewAppError(errors.ErrCodeValidacion, "los ocupantes no pueden ser negativos", nil)
	}

	if villa.MetrosCuadrados < 0 {
		return errors.NewAppError(errors.ErrCodeValidacion, "los metros cuadrados no pueden ser negativos", nil)
	}

	if villa.Tarifa < 0 {
		return errors.NewAppError(errors.ErrCodeValidacion, "la tarifa no puede ser negativa", nil)
	}

	return nil
}

// ValidarNumeroVilla valida el modelo de número de villa
func ValidarNumeroVilla(numero *models.NumeroVilla) error {
	if numero.VillaNo <= 0 {
		return errors.NewAppError(errors.ErrCodeValidacion, "el número de villa debe ser positivo", nil)
	}

	if numero.VillaId <= 0 {
		return errors.NewAppError(errors.ErrCodeValidacion, "el id de villa debe ser positivo", nil)
	}

	return nil
}
