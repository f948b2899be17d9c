package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	v10 "github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"magicvilla/dto"
	apperrors "magicvilla/errors"
	"magicvilla/mapper"
	"magicvilla/models"
	"magicvilla/repository"
	"magicvilla/response"
	"magicvilla/services"
	"magicvilla/services/logger"
	validador "magicvilla/validator"
)

type NumeroVillaController struct {
	numeroRepo *repository.NumeroVillaRepositorio
	villaRepo  *repository.VillaRepositorio
	rdb        *redis.Client
	logger     logger.Logger
	validate   *v10.Validate
}

func NewNumeroVillaController(db *gorm.DB, rdb *redis.Client) *NumeroVillaController {
	return &NumeroVillaController{
		numeroRepo: repository.NuevoNumeroVillaRepositorio(db),
		villaRepo:  repository.NuevoVillaRepositorio(db),
		rdb:        rdb,
		logger:     logger.NewDefaultLogger(logger.InfoLevel),
		validate:   v10.New(),
	}
}

// villaExiste verifica la integridad referencial a nivel de aplicación
// antes de insertar o actualizar.
func (nc *NumeroVillaController) villaExiste(c *gin.Context, villaId int) (bool, bool) {
	villa, err := nc.villaRepo.ObtenerPorId(c.Request.Context(), villaId, true)
	if err != nil {
		responderError(c, nc.logger, err)
		return false, false
	}
	return villa != nil, true
}

// GetNumeroVillas lista todos los números de villa
func (nc *NumeroVillaController) GetNumeroVillas(c *gin.Context) {
	ctx := c.Request.Context()
	nc.logger.Info("obtener los números de villa")

	var numeros []models.NumeroVilla
	desdeCache := false

	if nc.rdb != nil {
		if err := services.GetFromRedis(ctx, nc.rdb, services.CacheKeyNumeros, &numeros); err == nil && len(numeros) > 0 {
			desdeCache = true
		}
	}

	if !desdeCache {
		var err error
		numeros, err = nc.numeroRepo.ObtenerTodos(ctx)
		if err != nil {
			responderError(c, nc.logger, err)
			return
		}

		if nc.rdb != nil && len(numeros) > 0 {
			if err := services.SetToRedis(ctx, nc.rdb, services.CacheKeyNumeros, numeros, services.CacheTTL); err != nil {
				nc.logger.Error("error al guardar números de villa en cache: %v", err)
			}
		}
	}

	response.Success(c, mapper.ANumeroVillaResponseLista(numeros))
}

// GetNumeroVillaById obtiene un número de villa por su VillaNo
func (nc *NumeroVillaController) GetNumeroVillaById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		nc.logger.Error("error al traer número de villa con id: %s", c.Param("id"))
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeIdInvalido, "id inválido", nil))
		return
	}

	numero, err := nc.numeroRepo.ObtenerPorNumero(ctx, id, true)
	if err != nil {
		responderError(c, nc.logger, err)
		return
	}
	if numero == nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "número de villa no encontrado", nil))
		return
	}

	response.Success(c, mapper.ANumeroVillaResponse(*numero))
}

// AddNumeroVilla crea un número de villa nuevo
func (nc *NumeroVillaController) AddNumeroVilla(c *gin.Context) {
	ctx := c.Request.Context()

	var createDto dto.NumeroVillaCreateRequest
	if err := c.ShouldBindJSON(&createDto); err != nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "datos inválidos: "+err.Error(), nil))
		return
	}

	existente, err := nc.numeroRepo.ObtenerPorNumero(ctx, createDto.VillaNo, true)
	if err != nil {
		responderError(c, nc.logger, err)
		return
	}
	if existente != nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeNumeroExiste, "el número de villa ya existe", nil))
		return
	}

	existe, ok := nc.villaExiste(c, createDto.VillaId)
	if !ok {
		return
	}
	if !existe {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeClaveForanea, "el id de villa no existe", nil))
		return
	}

	modelo := mapper.DesdeNumeroVillaCreate(createDto)
	if err := validador.ValidarNumeroVilla(&modelo); err != nil {
		responderError(c, nc.logger, err)
		return
	}

	if err := nc.numeroRepo.Crear(ctx, &modelo); err != nil {
		responderError(c, nc.logger, err)
		return
	}

	invalidarCache(ctx, nc.rdb, nc.logger, services.CacheKeyNumeros)

	location := fmt.Sprintf("/api/NumeroVilla/%d", modelo.VillaNo)
	response.Created(c, location, mapper.ANumeroVillaResponse(modelo))
}

// UpdateNumeroVillaById reemplaza por completo un número de villa,
// revalidando la clave foránea hacia Villa.
func (nc *NumeroVillaController) UpdateNumeroVillaById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeIdInvalido, "id inválido", nil))
		return
	}

	var updateDto dto.NumeroVillaUpdateRequest
	if err := c.ShouldBindJSON(&updateDto); err != nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "datos inválidos: "+err.Error(), nil))
		return
	}

	if id != updateDto.VillaNo {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeIdNoCoincide, "el número de la ruta no coincide con el del cuerpo", nil))
		return
	}

	if err := nc.validate.Struct(updateDto); err != nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "datos inválidos: "+err.Error(), nil))
		return
	}

	existe, ok := nc.villaExiste(c, updateDto.VillaId)
	if !ok {
		return
	}
	if !existe {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeClaveForanea, "el id de villa no existe", nil))
		return
	}

	modelo := mapper.DesdeNumeroVillaUpdate(updateDto)
	if err := nc.numeroRepo.Actualizar(ctx, &modelo); err != nil {
		responderError(c, nc.logger, err)
		return
	}

	invalidarCache(ctx, nc.rdb, nc.logger, services.CacheKeyNumeros)
	response.NoContent(c)
}

// UpdatePartialNumeroVillaById aplica un documento parche sobre un número
// de villa. La clave foránea resultante se revalida antes de persistir.
func (nc *NumeroVillaController) UpdatePartialNumeroVillaById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeIdInvalido, "id inválido", nil))
		return
	}

	var parche dto.DocumentoParche
	if err := c.ShouldBindJSON(&parche); err != nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "documento parche inválido: "+err.Error(), nil))
		return
	}

	numero, err := nc.numeroRepo.ObtenerPorNumero(ctx, id, false)
	if err != nil {
		responderError(c, nc.logger, err)
		return
	}
	if numero == nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "número de villa no encontrado", nil))
		return
	}

	numeroDto := mapper.ANumeroVillaUpdate(*numero)

	// VillaNo se fija por la ruta, no por el parche
	if err := parche.AplicarA(&numeroDto, "/villaNo"); err != nil {
		responderError(c, nc.logger, err)
		return
	}

	if err := nc.validate.Struct(numeroDto); err != nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "el parche deja el DTO inválido: "+err.Error(), nil))
		return
	}

	existe, ok := nc.villaExiste(c, numeroDto.VillaId)
	if !ok {
		return
	}
	if !existe {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeClaveForanea, "el id de villa no existe", nil))
		return
	}

	modelo := mapper.DesdeNumeroVillaUpdate(numeroDto)
	modelo.VillaNo = id

	if err := nc.numeroRepo.Actualizar(ctx, &modelo); err != nil {
		responderError(c, nc.logger, err)
		return
	}

	invalidarCache(ctx, nc.rdb, nc.logger, services.CacheKeyNumeros)
	response.NoContent(c)
}

// DeleteNumeroVillaById elimina un número de villa de forma permanente
func (nc *NumeroVillaController) DeleteNumeroVillaById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeIdInvalido, "id inválido", nil))
		return
	}

	numero, err := nc.numeroRepo.ObtenerPorNumero(ctx, id, true)
	if err != nil {
		responderError(c, nc.logger, err)
		return
	}
	if numero == nil {
		responderError(c, nc.logger, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "número de villa no encontrado", nil))
		return
	}

	if err := nc.numeroRepo.Remover(ctx, numero); err != nil {
		responderError(c, nc.logger, err)
		return
	}

	invalidarCache(ctx, nc.rdb, nc.logger, services.CacheKeyNumeros)
	response.NoContent(c)
}
