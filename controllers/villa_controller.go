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

type VillaController struct {
	villaRepo  *repository.VillaRepositorio
	numeroRepo *repository.NumeroVillaRepositorio
	rdb        *redis.Client
	logger     logger.Logger
	validate   *v10.Validate
}

func NewVillaController(db *gorm.DB, rdb *redis.Client) *VillaController {
	return &VillaController{
		villaRepo:  repository.NuevoVillaRepositorio(db),
		numeroRepo: repository.NuevoNumeroVillaRepositorio(db),
		rdb:        rdb,
		logger:     logger.NewDefaultLogger(logger.InfoLevel),
		validate:   v10.New(),
	}
}

// GetVillas lista todas las villas
func (vc *VillaController) GetVillas(c *gin.Context) {
	ctx := c.Request.Context()
	vc.logger.Info("obtener las villas")

	var villas []models.Villa
	desdeCache := false

	if vc.rdb != nil {
		if err := services.GetFromRedis(ctx, vc.rdb, services.CacheKeyVillas, &villas); err == nil && len(villas) > 0 {
			desdeCache = true
		}
	}

	if !desdeCache {
		var err error
		villas, err = vc.villaRepo.ObtenerTodos(ctx)
		if err != nil {
			responderError(c, vc.logger, err)
			return
		}

		if vc.rdb != nil && len(villas) > 0 {
			if err := services.SetToRedis(ctx, vc.rdb, services.CacheKeyVillas, villas, services.CacheTTL); err != nil {
				vc.logger.Error("error al guardar villas en cache: %v", err)
			}
		}
	}

	response.Success(c, mapper.AVillaResponseLista(villas))
}

// GetVillaById obtiene una villa por su id
func (vc *VillaController) GetVillaById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		vc.logger.Error("error al traer villa con id: %s", c.Param("id"))
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeIdInvalido, "id inválido", nil))
		return
	}

	villa, err := vc.villaRepo.ObtenerPorId(ctx, id, true)
	if err != nil {
		responderError(c, vc.logger, err)
		return
	}
	if villa == nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "villa no encontrada", nil))
		return
	}

	response.Success(c, mapper.AVillaResponse(*villa))
}

// AddVilla crea una villa nueva
func (vc *VillaController) AddVilla(c *gin.Context) {
	ctx := c.Request.Context()

	var createDto dto.VillaCreateRequest
	if err := c.ShouldBindJSON(&createDto); err != nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "datos inválidos: "+err.Error(), nil))
		return
	}

	// Verificación rápida de unicidad; la restricción única de la base es
	// el respaldo real ante una carrera entre dos creates.
	existente, err := vc.villaRepo.ObtenerPorNombre(ctx, createDto.Nombre)
	if err != nil {
		responderError(c, vc.logger, err)
		return
	}
	if existente != nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeNombreExiste, "la villa con ese nombre ya existe", nil))
		return
	}

	modelo := mapper.DesdeVillaCreate(createDto)
	if err := validador.ValidarVilla(&modelo); err != nil {
		responderError(c, vc.logger, err)
		return
	}

	if err := vc.villaRepo.Crear(ctx, &modelo); err != nil {
		responderError(c, vc.logger, err)
		return
	}

	invalidarCache(ctx, vc.rdb, vc.logger, services.CacheKeyVillas)

	location := fmt.Sprintf("/api/Villa/%d", modelo.Id)
	response.Created(c, location, mapper.AVillaResponse(modelo))
}

// UpdateVillaById reemplaza por completo una villa
func (vc *VillaController) UpdateVillaById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeIdInvalido, "id inválido", nil))
		return
	}

	var updateDto dto.VillaUpdateRequest
	if err := c.ShouldBindJSON(&updateDto); err != nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "datos inválidos: "+err.Error(), nil))
		return
	}

	if id != updateDto.Id {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeIdNoCoincide, "el id de la ruta no coincide con el del cuerpo", nil))
		return
	}

	if err := vc.validate.Struct(updateDto); err != nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "datos inválidos: "+err.Error(), nil))
		return
	}

	modelo := mapper.DesdeVillaUpdate(updateDto)
	if err := validador.ValidarVilla(&modelo); err != nil {
		responderError(c, vc.logger, err)
		return
	}

	if err := vc.villaRepo.Actualizar(ctx, &modelo); err != nil {
		responderError(c, vc.logger, err)
		return
	}

	invalidarCache(ctx, vc.rdb, vc.logger, services.CacheKeyVillas)
	response.NoContent(c)
}

// UpdatePartialVillaById aplica un documento parche sobre una villa.
// Todo-o-nada: si alguna instrucción no resuelve o el DTO resultante no
// valida, ningún cambio llega a la base.
func (vc *VillaController) UpdatePartialVillaById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeIdInvalido, "id inválido", nil))
		return
	}

	var parche dto.DocumentoParche
	if err := c.ShouldBindJSON(&parche); err != nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "documento parche inválido: "+err.Error(), nil))
		return
	}

	// Copia desligada: la secuencia leer-modificar-escribir no debe dejar
	// un objeto a medio mutar en la sesión.
	villa, err := vc.villaRepo.ObtenerPorId(ctx, id, false)
	if err != nil {
		responderError(c, vc.logger, err)
		return
	}
	if villa == nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "villa no encontrada", nil))
		return
	}

	villaDto := mapper.AVillaUpdate(*villa)

	// El id se fija por la ruta, no por el parche
	if err := parche.AplicarA(&villaDto, "/id"); err != nil {
		responderError(c, vc.logger, err)
		return
	}

	if err := vc.validate.Struct(villaDto); err != nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeValidacion, "el parche deja el DTO inválido: "+err.Error(), nil))
		return
	}

	modelo := mapper.DesdeVillaUpdate(villaDto)
	modelo.Id = id

	if err := vc.villaRepo.Actualizar(ctx, &modelo); err != nil {
		responderError(c, vc.logger, err)
		return
	}

	invalidarCache(ctx, vc.rdb, vc.logger, services.CacheKeyVillas)
	response.NoContent(c)
}

// DeleteVillaById elimina una villa de forma permanente. Si todavía hay
// números de villa que la referencian, el borrado se rechaza.
func (vc *VillaController) DeleteVillaById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeIdInvalido, "id inválido", nil))
		return
	}

	villa, err := vc.villaRepo.ObtenerPorId(ctx, id, true)
	if err != nil {
		responderError(c, vc.logger, err)
		return
	}
	if villa == nil {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "villa no encontrada", nil))
		return
	}

	dependientes, err := vc.numeroRepo.ContarPorVilla(ctx, id)
	if err != nil {
		responderError(c, vc.logger, err)
		return
	}
	if dependientes > 0 {
		responderError(c, vc.logger, apperrors.NewAppError(apperrors.ErrCodeVillaConNumeros, "la villa tiene números de villa asociados", nil))
		return
	}

	if err := vc.villaRepo.Remover(ctx, villa); err != nil {
		responderError(c, vc.logger, err)
		return
	}

	invalidarCache(ctx, vc.rdb, vc.logger, services.CacheKeyVillas)
	response.NoContent(c)
}
