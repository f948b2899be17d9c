package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	apperrors "magicvilla/errors"
	"magicvilla/response"
	"magicvilla/services"
	"magicvilla/services/logger"
)

// responderError traduce un error de dominio o de almacenamiento a su
// envoltura HTTP. Nada se propaga crudo al cliente.
func responderError(c *gin.Context, log logger.Logger, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch apperrors.HTTPStatus(appErr.Code) {
		case 404:
			response.NotFound(c, appErr.Message)
		case 400:
			response.BadRequest(c, appErr.Message)
		default:
			log.Error("falla de almacenamiento: %v", appErr)
			response.ServerError(c, appErr)
		}
		return
	}

	log.Error("error no clasificado: %v", err)
	response.ServerError(c, err)
}

// invalidarCache borra la clave del listado tras cualquier escritura
func invalidarCache(ctx context.Context, rdb *redis.Client, log logger.Logger, key string) {
	if rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(ctx, rdb, key); err != nil {
		log.Error("error al invalidar cache %s: %v", key, err)
	}
}
