package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"magicvilla/controllers"
)

// SetupRoutes monta las dos familias de recursos bajo /api. rdb puede ser
// nil cuando no hay cache configurada.
func SetupRoutes(router *gin.Engine, db *gorm.DB, rdb *redis.Client) {

	villaController := controllers.NewVillaController(db, rdb)
	numeroController := controllers.NewNumeroVillaController(db, rdb)

	api := router.Group("/api")

	api.GET("/Villa", villaController.GetVillas)
	api.GET("/Villa/:id", villaController.GetVillaById)
	api.POST("/Villa", villaController.AddVilla)
	api.PUT("/Villa/:id", villaController.UpdateVillaById)
	api.PATCH("/Villa/:id", villaController.UpdatePartialVillaById)
	api.DELETE("/Villa/:id", villaController.DeleteVillaById)

	api.GET("/NumeroVilla", numeroController.GetNumeroVillas)
	api.GET("/NumeroVilla/:id", numeroController.GetNumeroVillaById)
	api.POST("/NumeroVilla", numeroController.AddNumeroVilla)
	api.PUT("/NumeroVilla/:id", numeroController.UpdateNumeroVillaById)
	api.PATCH("/NumeroVilla/:id", numeroController.UpdatePartialNumeroVillaById)
	api.DELETE("/NumeroVilla/:id", numeroController.DeleteNumeroVillaById)
}
