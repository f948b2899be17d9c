package jobs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"magicvilla/models"
	"magicvilla/services"
)

// InitCronJobs registra los trabajos programados y arranca el planificador.
// Con rdb nil no hay cache que recalentar y no se registra nada.
func InitCronJobs(c *cron.Cron, db *gorm.DB, rdb *redis.Client) error {
	if rdb == nil {
		log.Println("Cron: sin cache configurada, nada que programar")
		return nil
	}

	// Recalienta el listado de villas a las 0h cada día
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := RecalentarCacheVillas(context.Background(), db, rdb); err != nil {
			log.Printf("Error al recalentar cache de villas: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// RecalentarCacheVillas vuelve a poblar la clave del listado de villas
func RecalentarCacheVillas(ctx context.Context, db *gorm.DB, rdb *redis.Client) error {
	var villas []models.Villa
	if err := db.WithContext(ctx).Find(&villas).Error; err != nil {
		return err
	}

	if len(villas) == 0 {
		return services.DeleteFromRedis(ctx, rdb, services.CacheKeyVillas)
	}

	return services.SetToRedis(ctx, rdb, services.CacheKeyVillas, villas, services.CacheTTL)
}
