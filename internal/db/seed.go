package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/nareguabarber/naregua-api/internal/auth"
	"github.com/nareguabarber/naregua-api/internal/config"
	"github.com/nareguabarber/naregua-api/internal/models"
)

const AdminUsername = "barbeiro1"

// Seed garante os registros mínimos da vitrine: configuração global,
// loja matriz, catálogo inicial e o admin master
func Seed(db *gorm.DB, cfg *config.Config) {
	seedScheduleConfig(db)
	seedShop(db)
	services := seedServices(db)
	seedAdmin(db, cfg, services)
}

func seedScheduleConfig(db *gorm.DB) {
	var count int64
	db.Model(&models.ScheduleConfig{}).Count(&count)
	if count > 0 {
		return
	}

	sc := models.ScheduleConfig{
		OpenTime:        "09:00",
		CloseTime:       "19:00",
		SlotIntervalMin: 60,
		MonthlyGoal:     5000,
	}
	if err := db.Create(&sc).Error; err != nil {
		log.Fatalf("failed to seed schedule config: %v", err)
	}
}

func seedShop(db *gorm.DB) {
	var count int64
	db.Model(&models.Shop{}).Count(&count)
	if count > 0 {
		return
	}

	shop := models.Shop{
		Name:      "Na Régua Barber - Matriz",
		Address:   "Rua das Tesouras, 123 - Centro",
		Phone:     "912345678",
		Whatsapp:  "912345678",
		Instagram: "naregua_barber",
		Facebook:  "nareguabarberoficial",
		Latitude:  -23.5505,
		Longitude: -46.6333,
		Active:    true,
	}
	if err := db.Create(&shop).Error; err != nil {
		log.Fatalf("failed to seed shop: %v", err)
	}
}

func seedServices(db *gorm.DB) []models.Service {
	var services []models.Service
	db.Find(&services)
	if len(services) > 0 {
		return services
	}

	services = []models.Service{
		{
			Name:        "Corte Degradê",
			Price:       35.00,
			DurationMin: 45,
			Description: "Corte moderno com acabamento impecável em degradê.",
			Active:      true,
		},
		{
			Name:        "Barba Terapia",
			Price:       25.00,
			DurationMin: 30,
			Description: "Toalha quente, massagem facial e alinhamento da barba.",
			Active:      true,
		},
		{
			Name:        "Combo (Corte + Barba)",
			Price:       50.00,
			DurationMin: 75,
			Description: "O pacote completo para quem quer sair na régua.",
			Active:      true,
		},
		{
			Name:        "Sobrancelha",
			Price:       10.00,
			DurationMin: 15,
			Description: "Design de sobrancelha na navalha.",
			Active:      true,
		},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Fatalf("failed to seed services: %v", err)
	}
	return services
}

func seedAdmin(db *gorm.DB, cfg *config.Config, services []models.Service) {
	var count int64
	db.Model(&models.Barber{}).Where("username = ?", AdminUsername).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := auth.HashPassword(cfg.AdminSeedPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := models.Barber{
		Name:             "Administrador Master",
		Username:         AdminUsername,
		PasswordHash:     hashed,
		Active:           true,
		IsAdmin:          true,
		AssignedServices: services,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
}
