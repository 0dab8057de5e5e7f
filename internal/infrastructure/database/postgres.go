package database

import (
	"fmt"

	"repairhub/config"
	"repairhub/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Booking{},
		&entity.BookingHistory{},
		&entity.CompletionReport{},
		&entity.ProofArtifact{},
		&entity.Payment{},
		&entity.Notification{},
	)
}

// Seed inserts the role rows and a bootstrap admin account when missing.
func Seed(db *gorm.DB, adminEmail string) error {
	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin, Description: "Back-office dispatcher"},
		{ID: entity.RoleIDEngineer, RoleName: entity.RoleEngineer, Description: "Field repair engineer"},
		{ID: entity.RoleIDCustomer, RoleName: entity.RoleCustomer, Description: "End customer"},
	}
	for _, role := range roles {
		if err := db.Where(entity.Role{ID: role.ID}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.RoleName, err)
		}
	}

	if adminEmail == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("role_id = ?", entity.RoleIDAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// First boot only. The password must be rotated after the initial login.
	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Email:    adminEmail,
		Password: string(hashed),
		FullName: "Administrator",
		RoleID:   entity.RoleIDAdmin,
		IsActive: true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logrus.Infof("Seeded bootstrap admin account %s", adminEmail)
	return nil
}
