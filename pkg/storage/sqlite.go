package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/qazaqnlp/qural/pkg/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type SQLiteStorage struct {
	db *gorm.DB
}

type Config struct {
	DatabasePath string
	Debug        bool
}

func NewSQLiteStorage(cfg Config) (*SQLiteStorage, error) {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	database, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// Auto-migrate schema
	if err := database.AutoMigrate(&models.User{}, &models.Annotation{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteStorage{db: database}, nil
}

// SeedAdmin inserts the bootstrap account when the users table is empty.
// Safe to call on every start.
func (s *SQLiteStorage) SeedAdmin(ctx context.Context, username, passwordHash string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&models.User{
		Username: username,
		Password: passwordHash,
	}).Error
}

func (s *SQLiteStorage) CreateUser(ctx context.Context, username, passwordHash string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUser
	}
	return s.db.WithContext(ctx).Create(&models.User{
		Username: username,
		Password: passwordHash,
	}).Error
}

func (s *SQLiteStorage) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLiteStorage) ListUsers(ctx context.Context) ([]string, error) {
	var usernames []string
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Order("username").
		Pluck("username", &usernames).Error
	return usernames, err
}

// UpdatePassword overwrites the stored digest. A missing username is a silent
// no-op; the admin flow only offers names that came from ListUsers.
func (s *SQLiteStorage) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Update("password", passwordHash).Error
}

// UpsertAnnotation writes the record, overwriting any prior row with the same
// id. created_at is set on first insert and kept on overwrite.
func (s *SQLiteStorage) UpsertAnnotation(ctx context.Context, record *models.Annotation) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category", "difficulty", "query",
			"tools_json", "answers_json", "turns_json", "author",
		}),
	}).Create(record).Error
}

func (s *SQLiteStorage) GetAnnotation(ctx context.Context, id string) (*models.Annotation, error) {
	var record models.Annotation
	err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *SQLiteStorage) ListAnnotations(ctx context.Context) ([]models.Annotation, error) {
	var records []models.Annotation
	err := s.db.WithContext(ctx).
		Order("created_at, id").
		Find(&records).Error
	return records, err
}

func (s *SQLiteStorage) ListAnnotationsByCategory(ctx context.Context, category string) ([]models.Annotation, error) {
	var records []models.Annotation
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at, id").
		Find(&records).Error
	return records, err
}

func (s *SQLiteStorage) CountAnnotations(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Annotation{}).Count(&total).Error
	return total, err
}

func (s *SQLiteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
