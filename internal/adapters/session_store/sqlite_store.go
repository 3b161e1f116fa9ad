package session_store

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Entry - строка key-value хранилища.
type Entry struct {
	Key       string `gorm:"column:storage_key;primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "local_storage"
}

// SQLiteStore хранит сессию администратора в локальном файле SQLite.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore открывает (или создает) файл хранилища. path ":memory:" - для тестов.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store %s: %w", path, err)
	}
	// Одно соединение: иначе каждая ":memory:" база в пуле будет своей.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get session store handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SQLiteSessionStore",
		"method":    method,
	})
}

// Load возвращает (nil, nil), если токен не сохранен.
func (s *SQLiteStore) Load(ctx context.Context) (*domain.Session, error) {
	var entries []Entry
	err := s.db.WithContext(ctx).
		Where("storage_key IN ?", []string{domain.SessionKeyToken, domain.SessionKeyEmail}).
		Find(&entries).Error
	if err != nil {
		s.logger(ctx, "Load").Error("Failed to read session", err, nil)
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	session := domain.Session{}
	for _, e := range entries {
		switch e.Key {
		case domain.SessionKeyToken:
			session.Token = e.Value
		case domain.SessionKeyEmail:
			session.Email = e.Value
		}
	}
	if session.IsZero() {
		return nil, nil
	}
	return &session, nil
}

// Save перезаписывает обе записи в одной транзакции.
func (s *SQLiteStore) Save(ctx context.Context, session domain.Session) error {
	now := time.Now().UTC()
	entries := []Entry{
		{Key: domain.SessionKeyToken, Value: session.Token, UpdatedAt: now},
		{Key: domain.SessionKeyEmail, Value: session.Email, UpdatedAt: now},
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entries).Error
	if err != nil {
		s.logger(ctx, "Save").Error("Failed to save session", err, nil)
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.logger(ctx, "Save").Debug("Session saved", port.Fields{"email": session.Email})
	return nil
}

// Clear удаляет токен и email.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Where("storage_key IN ?", []string{domain.SessionKeyToken, domain.SessionKeyEmail}).
		Delete(&Entry{}).Error
	if err != nil {
		s.logger(ctx, "Clear").Error("Failed to clear session", err, nil)
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close закрывает соединение с файлом.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
