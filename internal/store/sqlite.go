package store

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Documento is one persisted key-value row.
type Documento struct {
	Clave     string `gorm:"primaryKey"`
	Valor     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (Documento) TableName() string { return "documentos" }

type sqliteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the embedded sqlite file at path and
// migrates the single documentos table. Use ":memory:" for an ephemeral
// store.
func OpenSQLite(path string) (Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Documento{}); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc Documento
	err := s.db.WithContext(ctx).First(&doc, "clave = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Valor, nil
}

func (s *sqliteStore) Put(ctx context.Context, key string, value []byte) error {
	doc := Documento{Clave: key, Valor: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clave"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
		}).
		Create(&doc).Error
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Documento{}, "clave = ?", key).Error
}
