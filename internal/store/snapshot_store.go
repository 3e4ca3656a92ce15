package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moneybook/internal/models"
)

// FileSnapshotStore keeps each document as a file under a directory.
type FileSnapshotStore struct {
	dir string
}

// NewFileSnapshotStore returns a store rooted at dir. The directory is
// created on first write.
func NewFileSnapshotStore(dir string) *FileSnapshotStore {
	return &FileSnapshotStore{dir: dir}
}

func (s *FileSnapshotStore) ReadFile(name string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read snapshot %s: %w", name, err)
	}
	return string(data), true, nil
}

// WriteFile writes to a temp file in the same directory, syncs it and
// renames it over the target.
func (s *FileSnapshotStore) WriteFile(name, content string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		cleanup()
		return fmt.Errorf("replace snapshot %s: %w", name, err)
	}
	return nil
}

// DBSnapshotStore keeps documents in the documents table.
type DBSnapshotStore struct {
	db *gorm.DB
}

func NewDBSnapshotStore(db *gorm.DB) *DBSnapshotStore {
	return &DBSnapshotStore{db: db}
}

func (s *DBSnapshotStore) ReadFile(name string) (string, bool, error) {
	var doc models.Document
	if err := s.db.Where("name = ?", name).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read document %s: %w", name, err)
	}
	return doc.Content, true, nil
}

func (s *DBSnapshotStore) WriteFile(name, content string) error {
	doc := models.Document{Name: name, Content: content, UpdatedAt: time.Now().UTC()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("write document %s: %w", name, err)
	}
	return nil
}
