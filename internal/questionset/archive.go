package questionset

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArchivedSet is a durable snapshot of a named set. The live store stays
// in-memory; archiving is an explicit, optional operation.
type ArchivedSet struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Questions string    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ArchiveRepository interface {
	Upsert(set *ArchivedSet) error
	FindByName(name string) (*ArchivedSet, error)
	List() ([]*ArchivedSet, error)
	Delete(name string) error
}

type archiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) Upsert(set *ArchivedSet) error {
	existing, err := r.FindByName(set.Name)
	if err != nil {
		return err
	}
	if existing == nil {
		if set.ID == uuid.Nil {
			set.ID = uuid.New()
		}
		return r.db.Create(set).Error
	}
	return r.db.Model(existing).Update("questions", set.Questions).Error
}

func (r *archiveRepository) FindByName(name string) (*ArchivedSet, error) {
	var set ArchivedSet
	if err := r.db.First(&set, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *archiveRepository) List() ([]*ArchivedSet, error) {
	var sets []*ArchivedSet
	if err := r.db.Order("created_at DESC").Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *archiveRepository) Delete(name string) error {
	return r.db.Delete(&ArchivedSet{}, "name = ?", name).Error
}
