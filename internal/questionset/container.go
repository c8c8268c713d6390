package questionset

import (
	"github.com/quizgenius/quizgenius/internal/config"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Store   Store
}

// NewContainer builds the set store. db may be nil, in which case archive
// operations report that no archive storage is configured.
func NewContainer(db *gorm.DB) *Container {
	store := NewMemoryStore()

	var archive ArchiveRepository
	if db != nil {
		if err := db.AutoMigrate(&ArchivedSet{}); err != nil {
			config.Logger().WithError(err).Warn("Archive migration failed, archive disabled")
		} else {
			archive = NewArchiveRepository(db)
		}
	}

	service := NewService(store, archive)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Store:   store,
	}
}
