package app

import (
	"fmt"
	"log"

	"github.com/AkifumiSato/at-api/internal/config"
	"github.com/AkifumiSato/at-api/internal/database"
	"github.com/AkifumiSato/at-api/internal/repository"
	"github.com/AkifumiSato/at-api/internal/repository/memory"
	"github.com/AkifumiSato/at-api/internal/service"
)

// App opens the configured store and wires the adapters and use cases on
// top of it. db is nil when STORAGE=memory.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, error) {
	var (
		db   *database.DB
		repo *repository.Repository
	)

	switch cfg.Storage {
	case config.StorageMemory:
		log.Println("using in-memory storage, data is lost on exit")
		repo = memory.NewRepository()
	case config.StoragePostgres, "":
		var err error
		db, err = database.ConnectDB(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		repo = repository.NewRepository(db.DB)
	default:
		return nil, nil, nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}

	services := service.NewService(repo)

	return db, repo, services, nil
}

// Close releases db if App opened one.
func Close(db *database.DB) {
	if db == nil {
		return
	}
	if err := db.CloseDB(); err != nil {
		log.Printf("close database: %v", err)
	}
}
