package service

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/repository"
)

func CountTables(ctx context.Context, tables repository.TablesCounter) (int, error) {
	return tables.CountTables(ctx)
}

type TablesService interface {
	CountTables(ctx context.Context) (int, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) CountTables(ctx context.Context) (int, error) {
	return CountTables(ctx, t.tablesRepo)
}
