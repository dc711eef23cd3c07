package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"localexplorer/internal/catalog"
	"localexplorer/internal/models/db_models"
)

type ExperienceRepositoryInterface interface {
	ListCatalogEntries(ctx context.Context) ([]catalog.Experience, error)
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepositoryInterface {
	return &ExperienceRepository{db: db}
}

type ExperienceRepository struct {
	db *gorm.DB
}

// ListCatalogEntries reads the whole experience table in catalog order. It is
// called once at startup; the resulting catalog is immutable afterwards.
func (r ExperienceRepository) ListCatalogEntries(ctx context.Context) ([]catalog.Experience, error) {
	var rows []db_models.Experience
	err := r.db.WithContext(ctx).Order("position").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Experience, 0, len(rows))
	for _, row := range rows {
		if row.MinBudget > row.MaxBudget {
			return nil, fmt.Errorf("experience %q: min_budget %d exceeds max_budget %d", row.Name, row.MinBudget, row.MaxBudget)
		}
		entries = append(entries, catalog.Experience{
			Name:          row.Name,
			Tags:          catalog.SplitList(row.Tags),
			MinBudget:     row.MinBudget,
			MaxBudget:     row.MaxBudget,
			DurationHours: row.DurationHours,
			SuitableFor:   catalog.SplitList(row.SuitableFor),
			Description:   row.Description,
		})
	}
	return entries, nil
}
