package db_models

// Experience mirrors the seven-column catalog table when the catalog is
// served from Postgres. Position preserves catalog order for stable ranking.
type Experience struct {
	Position      int     `gorm:"column:position;primaryKey"`
	Name          string  `gorm:"column:name;unique"`
	Tags          string  `gorm:"column:tags"`
	MinBudget     int     `gorm:"column:min_budget"`
	MaxBudget     int     `gorm:"column:max_budget"`
	DurationHours float64 `gorm:"column:duration_hours"`
	SuitableFor   string  `gorm:"column:suitable_for"`
	Description   string  `gorm:"column:description"`
}

func (Experience) TableName() string {
	return "experiences"
}
