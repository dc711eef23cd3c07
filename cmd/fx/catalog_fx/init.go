package catalog_fx

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"localexplorer/internal/catalog"
	"localexplorer/internal/infra"
	"localexplorer/internal/repositories"
)

var Module = fx.Provide(ProvideCatalog)

// ProvideCatalog loads the experience table once at startup. A schema
// violation is fatal; the process must not serve requests without a valid
// catalog.
func ProvideCatalog() *catalog.Catalog {
	source := getEnvWithDefault("CATALOG_SOURCE", "csv")

	var cat *catalog.Catalog
	switch strings.ToLower(source) {
	case "csv":
		path := getEnvWithDefault("CATALOG_PATH", "data/dubai_tours.csv")
		loaded, err := catalog.LoadCSV(path)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", path, err)
		}
		cat = loaded
	case "postgres":
		db := infra.InitPostgresql()
		repo := repositories.NewExperienceRepository(db)
		entries, err := repo.ListCatalogEntries(context.Background())
		if err != nil {
			log.Fatalf("Failed to load catalog from postgres: %v", err)
		}
		// The catalog is immutable after startup; the connection is not
		// needed once the table is read.
		infra.ClosePostgresql(db)
		cat = catalog.New(entries)
	default:
		log.Fatalf("Unsupported catalog source: %s. Use 'csv' or 'postgres'", source)
	}

	log.Printf("Catalog loaded: %d experiences from %s source", cat.Len(), source)
	return cat
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
