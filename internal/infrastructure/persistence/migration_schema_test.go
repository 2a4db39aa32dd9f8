package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/catalog"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

// openMigratedDB builds the schema from the shipped SQL migration
// rather than AutoMigrate, so any column drift between the migration
// and the gorm models fails here. Postgres-only expressions are
// rewritten for sqlite; the type names carry over via type affinity.
func openMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "000001_init.up.sql"))
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	script := strings.ReplaceAll(string(raw), "now()", "CURRENT_TIMESTAMP")
	script = strings.ReplaceAll(script, "TIMESTAMPTZ", "TIMESTAMP")
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		require.NoError(t, db.Exec(stmt).Error, stmt)
	}
	return db
}

func TestMigratedSchemaAcceptsCatalogWrites(t *testing.T) {
	ctx := context.Background()
	db := openMigratedDB(t)

	fronts := NewGormFrontRepository(db)
	front, err := catalog.NewFront("front-01", "Gece Mavisi", "")
	require.NoError(t, err)
	require.NoError(t, fronts.Save(ctx, front))

	gotFront, err := fronts.FindByID(ctx, "front-01")
	require.NoError(t, err)
	assert.Equal(t, "gece-mavisi", gotFront.Slug)

	bandanas := NewGormBandanaRepository(db)
	bandana, err := catalog.NewBandana("bandana-01", "Mavi Puanlı", "", catalog.RarityRare, "mavi")
	require.NoError(t, err)
	require.NoError(t, bandanas.Save(ctx, bandana))

	gotBandana, err := bandanas.FindByID(ctx, "bandana-01")
	require.NoError(t, err)
	assert.Equal(t, "mavi-puanli", gotBandana.Slug)

	ready := NewGormReadyCapdanaRepository(db)
	price := valueobject.NewMoneyFromInt(499)
	rc, err := catalog.NewReadyCapdana(
		"capdana-01", "Kombin 01", "",
		"front-01", "bandana-01",
		catalog.RarityLegendary, &price, catalog.Tags{"yeni"},
	)
	require.NoError(t, err)
	require.NoError(t, ready.Save(ctx, rc))

	gotRC, err := ready.FindByID(ctx, "capdana-01")
	require.NoError(t, err)
	assert.Equal(t, "kombin-01", gotRC.Slug)
	require.NotNil(t, gotRC.Price)
	assert.Equal(t, "499", gotRC.Price.Amount().String())
}
