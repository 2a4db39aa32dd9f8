package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/catalog"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/community"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/identity"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/ordering"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/settings"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

// openTestDB gives each test an isolated in-memory sqlite database
// with the full schema migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&catalog.Front{},
		&catalog.Bandana{},
		&catalog.ReadyCapdana{},
		&ordering.Order{},
		&community.Post{},
		&identity.User{},
		&settings.SiteSettings{},
	))
	return db
}

func TestGormFrontRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormFrontRepository(openTestDB(t))

	front, err := catalog.NewFront("front-01", "Gece Mavisi", "https://cdn.example/f1.jpg")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, front))

	got, err := repo.FindByID(ctx, "front-01")
	require.NoError(t, err)
	assert.Equal(t, "gece-mavisi", got.Slug)

	_, err = repo.FindByID(ctx, "ghost")
	var derr shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, shared.ErrCodeNotFound, derr.Code)

	require.NoError(t, repo.Delete(ctx, "front-01"))
	assert.Error(t, repo.Delete(ctx, "front-01"))
}

func TestGormReadyCapdanaRepository_ListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewGormReadyCapdanaRepository(db)

	first, err := catalog.NewReadyCapdana("capdana-01", "Birinci", "", "front-01", "bandana-01", catalog.RarityCommon, nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := catalog.NewReadyCapdana("capdana-02", "İkinci", "", "front-01", "bandana-02", catalog.RarityRare, nil, catalog.Tags{"yaz"})
	require.NoError(t, err)
	second.CreatedAt = second.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Save(ctx, second))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "capdana-02", all[0].ID)
	assert.Equal(t, catalog.Tags{"yaz"}, all[0].Tags)
}

func TestGormOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormOrderRepository(openTestDB(t))
	userID := uuid.New()

	order, err := ordering.NewOrder("CPD-A1-001", userID, `[{"id":"capdana-01","quantity":2}]`, `{"full_name":"Ayşe"}`, valueobject.NewMoneyFromInt(666))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, order))

	t.Run("finds by id and user", func(t *testing.T) {
		got, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, "CPD-A1-001", got.Number)
		assert.Equal(t, ordering.StatusPending, got.Status)

		mine, err := repo.FindByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		none, err := repo.FindByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("counts per user", func(t *testing.T) {
		count, err := repo.CountByUser(ctx, userID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("updates status", func(t *testing.T) {
		got, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.NoError(t, got.ChangeStatus(ordering.StatusProcessing))
		require.NoError(t, repo.Update(ctx, got))

		again, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, ordering.StatusProcessing, again.Status)
	})

	t.Run("filters all orders", func(t *testing.T) {
		all, err := repo.FindAll(ctx, shared.NewFilter().WithCondition("status", "PROCESSING"))
		require.NoError(t, err)
		assert.Len(t, all, 1)

		none, err := repo.FindAll(ctx, shared.NewFilter().WithCondition("status", "SHIPPED"))
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestGormPostRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPostRepository(openTestDB(t))
	userID := uuid.New()

	pending, err := community.NewPost(userID, "https://cdn.example/community/1.jpg", "İlk kombin", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, pending))

	approved, err := community.NewPost(userID, "https://cdn.example/community/2.jpg", "", "front-01 + bandana-07")
	require.NoError(t, err)
	approved.SetApproved(true)
	require.NoError(t, repo.Save(ctx, approved))

	wall, err := repo.FindApproved(ctx)
	require.NoError(t, err)
	require.Len(t, wall, 1)
	assert.Equal(t, approved.ID, wall[0].ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.Delete(ctx, pending.ID))
	assert.Error(t, repo.Delete(ctx, pending.ID))
}

func TestGormUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormUserRepository(openTestDB(t))

	user, err := identity.NewUser("Ayşe Yılmaz", "ayse@example.com", "long-enough")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.FindByEmail(ctx, "AYSE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	exists, err := repo.ExistsByEmail(ctx, "ayse@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormSettingsRepository(openTestDB(t))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := settings.Defaults()
	require.NoError(t, s.UpdatePrices(valueobject.NewMoneyFromInt(350), valueobject.NewMoneyFromInt(475)))
	require.NoError(t, repo.Save(ctx, s))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.ReadyPrice.Equal(valueobject.NewMoneyFromInt(350)))

	// Saving again upserts the singleton row.
	require.NoError(t, got.UpdatePrices(valueobject.NewMoneyFromInt(400), valueobject.NewMoneyFromInt(500)))
	require.NoError(t, repo.Save(ctx, got))

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, again.CustomPrice.Equal(valueobject.NewMoneyFromInt(500)))
}
