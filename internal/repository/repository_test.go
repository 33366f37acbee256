package repository

import (
	"testing"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestRatingSummarize_Empty(t *testing.T) {
	repo := NewRatingRepository(setupTestDB(t))

	summary, err := repo.Summarize("no-such-blog")
	require.NoError(t, err)
	assert.Nil(t, summary.Average)
	assert.Equal(t, int64(0), summary.Count)
}

func TestRatingSummarize_ExactMean(t *testing.T) {
	repo := NewRatingRepository(setupTestDB(t))

	values := []int{5, 3, 4, 1, 2, 5}
	sum := 0
	for _, v := range values {
		require.NoError(t, repo.Create(&models.Rating{BlogID: "b1", Rating: v}))
		sum += v
	}
	// Ratings for other blogs must not bleed into the aggregate.
	require.NoError(t, repo.Create(&models.Rating{BlogID: "b2", Rating: 1}))

	summary, err := repo.Summarize("b1")
	require.NoError(t, err)
	assert.Equal(t, int64(len(values)), summary.Count)
	require.NotNil(t, summary.Average)
	assert.Equal(t, float64(sum)/float64(len(values)), *summary.Average)
}

func TestRatingSummarize_DuplicatesAllCounted(t *testing.T) {
	repo := NewRatingRepository(setupTestDB(t))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&models.Rating{BlogID: "b1", Rating: 4}))
	}

	summary, err := repo.Summarize("b1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Count)
	require.NotNil(t, summary.Average)
	assert.Equal(t, 4.0, *summary.Average)
}

func TestConfigSetAll_UpsertAndIdempotent(t *testing.T) {
	repo := NewConfigRepository(setupTestDB(t))

	require.NoError(t, repo.SetAll(map[string]string{"site_title": "My Site", "theme": "dark"}))

	value, err := repo.Get("site_title")
	require.NoError(t, err)
	assert.Equal(t, "My Site", value)

	// Overwrite one key, introduce another.
	require.NoError(t, repo.SetAll(map[string]string{"theme": "light", "tagline": "hello"}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"site_title": "My Site",
		"theme":      "light",
		"tagline":    "hello",
	}, all)

	// Applying the same mapping twice leaves the result unchanged.
	require.NoError(t, repo.SetAll(map[string]string{"theme": "light", "tagline": "hello"}))
	again, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestUserExistsByUsernameOrEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	email := "alice@x.com"
	require.NoError(t, repo.Create(&models.User{
		Username: "alice", Slug: "alice", Email: &email, Name: "Alice", PasswordHash: "h",
	}))

	exists, err := repo.ExistsByUsernameOrEmail("alice", "other@x.com")
	require.NoError(t, err)
	assert.True(t, exists, "username hit counts as a conflict")

	exists, err = repo.ExistsByUsernameOrEmail("bob", "alice@x.com")
	require.NoError(t, err)
	assert.True(t, exists, "email hit counts as a conflict")

	exists, err = repo.ExistsByUsernameOrEmail("bob", "bob@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlogListByAuthor_OrderedAndUnfiltered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepository(db)

	for _, b := range []models.Blog{
		{Title: "First", Name: "first", Published: true, Show: true, AuthorID: 1},
		{Title: "Hidden", Name: "hidden", Published: false, Show: false, AuthorID: 1},
		{Title: "Other", Name: "other", Published: true, Show: true, AuthorID: 2},
	} {
		require.NoError(t, repo.Create(&b))
	}

	blogs, err := repo.ListByAuthor(1)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "First", blogs[0].Title)
	assert.Equal(t, "Hidden", blogs[1].Title)
}

func TestSiteUpsert(t *testing.T) {
	repo := NewSiteRepository(setupTestDB(t))

	require.NoError(t, repo.Upsert(&models.Site{Title: "v1", UserID: 1}))
	require.NoError(t, repo.Upsert(&models.Site{Title: "v2", Navbar: "#222", UserID: 1}))

	site, err := repo.GetByUser(1)
	require.NoError(t, err)
	assert.Equal(t, "v2", site.Title)
	assert.Equal(t, "#222", site.Navbar)

	var count int64
	require.NoError(t, repo.db.Model(&models.Site{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "upsert must not create a second row")
}
