package service

import (
	"testing"
	"time"

	"inkwell/internal/database"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSiteService(t *testing.T) (*SiteService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	svc := NewSiteService(
		repository.NewUserRepository(db),
		repository.NewSiteRepository(db),
		repository.NewBlogRepository(db),
		repository.NewBookRepository(db),
		repository.NewSocialLinkRepository(db),
	)
	return svc, db
}

func createAuthor(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := "jane@x.com"
	user := &models.User{
		Username: "Jane Doe", Slug: "jane-doe", Email: &email,
		Name: "Jane Doe", PasswordHash: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestComposeAuthorSite_UnknownSlug(t *testing.T) {
	svc, _ := setupSiteService(t)

	_, err := svc.ComposeAuthorSite("nobody")
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestComposeAuthorSite_NoContent(t *testing.T) {
	svc, db := setupSiteService(t)
	createAuthor(t, db)

	view, err := svc.ComposeAuthorSite("jane-doe")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", view.Author.Username)
	assert.Equal(t, "jane-doe", view.Author.Slug)
	// No Site row: the sentinel is an empty object, not null.
	assert.Equal(t, struct{}{}, view.Site)
	assert.NotNil(t, view.Blogs)
	assert.Empty(t, view.Blogs)
	assert.NotNil(t, view.Books)
	assert.Empty(t, view.Books)
	assert.NotNil(t, view.SocialLinks)
	assert.Empty(t, view.SocialLinks)
}

func TestComposeAuthorSite_FullDocument(t *testing.T) {
	svc, db := setupSiteService(t)
	user := createAuthor(t, db)

	require.NoError(t, db.Create(&models.Site{
		Title: "Jane's Books", Author: "Jane Doe", Introduction: "Welcome.",
		Navbar: "#2196F3", Footer: "#2196F3", HeroBackground: "#fff",
		UserID: user.ID,
	}).Error)

	publishDate := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Blog{
		Title: "Visible", Name: "visible", Published: true, Show: true,
		PublishDate: &publishDate, HTMLContent: "<p>body</p>", AuthorID: user.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Blog{
		Title: "Draft", Name: "draft", Published: false, Show: false,
		AuthorID: user.ID,
	}).Error)

	require.NoError(t, db.Create(&models.Book{
		Title: "Unpublished Novel", Published: false,
		AmazonURL: "http://amazon.com/novel", AuthorID: user.ID,
	}).Error)

	owner := user.ID
	require.NoError(t, db.Create(&models.SocialLink{
		Name: "Facebook", URL: "http://facebook.com/jane", Icon: "fb.svg",
		Color: "blue darken-4", UserID: &owner,
	}).Error)

	view, err := svc.ComposeAuthorSite("jane-doe")
	require.NoError(t, err)

	site, ok := view.Site.(SiteSettingsView)
	require.True(t, ok)
	assert.Equal(t, "Jane's Books", site.Title)

	// Every blog comes back regardless of published/show; the frontend
	// owns visibility filtering.
	require.Len(t, view.Blogs, 2)
	assert.Equal(t, "Visible", view.Blogs[0].Title)
	require.NotNil(t, view.Blogs[0].PublishDate)
	assert.Equal(t, "2024-03-09", *view.Blogs[0].PublishDate)
	assert.Equal(t, "Draft", view.Blogs[1].Title)
	assert.False(t, view.Blogs[1].Show)
	assert.Nil(t, view.Blogs[1].PublishDate)

	require.Len(t, view.Books, 1)
	assert.Equal(t, "Unpublished Novel", view.Books[0].Title)
	assert.False(t, view.Books[0].Published)

	require.Len(t, view.SocialLinks, 1)
	assert.Equal(t, "Facebook", view.SocialLinks[0].Name)
}
