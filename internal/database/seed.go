package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inkwell/internal/models"
	"inkwell/pkg/slug"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads initial content from a directory of JSON data files. Each table
// is only seeded while empty, so rerunning against a live database is a
// no-op. Missing files are skipped.
func Seed(db *gorm.DB, dir string, log zerolog.Logger) error {
	author, err := seedAuthor(db, dir, log)
	if err != nil {
		return err
	}
	if author == nil {
		// Tables may already hold an author from a previous run.
		var existing models.User
		if err := db.First(&existing).Error; err == nil {
			author = &existing
		}
	}
	if author == nil {
		log.Warn().Msg("no author available, skipping content seed")
		return nil
	}
	if err := seedBlogs(db, dir, author.ID, log); err != nil {
		return err
	}
	if err := seedBooks(db, dir, author.ID, log); err != nil {
		return err
	}
	if err := seedSite(db, dir, author.ID, log); err != nil {
		return err
	}
	return seedSocialLinks(db, dir, author.ID, log)
}

func readJSON(dir, name string, v any) (bool, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}
	return true, nil
}

type authSeed struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Password     string `json:"password"`
	PasswordHash string `json:"passwordHash"`
	About        string `json:"about"`
	Philosophy   string `json:"philosophy"`
}

func seedAuthor(db *gorm.DB, dir string, log zerolog.Logger) (*models.User, error) {
	var data authSeed
	ok, err := readJSON(dir, "auth.json", &data)
	if err != nil || !ok {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		log.Debug().Msg("users table already has data, skipping auth seed")
		return nil, nil
	}

	user := models.User{
		Username:   data.Username,
		Name:       data.Name,
		Slug:       data.Slug,
		About:      data.About,
		Philosophy: data.Philosophy,
	}
	if user.Slug == "" {
		user.Slug = slug.Make(data.Username)
	}
	if data.Email != "" {
		email := data.Email
		user.Email = &email
	}
	switch {
	case data.PasswordHash != "":
		user.PasswordHash = data.PasswordHash
	case data.Password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	default:
		log.Warn().Msg("auth.json provides no password or passwordHash")
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Info().Str("slug", user.Slug).Msg("seeded author account")
	return &user, nil
}

type blogSeed struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	HTMLContent string `json:"html_content"`
	Published   *bool  `json:"published"`
	Name        string `json:"name"`
	PublishDate string `json:"publish_date"`
	Show        *bool  `json:"show"`
}

func seedBlogs(db *gorm.DB, dir string, authorID uint, log zerolog.Logger) error {
	var entries []blogSeed
	ok, err := readJSON(dir, "blog.json", &entries)
	if err != nil || !ok {
		return err
	}

	var count int64
	if err := db.Model(&models.Blog{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Msg("blogs table already seeded, skipping")
		return nil
	}

	for _, e := range entries {
		publishDate := time.Now()
		if e.PublishDate != "" {
			if parsed, err := time.Parse("2006-01-02", e.PublishDate); err == nil {
				publishDate = parsed
			}
		}
		blog := models.Blog{
			Title:       e.Title,
			Subtitle:    e.Subtitle,
			Description: e.Description,
			Image:       e.Image,
			HTMLContent: e.HTMLContent,
			Published:   e.Published == nil || *e.Published,
			Name:        e.Name,
			PublishDate: &publishDate,
			Show:        e.Show == nil || *e.Show,
			AuthorID:    authorID,
		}
		if err := db.Create(&blog).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(entries)).Msg("seeded blogs")
	return nil
}

type bookSeed struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Image             string `json:"image"`
	Published         bool   `json:"published"`
	AmazonURL         string `json:"amazonUrl"`
	BarnesAndNobleURL string `json:"barnesandnobleUrl"`
	GoogleBooksURL    string `json:"googlebooksUrl"`
}

func seedBooks(db *gorm.DB, dir string, authorID uint, log zerolog.Logger) error {
	var entries []bookSeed
	ok, err := readJSON(dir, "books.json", &entries)
	if err != nil || !ok {
		return err
	}

	var count int64
	if err := db.Model(&models.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Msg("books table already seeded, skipping")
		return nil
	}

	for _, e := range entries {
		book := models.Book{
			Title:             e.Title,
			Description:       e.Description,
			Image:             e.Image,
			Published:         e.Published,
			AmazonURL:         e.AmazonURL,
			BarnesAndNobleURL: e.BarnesAndNobleURL,
			GoogleBooksURL:    e.GoogleBooksURL,
			AuthorID:          authorID,
		}
		if err := db.Create(&book).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(entries)).Msg("seeded books")
	return nil
}

type siteSeed struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Introduction string `json:"introduction"`
	ColorPalette struct {
		Navbar         string `json:"navbar"`
		Footer         string `json:"footer"`
		HeroBackground string `json:"heroBackground"`
	} `json:"colorPalette"`
}

func seedSite(db *gorm.DB, dir string, authorID uint, log zerolog.Logger) error {
	var data siteSeed
	ok, err := readJSON(dir, "site.json", &data)
	if err != nil || !ok {
		return err
	}

	var count int64
	if err := db.Model(&models.Site{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Msg("site table already seeded, skipping")
		return nil
	}

	site := models.Site{
		Title:          data.Title,
		Author:         data.Author,
		Introduction:   data.Introduction,
		Navbar:         data.ColorPalette.Navbar,
		Footer:         data.ColorPalette.Footer,
		HeroBackground: data.ColorPalette.HeroBackground,
		UserID:         authorID,
	}
	if err := db.Create(&site).Error; err != nil {
		return err
	}
	log.Info().Msg("seeded site settings")
	return nil
}

type socialSeed struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func seedSocialLinks(db *gorm.DB, dir string, authorID uint, log zerolog.Logger) error {
	var entries []socialSeed
	ok, err := readJSON(dir, "social.json", &entries)
	if err != nil || !ok {
		return err
	}

	var count int64
	if err := db.Model(&models.SocialLink{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Msg("social links already seeded, skipping")
		return nil
	}

	for _, e := range entries {
		owner := authorID
		link := models.SocialLink{
			Name:   e.Name,
			URL:    e.URL,
			Icon:   e.Icon,
			Color:  e.Color,
			UserID: &owner,
		}
		if err := db.Create(&link).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(entries)).Msg("seeded social links")
	return nil
}
