package service

import (
	"errors"
	"time"

	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// SiteService assembles the composite site document served for an author
// slug: identity, site settings, and the content collections.
type SiteService struct {
	userRepo   *repository.UserRepository
	siteRepo   *repository.SiteRepository
	blogRepo   *repository.BlogRepository
	bookRepo   *repository.BookRepository
	socialRepo *repository.SocialLinkRepository
}

func NewSiteService(
	userRepo *repository.UserRepository,
	siteRepo *repository.SiteRepository,
	blogRepo *repository.BlogRepository,
	bookRepo *repository.BookRepository,
	socialRepo *repository.SocialLinkRepository,
) *SiteService {
	return &SiteService{
		userRepo:   userRepo,
		siteRepo:   siteRepo,
		blogRepo:   blogRepo,
		bookRepo:   bookRepo,
		socialRepo: socialRepo,
	}
}

type AuthorView struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Slug     string  `json:"slug"`
}

type SiteSettingsView struct {
	Title          string `json:"title"`
	Author         string `json:"author"`
	Introduction   string `json:"introduction"`
	Navbar         string `json:"navbar"`
	Footer         string `json:"footer"`
	HeroBackground string `json:"heroBackground"`
}

// BlogView is the list rendering of a blog: html_content stays out of the
// composite document and publish_date is an ISO calendar date or null.
type BlogView struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Published   bool    `json:"published"`
	Name        string  `json:"name"`
	PublishDate *string `json:"publish_date"`
	Show        bool    `json:"show"`
}

type BookView struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Image             string `json:"image"`
	Published         bool   `json:"published"`
	AmazonURL         string `json:"amazonUrl"`
	BarnesAndNobleURL string `json:"barnesandnobleUrl"`
	GoogleBooksURL    string `json:"googlebooksUrl"`
}

type SocialLinkView struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// SiteView is the composite author document. Site is an empty JSON object
// when the author has no Site row, never null.
type SiteView struct {
	Author      AuthorView       `json:"author"`
	Site        any              `json:"site"`
	Blogs       []BlogView       `json:"blogs"`
	Books       []BookView       `json:"books"`
	SocialLinks []SocialLinkView `json:"socialLinks"`
}

// ComposeAuthorSite builds the composite document for the given slug.
// Blogs and books are returned regardless of their published/show flags;
// visibility filtering is left to the frontend, matching how the site has
// always behaved. Collections are ordered by id.
func (s *SiteService) ComposeAuthorSite(slug string) (*SiteView, error) {
	user, err := s.userRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	view := &SiteView{
		Author: AuthorView{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Email:    user.Email,
			Slug:     user.Slug,
		},
		Site:        struct{}{},
		Blogs:       []BlogView{},
		Books:       []BookView{},
		SocialLinks: []SocialLinkView{},
	}

	site, err := s.siteRepo.GetByUser(user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if site != nil {
		view.Site = SiteSettingsView{
			Title:          site.Title,
			Author:         site.Author,
			Introduction:   site.Introduction,
			Navbar:         site.Navbar,
			Footer:         site.Footer,
			HeroBackground: site.HeroBackground,
		}
	}

	blogs, err := s.blogRepo.ListByAuthor(user.ID)
	if err != nil {
		return nil, err
	}
	for _, blog := range blogs {
		view.Blogs = append(view.Blogs, BlogView{
			Title:       blog.Title,
			Subtitle:    blog.Subtitle,
			Description: blog.Description,
			Image:       blog.Image,
			Published:   blog.Published,
			Name:        blog.Name,
			PublishDate: isoDate(blog.PublishDate),
			Show:        blog.Show,
		})
	}

	books, err := s.bookRepo.ListByAuthor(user.ID)
	if err != nil {
		return nil, err
	}
	for _, book := range books {
		view.Books = append(view.Books, BookView{
			Title:             book.Title,
			Description:       book.Description,
			Image:             book.Image,
			Published:         book.Published,
			AmazonURL:         book.AmazonURL,
			BarnesAndNobleURL: book.BarnesAndNobleURL,
			GoogleBooksURL:    book.GoogleBooksURL,
		})
	}

	links, err := s.socialRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		view.SocialLinks = append(view.SocialLinks, SocialLinkView{
			Name:  link.Name,
			URL:   link.URL,
			Icon:  link.Icon,
			Color: link.Color,
		})
	}

	return view, nil
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
