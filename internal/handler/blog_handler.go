package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/pkg/markdown"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type BlogHandler struct {
	blogRepo *repository.BlogRepository
	log      zerolog.Logger
}

func NewBlogHandler(blogRepo *repository.BlogRepository, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{blogRepo: blogRepo, log: log.With().Str("component", "blog_handler").Logger()}
}

type CreateBlogRequest struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Content     string `json:"content"` // Markdown source, rendered to html_content
	HTMLContent string `json:"html_content"`
	Published   *bool  `json:"published"`
	Name        string `json:"name" binding:"required"`
	PublishDate string `json:"publish_date"` // YYYY-MM-DD, defaults to today
	Show        *bool  `json:"show"`
}

type UpdateBlogRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Content     *string `json:"content"`
	HTMLContent *string `json:"html_content"`
	Published   *bool   `json:"published"`
	Name        *string `json:"name"`
	PublishDate *string `json:"publish_date"`
	Show        *bool   `json:"show"`
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and name are required"})
		return
	}
	if _, err := h.blogRepo.GetByName(req.Name); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Blog name already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Error().Err(err).Msg("blog name lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create blog"})
		return
	}

	htmlContent := req.HTMLContent
	if req.Content != "" {
		htmlContent = markdown.Render(req.Content)
	}
	publishDate := time.Now()
	if req.PublishDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PublishDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid publish_date format (use YYYY-MM-DD)"})
			return
		}
		publishDate = parsed
	}

	blog := models.Blog{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Image:       req.Image,
		HTMLContent: htmlContent,
		Published:   req.Published != nil && *req.Published,
		Name:        req.Name,
		PublishDate: &publishDate,
		Show:        req.Show == nil || *req.Show,
		AuthorID:    middleware.GetUserID(c),
	}
	if err := h.blogRepo.Create(&blog); err != nil {
		h.log.Error().Err(err).Str("name", req.Name).Msg("blog insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create blog"})
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog id"})
		return
	}
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog payload"})
		return
	}

	blog, err := h.blogRepo.GetByID(uint(id))
	if err != nil || blog.AuthorID != middleware.GetUserID(c) {
		// Someone else's blog reads the same as a missing one.
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		return
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Subtitle != nil {
		blog.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}
	if req.Image != nil {
		blog.Image = *req.Image
	}
	if req.HTMLContent != nil {
		blog.HTMLContent = *req.HTMLContent
	}
	if req.Content != nil {
		blog.HTMLContent = markdown.Render(*req.Content)
	}
	if req.Published != nil {
		blog.Published = *req.Published
	}
	if req.Name != nil {
		blog.Name = *req.Name
	}
	if req.PublishDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.PublishDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid publish_date format (use YYYY-MM-DD)"})
			return
		}
		blog.PublishDate = &parsed
	}
	if req.Show != nil {
		blog.Show = *req.Show
	}

	if err := h.blogRepo.Update(blog); err != nil {
		h.log.Error().Err(err).Uint("id", blog.ID).Msg("blog update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update blog"})
		return
	}
	c.JSON(http.StatusOK, blog)
}
