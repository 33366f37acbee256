package handler

import (
	"net/http"
	"strconv"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type BookHandler struct {
	bookRepo *repository.BookRepository
	log      zerolog.Logger
}

func NewBookHandler(bookRepo *repository.BookRepository, log zerolog.Logger) *BookHandler {
	return &BookHandler{bookRepo: bookRepo, log: log.With().Str("component", "book_handler").Logger()}
}

type CreateBookRequest struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	Image             string `json:"image"`
	Published         bool   `json:"published"`
	AmazonURL         string `json:"amazonUrl"`
	BarnesAndNobleURL string `json:"barnesandnobleUrl"`
	GoogleBooksURL    string `json:"googlebooksUrl"`
}

type UpdateBookRequest struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	Image             *string `json:"image"`
	Published         *bool   `json:"published"`
	AmazonURL         *string `json:"amazonUrl"`
	BarnesAndNobleURL *string `json:"barnesandnobleUrl"`
	GoogleBooksURL    *string `json:"googlebooksUrl"`
}

func (h *BookHandler) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}
	book := models.Book{
		Title:             req.Title,
		Description:       req.Description,
		Image:             req.Image,
		Published:         req.Published,
		AmazonURL:         req.AmazonURL,
		BarnesAndNobleURL: req.BarnesAndNobleURL,
		GoogleBooksURL:    req.GoogleBooksURL,
		AuthorID:          middleware.GetUserID(c),
	}
	if err := h.bookRepo.Create(&book); err != nil {
		h.log.Error().Err(err).Str("title", req.Title).Msg("book insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create book"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book id"})
		return
	}
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book payload"})
		return
	}

	book, err := h.bookRepo.GetByID(uint(id))
	if err != nil || book.AuthorID != middleware.GetUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Image != nil {
		book.Image = *req.Image
	}
	if req.Published != nil {
		book.Published = *req.Published
	}
	if req.AmazonURL != nil {
		book.AmazonURL = *req.AmazonURL
	}
	if req.BarnesAndNobleURL != nil {
		book.BarnesAndNobleURL = *req.BarnesAndNobleURL
	}
	if req.GoogleBooksURL != nil {
		book.GoogleBooksURL = *req.GoogleBooksURL
	}

	if err := h.bookRepo.Update(book); err != nil {
		h.log.Error().Err(err).Uint("id", book.ID).Msg("book update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update book"})
		return
	}
	c.JSON(http.StatusOK, book)
}
