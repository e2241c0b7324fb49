package handlers

import (
	"net/http"
	"strconv"

	"deoghar-kitab/helper"
	"deoghar-kitab/models"
	"deoghar-kitab/services"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService services.BookService
	Helper      *helper.HTTPHelper
}

func NewBookHandler(bookService services.BookService, h *helper.HTTPHelper) *BookHandler {
	return &BookHandler{bookService: bookService, Helper: h}
}

// GetBooks handles GET /api/books: available listings, optionally filtered
// by category, condition and a title/author search.
func (h *BookHandler) GetBooks(c *gin.Context) {
	var params models.BookListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 12
	}

	books, total, err := h.bookService.GetAvailableBooks(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"books":  books,
		"paging": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

// GetBook handles GET /api/books/:id.
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.bookService.GetBook(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// GetSellerBooks handles GET /api/books/seller/:sellerId.
func (h *BookHandler) GetSellerBooks(c *gin.Context) {
	id, ok := h.parseID(c, "sellerId")
	if !ok {
		return
	}

	books, err := h.bookService.GetSellerBooks(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// CreateBook handles POST /api/books.
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req models.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	book, err := h.bookService.CreateBook(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBook handles PUT /api/books/:id for the book's seller or an admin.
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	callerID, callerRole := callerIdentity(c)

	book, err := h.bookService.UpdateBook(id, req, callerID, callerRole)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// UpdateStatus handles PUT /api/books/:id/status.
func (h *BookHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBookStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	callerID, callerRole := callerIdentity(c)

	book, err := h.bookService.UpdateStatus(id, req.Status, callerID, callerRole)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /api/books/:id (admin).
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookService.DeleteBook(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

func (h *BookHandler) parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid book ID")
		return 0, false
	}
	return uint(id), true
}
