package services

import (
	"encoding/json"
	"errors"

	"deoghar-kitab/models"
	"deoghar-kitab/repositories"

	"gorm.io/gorm"
)

type BookService interface {
	CreateBook(req models.CreateBookRequest) (*models.Book, error)
	GetBook(id uint) (*models.Book, error)
	GetAvailableBooks(params models.BookListParams) ([]models.Book, int64, error)
	GetSellerBooks(sellerID uint) ([]models.Book, error)
	UpdateBook(id uint, req models.UpdateBookRequest, callerID uint, callerRole models.UserRole) (*models.Book, error)
	UpdateStatus(id uint, status models.BookStatus, callerID uint, callerRole models.UserRole) (*models.Book, error)
	DeleteBook(id uint) error
}

type bookService struct {
	bookRepo repositories.BookRepository
	userRepo repositories.UserRepository
	cache    *BookCache
}

func NewBookService(bookRepo repositories.BookRepository, userRepo repositories.UserRepository, cache *BookCache) BookService {
	return &bookService{
		bookRepo: bookRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

func (s *bookService) CreateBook(req models.CreateBookRequest) (*models.Book, error) {
	status := req.Status
	if status == "" {
		status = models.StatusAvailable
	}
	if !models.ValidBookStatus(status) {
		return nil, models.ErrInvalidStatus
	}

	// The seller reference is checked once, at creation time
	if _, err := s.userRepo.GetByID(req.SellerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrSellerNotFound
		}
		return nil, err
	}

	images, err := json.Marshal(req.Images)
	if err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		Images:      images,
		SellerID:    req.SellerID,
		SellerName:  req.SellerName,
		ContactInfo: req.ContactInfo,
		Status:      status,
	}

	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}

	s.cache.Invalidate()

	return s.bookRepo.GetByID(book.ID)
}

func (s *bookService) GetBook(id uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) GetAvailableBooks(params models.BookListParams) ([]models.Book, int64, error) {
	cacheable := !params.Filtered()

	if cacheable {
		if books, total, ok := s.cache.GetListing(); ok {
			return books, total, nil
		}
	}

	books, total, err := s.bookRepo.GetAvailable(params)
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		s.cache.StoreListing(books, total)
	}

	return books, total, nil
}

func (s *bookService) GetSellerBooks(sellerID uint) ([]models.Book, error) {
	return s.bookRepo.GetBySeller(sellerID)
}

func (s *bookService) UpdateBook(id uint, req models.UpdateBookRequest, callerID uint, callerRole models.UserRole) (*models.Book, error) {
	book, err := s.GetBook(id)
	if err != nil {
		return nil, err
	}

	if book.SellerID != callerID && callerRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Price != nil {
		book.Price = *req.Price
	}
	if req.Category != nil {
		book.Category = *req.Category
	}
	if req.Condition != nil {
		book.Condition = *req.Condition
	}
	if req.Images != nil {
		images, err := json.Marshal(req.Images)
		if err != nil {
			return nil, err
		}
		book.Images = images
	}
	if req.SellerName != nil {
		book.SellerName = *req.SellerName
	}
	if req.ContactInfo != nil {
		book.ContactInfo = *req.ContactInfo
	}

	if err := s.bookRepo.Update(book); err != nil {
		return nil, err
	}

	s.cache.Invalidate()

	return book, nil
}

func (s *bookService) UpdateStatus(id uint, status models.BookStatus, callerID uint, callerRole models.UserRole) (*models.Book, error) {
	if !models.ValidBookStatus(status) {
		return nil, models.ErrInvalidStatus
	}

	book, err := s.GetBook(id)
	if err != nil {
		return nil, err
	}

	if book.SellerID != callerID && callerRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	// Any valid status may follow any other; there is no adjacency rule
	rows, err := s.bookRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.ErrNotFound
	}

	s.cache.Invalidate()

	return s.GetBook(id)
}

func (s *bookService) DeleteBook(id uint) error {
	rows, err := s.bookRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrNotFound
	}

	s.cache.Invalidate()

	return nil
}
