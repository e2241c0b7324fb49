package repositories

import (
	"deoghar-kitab/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Create(book *models.Book) error
	GetByID(id uint) (*models.Book, error)
	GetAvailable(params models.BookListParams) ([]models.Book, int64, error)
	GetBySeller(sellerID uint) ([]models.Book, error)
	Update(book *models.Book) error
	UpdateStatus(id uint, status models.BookStatus) (int64, error)
	Delete(id uint) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

func sellerProjection(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func (r *bookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	err := r.db.Preload("Seller", sellerProjection).First(&book, id).Error
	return &book, err
}

func (r *bookRepository) GetAvailable(params models.BookListParams) ([]models.Book, int64, error) {
	var books []models.Book
	var total int64

	query := r.db.Model(&models.Book{}).
		Preload("Seller", sellerProjection).
		Where("status = ?", models.StatusAvailable)

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Condition != "" {
		query = query.Where("condition = ?", params.Condition)
	}

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", like, like)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&books).Error

	return books, total, err
}

func (r *bookRepository) GetBySeller(sellerID uint) ([]models.Book, error) {
	var books []models.Book
	err := r.db.Where("seller_id = ?", sellerID).Order("created_at desc").Find(&books).Error
	return books, err
}

func (r *bookRepository) Update(book *models.Book) error {
	return r.db.Omit("Seller").Save(book).Error
}

func (r *bookRepository) UpdateStatus(id uint, status models.BookStatus) (int64, error) {
	res := r.db.Model(&models.Book{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *bookRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Book{}, id)
	return res.RowsAffected, res.Error
}
