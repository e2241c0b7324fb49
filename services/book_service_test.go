package services

import (
	"testing"
	"time"

	"deoghar-kitab/models"
	"deoghar-kitab/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type bookServiceFixture struct {
	svc      BookService
	userRepo repositories.UserRepository
	seller   *models.User
	redis    *miniredis.Miniredis
}

func setupBookService(t *testing.T, withCache bool) *bookServiceFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Book{}))

	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)

	f := &bookServiceFixture{userRepo: userRepo}

	var cache *BookCache
	if withCache {
		f.redis = miniredis.RunT(t)
		cache = NewBookCache(f.redis.Addr(), "", time.Minute)
	}
	f.svc = NewBookService(bookRepo, userRepo, cache)

	f.seller = &models.User{
		Name:     "Sita Devi",
		Email:    "sita@example.com",
		Password: "hashed",
		UserType: models.RoleSeller,
	}
	require.NoError(t, userRepo.Create(f.seller))

	return f
}

func (f *bookServiceFixture) createBook(t *testing.T, title string) *models.Book {
	t.Helper()
	book, err := f.svc.CreateBook(models.CreateBookRequest{
		Title:      title,
		Author:     "Premchand",
		Price:      120,
		Category:   "Fiction",
		Condition:  "Good",
		Images:     []string{"https://img.example.com/1.jpg"},
		SellerID:   f.seller.ID,
		SellerName: f.seller.Name,
		ContactInfo: models.ContactInfo{
			Phone: "9876543210",
			Email: f.seller.Email,
		},
	})
	require.NoError(t, err)
	return book
}

func TestCreateBookUnknownSeller(t *testing.T) {
	f := setupBookService(t, false)

	_, err := f.svc.CreateBook(models.CreateBookRequest{
		Title:    "Godaan",
		Author:   "Premchand",
		Price:    100,
		SellerID: 9999,
	})
	require.ErrorIs(t, err, models.ErrSellerNotFound)

	// No book was inserted
	books, _, err := f.svc.GetAvailableBooks(models.BookListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestStatusUpdateValidation(t *testing.T) {
	f := setupBookService(t, false)
	book := f.createBook(t, "Godaan")

	_, err := f.svc.UpdateStatus(book.ID, "archived", f.seller.ID, models.RoleSeller)
	require.ErrorIs(t, err, models.ErrInvalidStatus)

	updated, err := f.svc.UpdateStatus(book.ID, models.StatusSold, f.seller.ID, models.RoleSeller)
	require.NoError(t, err)
	require.Equal(t, models.StatusSold, updated.Status)

	got, err := f.svc.GetBook(book.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusSold, got.Status)
}

func TestStatusUpdateOwnership(t *testing.T) {
	f := setupBookService(t, false)
	book := f.createBook(t, "Godaan")

	_, err := f.svc.UpdateStatus(book.ID, models.StatusSold, f.seller.ID+1, models.RoleUser)
	require.ErrorIs(t, err, models.ErrForbidden)

	// An admin who is not the seller may moderate
	_, err = f.svc.UpdateStatus(book.ID, models.StatusPending, f.seller.ID+1, models.RoleAdmin)
	require.NoError(t, err)
}

func TestGeneralUpdateCannotTouchStatusOrSeller(t *testing.T) {
	f := setupBookService(t, false)
	book := f.createBook(t, "Godaan")

	newTitle := "Godaan (Hindi)"
	newPrice := 150.0
	updated, err := f.svc.UpdateBook(book.ID, models.UpdateBookRequest{
		Title: &newTitle,
		Price: &newPrice,
	}, f.seller.ID, models.RoleSeller)
	require.NoError(t, err)
	require.Equal(t, "Godaan (Hindi)", updated.Title)
	require.Equal(t, 150.0, updated.Price)
	require.Equal(t, models.StatusAvailable, updated.Status)
	require.Equal(t, f.seller.ID, updated.SellerID)
}

func TestListingRepeatableRead(t *testing.T) {
	f := setupBookService(t, false)
	f.createBook(t, "Godaan")
	f.createBook(t, "Nirmala")

	first, total1, err := f.svc.GetAvailableBooks(models.BookListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	second, total2, err := f.svc.GetAvailableBooks(models.BookListParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Equal(t, total1, total2)
	require.Equal(t, len(first), len(second))
	titles := func(books []models.Book) map[string]bool {
		set := map[string]bool{}
		for _, b := range books {
			set[b.Title] = true
		}
		return set
	}
	require.Equal(t, titles(first), titles(second))
}

func TestListingExcludesSoldAndPending(t *testing.T) {
	f := setupBookService(t, false)
	keep := f.createBook(t, "Godaan")
	sold := f.createBook(t, "Nirmala")
	_, err := f.svc.UpdateStatus(sold.ID, models.StatusSold, f.seller.ID, models.RoleSeller)
	require.NoError(t, err)

	books, total, err := f.svc.GetAvailableBooks(models.BookListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, books, 1)
	require.Equal(t, keep.ID, books[0].ID)
}

func TestListingFilters(t *testing.T) {
	f := setupBookService(t, false)
	f.createBook(t, "Godaan")
	other, err := f.svc.CreateBook(models.CreateBookRequest{
		Title:     "Concepts of Physics",
		Author:    "H. C. Verma",
		Price:     250,
		Category:  "Academic",
		Condition: "Fair",
		SellerID:  f.seller.ID,
	})
	require.NoError(t, err)

	books, _, err := f.svc.GetAvailableBooks(models.BookListParams{Category: "Academic", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, other.ID, books[0].ID)

	books, _, err = f.svc.GetAvailableBooks(models.BookListParams{Search: "physics", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, other.ID, books[0].ID)
}

func TestListingCacheInvalidation(t *testing.T) {
	f := setupBookService(t, true)
	f.createBook(t, "Godaan")

	// Prime the cache
	books, _, err := f.svc.GetAvailableBooks(models.BookListParams{Page: 1, Limit: 12})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.True(t, f.redis.Exists("books:available"))

	// A write drops the cached listing and the next read reflects it
	f.createBook(t, "Nirmala")
	require.False(t, f.redis.Exists("books:available"))

	books, total, err := f.svc.GetAvailableBooks(models.BookListParams{Page: 1, Limit: 12})
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.EqualValues(t, 2, total)
}

func TestDeleteBook(t *testing.T) {
	f := setupBookService(t, false)
	book := f.createBook(t, "Godaan")

	require.NoError(t, f.svc.DeleteBook(book.ID))
	require.ErrorIs(t, f.svc.DeleteBook(book.ID), models.ErrNotFound)

	_, err := f.svc.GetBook(book.ID)
	require.ErrorIs(t, err, models.ErrNotFound)
}
