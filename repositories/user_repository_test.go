package repositories

import (
	"testing"
	"time"

	"deoghar-kitab/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Book{}))
	return NewUserRepository(db)
}

func seedPending(t *testing.T, repo UserRepository) *models.User {
	t.Helper()
	u := &models.User{Name: "Ravi", Email: "ravi@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(u))
	rows, err := repo.SubmitSellerRequest(u.ID, models.SellerInfo{Name: "Ravi's Books", Phone: "9876543210", Location: "Deoghar"}, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)
	return u
}

// The approve transition is a single conditional update: once one caller
// wins, every later attempt matches zero rows.
func TestApproveSellerIsConditional(t *testing.T) {
	repo := setupRepo(t)
	u := seedPending(t, repo)

	rows, err := repo.ApproveSeller(u.ID, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	rows, err = repo.ApproveSeller(u.ID, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)

	got, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleSeller, got.UserType)
	require.True(t, got.SellerRequest.Approved)
}

func TestClearSellerRequestIsConditional(t *testing.T) {
	repo := setupRepo(t)
	u := seedPending(t, repo)

	rows, err := repo.ClearSellerRequest(u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	rows, err = repo.ClearSellerRequest(u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)

	got, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	require.False(t, got.SellerRequest.Requested)
	require.Nil(t, got.SellerRequest.RequestedAt)
	// Submitted info is retained after a reject
	require.Equal(t, "Ravi's Books", got.SellerInfo.Name)
}

func TestSubmitSellerRequestGuards(t *testing.T) {
	repo := setupRepo(t)
	u := seedPending(t, repo)

	// Already pending: no rows match
	rows, err := repo.SubmitSellerRequest(u.ID, models.SellerInfo{}, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)

	// Existing sellers cannot re-request
	rows, err = repo.ApproveSeller(u.ID, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)
	rows, err = repo.SubmitSellerRequest(u.ID, models.SellerInfo{}, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)
}

func TestGetPendingSellersFiltersByState(t *testing.T) {
	repo := setupRepo(t)
	seedPending(t, repo)

	other := &models.User{Name: "Meena", Email: "meena@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(other))

	pending, err := repo.GetPendingSellers()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "ravi@example.com", pending[0].Email)
}
