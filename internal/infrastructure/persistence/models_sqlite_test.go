package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// newSQLiteDB opens an in-memory database with the full schema migrated.
// Search queries stay on sqlmock tests since they use Postgres operators,
// but CRUD round-trips run against a real engine here.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.GuestModel{},
		&models.RoomTypeModel{},
		&models.RoomModel{},
		&models.BookingModel{},
		&models.BookingPaymentModel{},
		&models.MenuCategoryModel{},
		&models.MenuItemModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.ConferenceRoomModel{},
		&models.ConferenceBookingModel{},
		&models.DepartmentModel{},
		&models.StaffMemberModel{},
		&models.InvoiceModel{},
		&models.PaymentModel{},
		&models.TaxRateModel{},
		&models.DiscountModel{},
	)
	require.NoError(t, err)

	return db
}

func TestGuestRepositoryRoundTrip(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormGuestRepository(db)
	ctx := context.Background()

	g, err := guest.NewGuest("Farid", "Ahmadi", "+93700123456", guest.GuestTypeBooking)
	require.NoError(t, err)
	g.SetEmail("farid@example.com")
	g.City = "Kabul"

	require.NoError(t, repo.Save(ctx, g))

	found, err := repo.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Farid", found.FirstName)
	assert.Equal(t, "Ahmadi", found.LastName)
	assert.Equal(t, guest.GuestTypeBooking, found.GuestType)
	assert.Equal(t, guest.VIPStatusRegular, found.VIPStatus)
	require.NotNil(t, found.Email)
	assert.Equal(t, "farid@example.com", *found.Email)
	assert.True(t, found.IsActive)

	found.VIPStatus = guest.VIPStatusGold
	require.NoError(t, repo.Save(ctx, found))

	updated, err := repo.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, guest.VIPStatusGold, updated.VIPStatus)

	exists, err := repo.ExistsByEmail(ctx, "farid@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, g.ID))

	_, err = repo.FindByID(ctx, g.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, g.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
