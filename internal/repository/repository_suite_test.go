// internal/repository/repository_suite_test.go

// Integration suite for the repository layer. It needs a reachable Postgres
// instance; point TEST_DATABASE_URL at one, e.g.
//
//	TEST_DATABASE_URL="host=localhost port=5432 user=postgres dbname=ordersys_test sslmode=disable"
//
// The suite runs the embedded migrations once and creates its own rows with
// unique emails, so it can share a database with previous runs.
package repository

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopkit/orders-backend/internal/database"
	"github.com/shopkit/orders-backend/internal/models"
	"github.com/shopkit/orders-backend/internal/repository/scope"
)

type RepositorySuite struct {
	suite.Suite
	db *gorm.DB

	users    *UserRepository
	products *ProductRepository
	orders   *OrderRepository
	items    *OrderItemRepository
	reviews  *ProductReviewRepository
}

func TestRepositorySuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	db, err := gorm.Open(postgres.Open(os.Getenv("TEST_DATABASE_URL")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(database.RunMigrations(db))

	s.db = db
	s.users = NewUserRepository(db)
	s.products = NewProductRepository(db)
	s.orders = NewOrderRepository(db)
	s.items = NewOrderItemRepository(db)
	s.reviews = NewProductReviewRepository(db)
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s+%d@example.com", prefix, time.Now().UnixNano())
}

func (s *RepositorySuite) createUser(name string) *models.User {
	user := &models.User{Name: name, Email: uniqueEmail(name)}
	s.Require().NoError(s.users.Create(user))
	return user
}

func (s *RepositorySuite) createProduct(name string, price string, stock int) *models.Product {
	product := &models.Product{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	s.Require().NoError(s.products.Create(product))
	return product
}

// Uniqueness

func (s *RepositorySuite) TestDuplicateEmailIsRejected() {
	user := s.createUser("dup")

	err := s.users.Create(&models.User{Name: "other", Email: user.Email})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *RepositorySuite) TestDuplicateReviewPairIsRejected() {
	user := s.createUser("reviewer")
	product := s.createProduct("Keyboard", "80.00", 5)

	first := &models.ProductReview{UserID: user.ID, ProductID: product.ID, Rating: 4}
	s.Require().NoError(s.reviews.Create(first))

	second := &models.ProductReview{UserID: user.ID, ProductID: product.ID, Rating: 1}
	s.ErrorIs(s.reviews.Create(second), gorm.ErrDuplicatedKey)
}

func (s *RepositorySuite) TestReviewRatingIsNotRangeChecked() {
	user := s.createUser("harsh")
	product := s.createProduct("Webcam", "35.00", 3)

	review := &models.ProductReview{UserID: user.ID, ProductID: product.ID, Rating: 42}
	s.NoError(s.reviews.Create(review))
}

// Cascades

func (s *RepositorySuite) TestDeletingUserCascadesToOrdersItemsAndReviews() {
	user := s.createUser("cascade")
	product := s.createProduct("Monitor", "220.00", 2)

	order := &models.Order{Total: decimal.RequireFromString("220.00"), UserID: user.ID}
	order.AddItem(&models.OrderItem{
		Quantity:  1,
		Subtotal:  decimal.RequireFromString("220.00"),
		ProductID: product.ID,
	})
	s.Require().NoError(s.orders.Create(order))
	s.Require().NoError(s.reviews.Create(&models.ProductReview{
		UserID: user.ID, ProductID: product.ID, Rating: 5,
	}))

	s.Require().NoError(s.users.Delete(user.ID))

	_, err := s.orders.FindByID(order.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	items, err := s.items.FindByOrderID(order.ID)
	s.NoError(err)
	s.Empty(items)

	exists, err := s.reviews.ExistsByKey(user.ID, product.ID)
	s.NoError(err)
	s.False(exists)
}

func (s *RepositorySuite) TestDeletingProductCascadesToItemsAndReviews() {
	user := s.createUser("buyer")
	product := s.createProduct("Headset", "60.00", 4)

	order := &models.Order{Total: decimal.RequireFromString("60.00"), UserID: user.ID}
	order.AddItem(&models.OrderItem{
		Quantity:  1,
		Subtotal:  decimal.RequireFromString("60.00"),
		ProductID: product.ID,
	})
	s.Require().NoError(s.orders.Create(order))
	s.Require().NoError(s.reviews.Create(&models.ProductReview{
		UserID: user.ID, ProductID: product.ID, Rating: 3,
	}))

	s.Require().NoError(s.products.Delete(product.ID))

	items, err := s.items.FindByProductID(product.ID)
	s.NoError(err)
	s.Empty(items)

	reviews, err := s.reviews.FindByProductID(product.ID)
	s.NoError(err)
	s.Empty(reviews)

	// The order itself survives; only its rows referencing the product go.
	_, err = s.orders.FindByID(order.ID)
	s.NoError(err)
}

func (s *RepositorySuite) TestItemCreateWithUnknownProductIsRejected() {
	user := s.createUser("dangling")
	order := &models.Order{Total: decimal.Zero, UserID: user.ID}
	s.Require().NoError(s.orders.Create(order))

	err := s.items.Create(&models.OrderItem{
		Quantity:  1,
		Subtotal:  decimal.Zero,
		OrderID:   order.ID,
		ProductID: 999999999,
	})
	s.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

// Orphan removal

func (s *RepositorySuite) TestRemoveItemDeletesRowOnSave() {
	user := s.createUser("orphan")
	product := s.createProduct("Cable", "9.90", 100)

	order := &models.Order{Total: decimal.RequireFromString("19.80"), UserID: user.ID}
	keep := &models.OrderItem{Quantity: 1, Subtotal: decimal.RequireFromString("9.90"), ProductID: product.ID}
	drop := &models.OrderItem{Quantity: 1, Subtotal: decimal.RequireFromString("9.90"), ProductID: product.ID}
	order.AddItem(keep)
	order.AddItem(drop)
	s.Require().NoError(s.orders.Create(order))
	s.Require().NotZero(drop.ID)

	order.RemoveItem(drop)
	s.Require().NoError(s.orders.Save(order))
	s.Empty(order.DetachedItems())

	items, err := s.items.FindByOrderID(order.ID)
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal(keep.ID, items[0].ID)

	_, err = s.items.FindByID(drop.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Query styles

func (s *RepositorySuite) TestFindByEmailRawNotFound() {
	_, err := s.users.FindByEmailRaw("nobody@nowhere.example")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositorySuite) TestSumPaidTotalByUserIsZeroWithoutPaidOrders() {
	user := s.createUser("unpaid")

	total, err := s.orders.SumPaidTotalByUser(user.ID)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *RepositorySuite) TestAverageRatingReportsAbsence() {
	product := s.createProduct("Unreviewed", "12.00", 1)

	_, ok, err := s.reviews.AverageRating(product.ID)
	s.NoError(err)
	s.False(ok)
}

func (s *RepositorySuite) TestScopeComposition() {
	user := s.createUser("scoped")

	cheap := &models.Order{Total: decimal.RequireFromString("10.00"), UserID: user.ID}
	s.Require().NoError(s.orders.Create(cheap))

	paid := &models.Order{Total: decimal.RequireFromString("500.00"), UserID: user.ID}
	s.Require().NoError(s.orders.Create(paid))
	paid.Status = models.OrderStatusPaid
	s.Require().NoError(s.orders.Update(paid))

	found, err := s.orders.FindAllScoped(
		scope.OrderByUser(user.ID),
		scope.OrderByStatus(models.OrderStatusPaid),
		scope.OrderTotalGreaterThan(decimal.RequireFromString("100.00")),
	)
	s.NoError(err)
	s.Require().Len(found, 1)
	s.Equal(paid.ID, found[0].ID)

	count, err := s.orders.CountScoped(scope.OrderByUser(user.ID))
	s.NoError(err)
	s.Equal(int64(2), count)
}

// End-to-end walkthrough: a user orders two units of a product, pays, and
// leaves a review.

func (s *RepositorySuite) TestOrderLifecycle() {
	ana := s.createUser("Ana")
	mouse := s.createProduct("Wireless Mouse", "50.00", 10)

	order := &models.Order{Total: decimal.RequireFromString("100.00"), UserID: ana.ID}
	order.AddItem(&models.OrderItem{
		Quantity:  2,
		Subtotal:  decimal.RequireFromString("100.00"),
		ProductID: mouse.ID,
	})
	s.Require().NoError(s.orders.Create(order))

	loaded, err := s.orders.FindByIDWithItems(order.ID)
	s.Require().NoError(err)
	s.Equal(models.OrderStatusCreated, loaded.Status)
	s.Require().Len(loaded.Items, 1)
	s.Equal(2, loaded.Items[0].Quantity)
	s.Require().NotNil(loaded.Items[0].Product)
	s.Equal("Wireless Mouse", loaded.Items[0].Product.Name)

	loaded.Status = models.OrderStatusPaid
	s.Require().NoError(s.orders.Update(loaded))

	paidTotal, err := s.orders.SumPaidTotalByUser(ana.ID)
	s.Require().NoError(err)
	s.True(paidTotal.Equal(decimal.RequireFromString("100.00")))

	s.Require().NoError(s.reviews.Create(&models.ProductReview{
		UserID:    ana.ID,
		ProductID: mouse.ID,
		Rating:    5,
		Comment:   "Excellent mouse",
	}))

	avg, ok, err := s.reviews.AverageRating(mouse.ID)
	s.Require().NoError(err)
	s.True(ok)
	s.InDelta(5.0, avg, 0.001)

	withOrders, err := s.users.FindByIDWithOrders(ana.ID)
	s.Require().NoError(err)
	s.Require().Len(withOrders.Orders, 1)
	s.True(withOrders.Orders[0].Equal(order))
}
