// internal/repository/user_repository.go

// Package repository exposes per-entity data access in four equivalent
// styles: field-based finders, builder queries, raw SQL, and composable
// scope executors. All of them resolve to the same WHERE/JOIN/GROUP BY
// semantics; storage failures (unique, foreign-key, not-null violations)
// propagate to the caller untranslated.
package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/shopkit/orders-backend/internal/database"
	"github.com/shopkit/orders-backend/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithOrders loads the user with the order collection, which is
// otherwise fetched lazily.
func (r *UserRepository) FindByIDWithOrders(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Orders").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Save persists the user together with its order collection and applies
// orphan removal: orders detached through User.RemoveOrder are deleted.
func (r *UserRepository) Save(user *models.User) error {
	return database.WithTransaction(r.db, func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{FullSaveAssociations: true})
		if err := session.Save(user).Error; err != nil {
			return err
		}
		for _, order := range user.DetachedOrders() {
			if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
				return err
			}
		}
		user.ClearDetachedOrders()
		return nil
	})
}

// Delete removes the user; orders, their items, and the user's reviews go
// with it via ON DELETE CASCADE.
func (r *UserRepository) Delete(id int64) error {
	return r.db.Delete(&models.User{}, id).Error
}

// Field-based finders

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) FindByNameContaining(name string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("name ILIKE ?", "%"+name+"%").Find(&users).Error
	return users, err
}

// Builder queries

func (r *UserRepository) FindCreatedAfter(date time.Time) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("created_at > ?", date).Find(&users).Error
	return users, err
}

// FindWithOrders returns only users that have at least one order, with the
// order collection loaded eagerly.
func (r *UserRepository) FindWithOrders() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Orders").
		Where("EXISTS (SELECT 1 FROM orders WHERE orders.user_id = users.id)").
		Find(&users).Error
	return users, err
}

// Raw SQL queries

func (r *UserRepository) FindByEmailRaw(email string) (*models.User, error) {
	var user models.User
	tx := r.db.Raw("SELECT * FROM users WHERE email = ?", email).Scan(&user)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *UserRepository) CountByMonthAndYear(month, year int) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(*) FROM users WHERE EXTRACT(MONTH FROM created_at) = ? AND EXTRACT(YEAR FROM created_at) = ?",
		month, year,
	).Scan(&count).Error
	return count, err
}

func (r *UserRepository) SearchByNameFullText(term string) ([]models.User, error) {
	var users []models.User
	err := r.db.Raw(
		"SELECT * FROM users WHERE to_tsvector('english', name) @@ plainto_tsquery('english', ?)",
		term,
	).Scan(&users).Error
	return users, err
}

// Scope executors

func (r *UserRepository) FindAllScoped(scopes ...func(*gorm.DB) *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := r.db.Scopes(scopes...).Find(&users).Error
	return users, err
}

func (r *UserRepository) CountScoped(scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Scopes(scopes...).Count(&count).Error
	return count, err
}

func (r *UserRepository) ExistsScoped(scopes ...func(*gorm.DB) *gorm.DB) (bool, error) {
	count, err := r.CountScoped(scopes...)
	return count > 0, err
}

func (r *UserRepository) FindPageScoped(limit, offset int, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{}).Scopes(scopes...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Order(order).Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}
