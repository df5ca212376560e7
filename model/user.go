package model

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"files-manager/common"
)

// User is an account identified by email. Password holds a bcrypt hash and
// never leaves the API.
type User struct {
	Id        int64  `json:"id" gorm:"primaryKey"`
	Email     string `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Password  string `json:"-" gorm:"size:100;not null"`
	CreatedAt int64  `json:"created_at" gorm:"autoCreateTime"`
}

// UserStore runs account queries against the metadata database.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates an account with a hashed password. A taken email is
// reported as common.ErrEmailTaken.
func (s *UserStore) Register(ctx context.Context, email string, password string) (*User, error) {
	if email == "" {
		return nil, common.ErrMissingEmail
	}
	if password == "" {
		return nil, common.ErrMissingPassword
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, common.ErrEmailTaken
	}
	hashed, err := common.Password2Hash(password)
	if err != nil {
		return nil, err
	}
	user := &User{Email: email, Password: hashed, CreatedAt: time.Now().Unix()}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) ByID(ctx context.Context, id int64) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}
