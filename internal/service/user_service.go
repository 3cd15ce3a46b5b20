package service

import (
	"errors"
	"strings"

	"github.com/GKleim/wiki/internal/auth"
	"github.com/GKleim/wiki/internal/db"
	"gorm.io/gorm"
)

var (
	ErrUserExists   = errors.New("user is already registered")
	ErrInvalidLogin = errors.New("invalid login")
)

// UserService wraps user account database operations.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// ByID fetches a user by primary key. Missing users yield (nil, nil).
func (s *UserService) ByID(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ByName fetches a user by username. Missing users yield (nil, nil).
func (s *UserService) ByName(username string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Register creates a new account with a salted password digest.
// 先查后插仍可能与并发注册竞争；username 上的唯一索引兜底，
// 冲突同样映射为 ErrUserExists。
func (s *UserService) Register(username, password, email string) (*db.User, error) {
	existing, err := s.ByName(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := db.User{
		Username: username,
		Password: auth.MakePasswordHash(username, password),
		Email:    strings.TrimSpace(email),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, mapDuplicateErr(err)
	}

	return &user, nil
}

// mapDuplicateErr 将唯一索引冲突映射为 ErrUserExists
func mapDuplicateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserExists
	}
	return err
}

// Login verifies a username/password pair.
// 未知用户与密码错误不做区分，一律返回 ErrInvalidLogin。
func (s *UserService) Login(username, password string) (*db.User, error) {
	user, err := s.ByName(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(username, password, user.Password) {
		return nil, ErrInvalidLogin
	}
	return user, nil
}
