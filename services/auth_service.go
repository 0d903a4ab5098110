package services

import (
	"errors"
	"strings"

	"bloom/models"
	"bloom/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

type RegisterInput struct {
	Username     string `form:"username" json:"username"`
	Password     string `form:"password" json:"password"`
	Confirmation string `form:"confirmation" json:"confirmation"`
	FullName     string `form:"full_name" json:"full_name"`
}

func (s *AuthService) Register(in RegisterInput) error {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return &ValidationError{Field: "username", Message: "missing username"}
	}
	if in.Password == "" || in.Confirmation == "" {
		return &ValidationError{Field: "password", Message: "missing password"}
	}
	if in.Password != in.Confirmation {
		return &ValidationError{Field: "confirmation", Message: "passwords do not match"}
	}
	if strings.TrimSpace(in.FullName) == "" {
		return &ValidationError{Field: "full_name", Message: "missing name"}
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Password: hashed,
		FullName: strings.TrimSpace(in.FullName),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	result := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user)
	if result.Error != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID)
}
