package services

import (
	"context"
	"strings"
	"time"

	"nutriscan/models"
	"nutriscan/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	mailer Mailer
	log    logrus.FieldLogger
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration, mailer Mailer, log logrus.FieldLogger) *AuthService {
	return &AuthService{db: db, secret: []byte(secret), ttl: ttl, mailer: mailer, log: log}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=2"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RegisterResult struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func (s *AuthService) emailTaken(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "count users by email")
	}
	return n > 0, nil
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	email := normalizeEmail(in.Email)
	taken, err := s.emailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.BadRequest("Email already in use")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := models.User{Email: email, Name: strings.TrimSpace(in.Name), PasswordHash: hash, Role: models.RoleUser}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// a concurrent registration may have claimed the address since the check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.BadRequest("Email already in use")
		}
		if taken, terr := s.emailTaken(ctx, email); terr == nil && taken {
			return nil, utils.BadRequest("Email already in use")
		}
		return nil, errors.Wrap(err, "create user")
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.ttl)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	if s.mailer != nil {
		go func(to, name string) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.mailer.SendWelcome(ctx, to, name); err != nil {
				s.log.WithError(err).WithField("email", to).Warn("welcome email failed")
			}
		}(user.Email, user.Name)
	}

	return &RegisterResult{
		User:  AuthUser{ID: user.ID, Email: user.Email, Name: user.Name},
		Token: token,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Profile").Where("email = ?", normalizeEmail(in.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	if !utils.CheckPasswordHash(in.Password, user.PasswordHash) {
		return nil, utils.Unauthorized("Invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.ttl)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}
	return &LoginResult{User: &user, Token: token}, nil
}

func (s *AuthService) CheckEmailAvailable(ctx context.Context, email string) (bool, error) {
	taken, err := s.emailTaken(ctx, normalizeEmail(email))
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil, utils.Unauthorized("Not authorized to access this route")
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.Unauthorized("User not found")
		}
		return nil, errors.Wrap(err, "load user")
	}
	return &user, nil
}
