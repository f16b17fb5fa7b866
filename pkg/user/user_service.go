package user

import (
	"buddyfridge/domain"
	"buddyfridge/entities"
	"buddyfridge/internal/utils"
	"buddyfridge/pkg/jwt"
	"buddyfridge/pkg/memory"
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository     UserRepository
		frequentRepository memory.FrequentRepository
		jwtService         jwt.JWTService
		clock              utils.Clock
	}
)

func NewUserService(
	userRepository UserRepository,
	frequentRepository memory.FrequentRepository,
	jwtService jwt.JWTService,
	clock utils.Clock,
) UserService {
	return &userService{
		userRepository:     userRepository,
		frequentRepository: frequentRepository,
		jwtService:         jwtService,
		clock:              clock,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepository.GetByEmail(ctx, email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    email,
		Password: string(hash),
	}

	if err := s.userRepository.Insert(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	// New accounts get the starter memories so suggestions work before the
	// app has learned anything from real entries.
	if err := memory.SeedStarterPack(ctx, s.frequentRepository, s.clock, user.ID); err != nil {
		log.Errorf("seed starter pack for user %s: %v", user.ID, err)
	}

	return toResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String()),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toResponse(user), nil
}

func toResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
