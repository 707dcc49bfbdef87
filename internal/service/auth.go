package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fitforge/backend/internal/models"
	"github.com/fitforge/backend/internal/types"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

const tokenTTL = 24 * time.Hour

// AuthService handles registration, login and token validation.
// Registration is the documented trigger for plan generation: a new user
// leaves the flow with both plans already built when generation succeeds.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	log       *zap.Logger
	generator *GenerationService
}

func NewAuthService(db *gorm.DB, jwtSecret string, log *zap.Logger, generator *GenerationService) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		log:       log,
		generator: generator,
	}
}

// Register creates the user and kicks off both generation runs. Generation
// failure does not fail registration; the user can regenerate later.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, "", errors.New("invalid date of birth, expected YYYY-MM-DD")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		FullName:            req.FullName,
		Email:               req.Email,
		PasswordHash:        string(hashed),
		DateOfBirth:         dob,
		Gender:              req.Gender,
		HeightCm:            req.HeightCm,
		WeightKg:            req.WeightKg,
		Role:                "user",
		FitnessGoal:         req.FitnessGoal,
		ExperienceLevel:     req.ExperienceLevel,
		PreferredVenue:      req.PreferredVenue,
		ActivityLevel:       req.ActivityLevel,
		MedicalConditions:   req.MedicalConditions,
		DietaryRestrictions: req.DietaryRestrictions,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", err
	}

	if s.generator != nil {
		if ok := s.generator.GenerateWorkoutPlan(ctx, user.ID); !ok {
			s.log.Warn("initial workout plan generation failed", zap.String("user_id", user.ID.String()))
		}
		if ok := s.generator.GenerateNutritionPlan(ctx, user.ID); !ok {
			s.log.Warn("initial nutrition plan generation failed", zap.String("user_id", user.ID.String()))
		}
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login checks the credentials and issues a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
		Role:   user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a JWT issued by this service.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	var claims types.TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
