package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
)

type authService struct {
	userSvc   portssvc.UserSvcFacade
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userSvc portssvc.UserSvcFacade, jwtSecret string, jwtExpiry time.Duration) portssvc.AuthSvcFacade {
	return &authService{userSvc: userSvc, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and issues an HMAC-signed JWT whose
// subject is the user ID and whose role claim drives capability gates.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claims := middleware.RoleClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sign token", "error", err)
		return nil, apperrors.NewAppError(500, "failed to issue token", err)
	}

	return &dto.LoginResponse{
		Token: signed,
		User:  dto.ToUserResponse(user),
	}, nil
}
