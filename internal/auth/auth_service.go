package auth

import (
	"context"
	"database/sql"
	"os"
	"time"

	autherrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/auth/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
	Me(ctx context.Context, userID string) (UserResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Register(
	ctx context.Context,
	req RegisterRequest,
) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	role := req.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if role == domain.RoleEmployee && req.EmployeeID == "" {
		return UserResponse{}, autherrors.ErrEmployeeLinkRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register password hash failed", zap.Error(err))
		return UserResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	user := &User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if req.EmployeeID != "" {
		employeeUUID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return UserResponse{}, autherrors.ErrEmployeeLinkRequired
		}
		if _, err := qtx.EmployeeLink(ctx, req.EmployeeID); err != nil {
			return UserResponse{}, mapRepositoryError(err)
		}
		user.EmployeeID = &employeeUUID
	}

	if err := qtx.Create(ctx, user); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
	)

	return mapUserResponse(*user), nil
}

func (s *service) Login(
	ctx context.Context,
	req LoginRequest,
) (TokenResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same answer for unknown email and bad password.
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		s.logger.Error("login token issue failed", zap.Error(err))
		return TokenResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))
	return resp, nil
}

func (s *service) Refresh(
	ctx context.Context,
	req RefreshRequest,
) (TokenResponse, error) {
	claims, err := parseToken(req.RefreshToken)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != "refresh" {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		s.logger.Error("refresh token issue failed", zap.Error(err))
		return TokenResponse{}, err
	}

	return resp, nil
}

func (s *service) Me(
	ctx context.Context,
	userID string,
) (UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapUserResponse(*user), nil
}

func (s *service) issueTokens(ctx context.Context, user *User) (TokenResponse, error) {
	var employeeID, employeeNumber string
	if user.EmployeeID != nil {
		employeeID = user.EmployeeID.String()
		if link, err := s.repo.EmployeeLink(ctx, employeeID); err == nil {
			employeeNumber = link.EmployeeNumber
		}
	}

	now := time.Now()

	accessToken, err := signToken(jwt.MapClaims{
		"user_id":         user.ID.String(),
		"role":            user.Role,
		"employee_id":     employeeID,
		"employee_number": employeeNumber,
		"token_type":      "access",
		"iat":             now.Unix(),
		"exp":             now.Add(accessTokenTTL).Unix(),
	})
	if err != nil {
		return TokenResponse{}, err
	}

	refreshToken, err := signToken(jwt.MapClaims{
		"user_id":    user.ID.String(),
		"role":       user.Role,
		"token_type": "refresh",
		"iat":        now.Unix(),
		"exp":        now.Add(refreshTokenTTL).Unix(),
	})
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		User:         mapUserResponse(*user),
	}, nil
}

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidRefreshToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidRefreshToken
	}
	return claims, nil
}

func mapUserResponse(user User) UserResponse {
	resp := UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}
	if user.EmployeeID != nil {
		resp.EmployeeID = user.EmployeeID.String()
	}
	return resp
}
