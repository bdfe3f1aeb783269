package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/apperr"
	"github.com/sbilibin2017/gw-game-roster/internal/jwt"
	"github.com/sbilibin2017/gw-game-roster/internal/logger"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
	"github.com/sbilibin2017/gw-game-roster/internal/repositories"
)

// Transactor runs fn inside one database transaction carried by ctx.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PlayerReader defines read-only operations for players.
type PlayerReader interface {
	GetByID(ctx context.Context, playerID uuid.UUID) (*models.PlayerDB, error)
	GetByEmail(ctx context.Context, email string) (*models.PlayerDB, error)
}

// PlayerWriter defines write operations for players.
type PlayerWriter interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.PlayerDB, error)
	CreateIfNotExists(ctx context.Context, name, email, passwordHash string) (*models.PlayerDB, error)
	Update(ctx context.Context, player *models.PlayerDB) (*models.PlayerDB, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer creates and verifies access and refresh tokens.
type TokenIssuer interface {
	GenerateAccessToken(ctx context.Context, playerID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(ctx context.Context, playerID uuid.UUID) (token string, tokenID string, err error)
	GetRefreshClaims(ctx context.Context, token string) (*jwt.RefreshClaims, error)
}

// RefreshTokenStore records live refresh token ids.
type RefreshTokenStore interface {
	Save(ctx context.Context, tokenID string, playerID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (uuid.UUID, bool, error)
	Delete(ctx context.Context, tokenID string) (bool, error)
}

// AuthService handles registration, login, token refresh and profile management.
type AuthService struct {
	tx         Transactor
	reader     PlayerReader
	writer     PlayerWriter
	hasher     PasswordHasher
	tokens     TokenIssuer
	store      RefreshTokenStore
	refreshTTL time.Duration
}

// NewAuthService creates a new AuthService instance.
// refreshTTL is how long an issued refresh token stays recorded in the store.
func NewAuthService(
	tx Transactor,
	reader PlayerReader,
	writer PlayerWriter,
	hasher PasswordHasher,
	tokens TokenIssuer,
	store RefreshTokenStore,
	refreshTTL time.Duration,
) *AuthService {
	return &AuthService{
		tx:         tx,
		reader:     reader,
		writer:     writer,
		hasher:     hasher,
		tokens:     tokens,
		store:      store,
		refreshTTL: refreshTTL,
	}
}

// Register creates a player and issues a token pair.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.AuthResult, error) {
	var player *models.PlayerDB

	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			logger.FromContext(ctx).Infow("player already exists", "email", email)
			return apperr.Wrap(apperr.Conflict, ErrPlayerAlreadyExists)
		}

		hash, err := svc.hasher.Hash(password)
		if err != nil {
			return err
		}

		player, err = svc.writer.Create(ctx, name, email, hash)
		if errors.Is(err, repositories.ErrEmailTaken) {
			return apperr.Wrap(apperr.Conflict, ErrPlayerAlreadyExists)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow("player registered", "player_id", player.PlayerID)
	return svc.issueTokens(ctx, player)
}

// Login verifies the credentials and issues a token pair. Unknown email and wrong
// password fail with the same error.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	player, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if player == nil {
		logger.FromContext(ctx).Infow("login failed", "reason", "unknown email")
		return nil, apperr.Wrap(apperr.Unauthorized, ErrInvalidCredentials)
	}

	if err := svc.hasher.Compare(player.PasswordHash, password); err != nil {
		logger.FromContext(ctx).Infow("login failed", "reason", "password mismatch", "player_id", player.PlayerID)
		return nil, apperr.Wrap(apperr.Unauthorized, ErrInvalidCredentials)
	}

	return svc.issueTokens(ctx, player)
}

// Logout revokes the refresh token. Tokens that do not parse or were already
// revoked are accepted silently.
func (svc *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := svc.tokens.GetRefreshClaims(ctx, refreshToken)
	if err != nil {
		logger.FromContext(ctx).Debugw("logout with unusable refresh token", "error", err)
		return nil
	}

	if _, err := svc.store.Delete(ctx, claims.ID); err != nil {
		return err
	}
	return nil
}

// Refresh rotates the refresh token: the old token id is revoked and a new pair is issued.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error) {
	if refreshToken == "" {
		return nil, apperr.Wrap(apperr.Unauthorized, jwt.ErrTokenMissing)
	}

	claims, err := svc.tokens.GetRefreshClaims(ctx, refreshToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, err)
	}
	playerID, err := claims.PlayerID()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, ErrRefreshTokenInvalid)
	}

	owner, ok, err := svc.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !ok || owner != playerID {
		logger.FromContext(ctx).Infow("refresh with revoked token", "player_id", playerID)
		return nil, apperr.Wrap(apperr.Unauthorized, ErrRefreshTokenRevoked)
	}

	// A concurrent refresh may have consumed the token id first.
	deleted, err := svc.store.Delete(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperr.Wrap(apperr.Unauthorized, ErrRefreshTokenRevoked)
	}

	player, err := svc.reader.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, apperr.Wrap(apperr.Unauthorized, ErrPlayerNotFound)
	}

	return svc.issueTokens(ctx, player)
}

// GetCurrentUser returns the player with the given id.
func (svc *AuthService) GetCurrentUser(ctx context.Context, playerID uuid.UUID) (*models.PlayerDB, error) {
	player, err := svc.reader.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, apperr.Wrap(apperr.NotFound, ErrPlayerNotFound)
	}
	return player, nil
}

// UpdateProfile applies the patch to the player. A new password is re-hashed.
func (svc *AuthService) UpdateProfile(ctx context.Context, playerID uuid.UUID, patch models.PlayerPatch) (*models.PlayerDB, error) {
	var updated *models.PlayerDB

	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		player, err := svc.reader.GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return apperr.Wrap(apperr.NotFound, ErrPlayerNotFound)
		}

		if patch.Email != nil && *patch.Email != player.Email {
			other, err := svc.reader.GetByEmail(ctx, *patch.Email)
			if err != nil {
				return err
			}
			if other != nil {
				return apperr.Wrap(apperr.Conflict, ErrPlayerAlreadyExists)
			}
			player.Email = *patch.Email
		}
		if patch.Name != nil {
			player.Name = *patch.Name
		}
		if patch.Password != nil {
			hash, err := svc.hasher.Hash(*patch.Password)
			if err != nil {
				return err
			}
			player.PasswordHash = hash
		}

		updated, err = svc.writer.Update(ctx, player)
		switch {
		case errors.Is(err, repositories.ErrEmailTaken):
			return apperr.Wrap(apperr.Conflict, ErrPlayerAlreadyExists)
		case err != nil:
			return err
		case updated == nil:
			return apperr.Wrap(apperr.NotFound, ErrPlayerNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (svc *AuthService) issueTokens(ctx context.Context, player *models.PlayerDB) (*models.AuthResult, error) {
	accessToken, err := svc.tokens.GenerateAccessToken(ctx, player.PlayerID, player.Email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate access token", "error", err)
		return nil, err
	}

	refreshToken, tokenID, err := svc.tokens.GenerateRefreshToken(ctx, player.PlayerID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate refresh token", "error", err)
		return nil, err
	}

	if err := svc.store.Save(ctx, tokenID, player.PlayerID, svc.refreshTTL); err != nil {
		return nil, err
	}

	return &models.AuthResult{
		Player:       player,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
