package services

//go:generate mockgen -source=membership.go -destination=membership_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/apperr"
	"github.com/sbilibin2017/gw-game-roster/internal/logger"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// GameReader defines read-only operations for games.
type GameReader interface {
	GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error)
	List(ctx context.Context) ([]models.GameDB, error)
}

// MembershipReader defines read-only operations for game memberships.
type MembershipReader interface {
	Get(ctx context.Context, gameID, playerID uuid.UUID) (*models.MembershipDB, error)
	Roster(ctx context.Context, gameID uuid.UUID) ([]models.RosterEntry, error)
}

// MembershipWriter defines write operations for game memberships.
type MembershipWriter interface {
	Create(ctx context.Context, gameID, playerID uuid.UUID) (*models.MembershipDB, error)
	UpdateStatus(ctx context.Context, gameID, playerID uuid.UUID, status models.Status) (*models.MembershipDB, error)
	DeleteByGame(ctx context.Context, gameID uuid.UUID) (int64, error)
}

// MembershipService manages which players take part in which game and their status.
type MembershipService struct {
	tx            Transactor
	games         GameReader
	playerReader  PlayerReader
	playerWriter  PlayerWriter
	hasher        PasswordHasher
	membersReader MembershipReader
	membersWriter MembershipWriter
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(
	tx Transactor,
	games GameReader,
	playerReader PlayerReader,
	playerWriter PlayerWriter,
	hasher PasswordHasher,
	membersReader MembershipReader,
	membersWriter MembershipWriter,
) *MembershipService {
	return &MembershipService{
		tx:            tx,
		games:         games,
		playerReader:  playerReader,
		playerWriter:  playerWriter,
		hasher:        hasher,
		membersReader: membersReader,
		membersWriter: membersWriter,
	}
}

// AddPlayer invites the identified player to the game.
func (svc *MembershipService) AddPlayer(ctx context.Context, gameID uuid.UUID, identity models.PlayerIdentity) (*models.Membership, error) {
	var membership *models.Membership

	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.requireGame(ctx, gameID); err != nil {
			return err
		}

		var err error
		membership, err = svc.add(ctx, gameID, identity)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow("player added to game", "game_id", gameID, "player_id", membership.PlayerID)
	return membership, nil
}

// AddMultiplePlayers invites every identified player to the game. Entries fail
// independently; the call fails only when none of them succeeded, in which case
// nothing is persisted.
func (svc *MembershipService) AddMultiplePlayers(ctx context.Context, gameID uuid.UUID, identities []models.PlayerIdentity) (*models.BatchResult, error) {
	result := &models.BatchResult{}

	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.requireGame(ctx, gameID); err != nil {
			return err
		}

		for i, identity := range identities {
			membership, err := svc.add(ctx, gameID, identity)
			if err != nil {
				code := apperr.CodeOf(err)
				if code == apperr.Internal {
					return err
				}
				result.Failed = append(result.Failed, models.BatchFailure{
					Index:   i,
					Player:  identity.Key(),
					Message: batchMessage(identity, err),
				})
				continue
			}
			result.Succeeded = append(result.Succeeded, *membership)
		}

		if len(result.Succeeded) == 0 {
			messages := make([]string, 0, len(result.Failed))
			for _, f := range result.Failed {
				messages = append(messages, f.Message)
			}
			return apperr.WrapDetails(apperr.BadRequest,
				fmt.Errorf("%w: %s", ErrAddPlayersFailed, strings.Join(messages, ", ")),
				result.Failed,
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow("players added to game",
		"game_id", gameID,
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
	)
	return result, nil
}

// UpdateStatus sets the status of the player in the game.
func (svc *MembershipService) UpdateStatus(ctx context.Context, gameID, playerID uuid.UUID, status models.Status) (*models.Membership, error) {
	if !status.Valid() {
		return nil, apperr.Wrap(apperr.BadRequest, ErrInvalidStatus)
	}
	if err := svc.requireGame(ctx, gameID); err != nil {
		return nil, err
	}

	player, err := svc.playerReader.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, apperr.Wrap(apperr.NotFound, ErrPlayerNotFound)
	}

	m, err := svc.membersWriter.UpdateStatus(ctx, gameID, playerID, status)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.Wrap(apperr.NotFound, ErrMembershipNotFound)
	}

	logger.FromContext(ctx).Infow("player status updated", "game_id", gameID, "player_id", playerID, "status", status)
	return &models.Membership{MembershipDB: *m, Player: *player}, nil
}

// GetMembership returns the membership of the player in the game.
func (svc *MembershipService) GetMembership(ctx context.Context, gameID, playerID uuid.UUID) (*models.Membership, error) {
	m, err := svc.membersReader.Get(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.Wrap(apperr.NotFound, ErrMembershipNotFound)
	}

	player, err := svc.playerReader.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, apperr.Wrap(apperr.NotFound, ErrPlayerNotFound)
	}
	return &models.Membership{MembershipDB: *m, Player: *player}, nil
}

// RemoveAllForGame deletes every membership of the game.
func (svc *MembershipService) RemoveAllForGame(ctx context.Context, gameID uuid.UUID) (int64, error) {
	return svc.membersWriter.DeleteByGame(ctx, gameID)
}

// Roster returns the players of the game with their status.
func (svc *MembershipService) Roster(ctx context.Context, gameID uuid.UUID) ([]models.RosterEntry, error) {
	return svc.membersReader.Roster(ctx, gameID)
}

func (svc *MembershipService) requireGame(ctx context.Context, gameID uuid.UUID) error {
	game, err := svc.games.GetByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return apperr.Wrap(apperr.NotFound, ErrGameNotFound)
	}
	return nil
}

func (svc *MembershipService) add(ctx context.Context, gameID uuid.UUID, identity models.PlayerIdentity) (*models.Membership, error) {
	player, err := svc.resolvePlayer(ctx, identity)
	if err != nil {
		return nil, err
	}

	m, err := svc.membersWriter.Create(ctx, gameID, player.PlayerID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.Wrap(apperr.Conflict, ErrAlreadyInGame)
	}
	return &models.Membership{MembershipDB: *m, Player: *player}, nil
}

// resolvePlayer finds the player by id, or by email creating it when absent.
func (svc *MembershipService) resolvePlayer(ctx context.Context, identity models.PlayerIdentity) (*models.PlayerDB, error) {
	if identity.PlayerID != nil {
		player, err := svc.playerReader.GetByID(ctx, *identity.PlayerID)
		if err != nil {
			return nil, err
		}
		if player == nil {
			return nil, apperr.Wrap(apperr.NotFound, ErrPlayerNotFound)
		}
		return player, nil
	}

	if identity.Email == "" {
		return nil, apperr.Wrap(apperr.BadRequest, ErrEmptyPlayerIdentity)
	}

	player, err := svc.playerReader.GetByEmail(ctx, identity.Email)
	if err != nil || player != nil {
		return player, err
	}

	hash, err := svc.hasher.Hash(identity.Password)
	if err != nil {
		return nil, err
	}

	player, err = svc.playerWriter.CreateIfNotExists(ctx, identity.Name, identity.Email, hash)
	if err != nil {
		return nil, err
	}
	if player == nil {
		// Created concurrently by another request.
		player, err = svc.playerReader.GetByEmail(ctx, identity.Email)
		if err != nil {
			return nil, err
		}
		if player == nil {
			return nil, apperr.Wrap(apperr.NotFound, ErrPlayerNotFound)
		}
	}

	logger.FromContext(ctx).Infow("player created", "player_id", player.PlayerID)
	return player, nil
}

func batchMessage(identity models.PlayerIdentity, err error) string {
	switch {
	case apperr.Is(err, apperr.NotFound) && identity.PlayerID != nil:
		return fmt.Sprintf("Player with ID %s does not exist", identity.PlayerID)
	case apperr.Is(err, apperr.Conflict):
		return fmt.Sprintf("Player %s already exists in this game", identity.Key())
	default:
		return fmt.Sprintf("Failed to add player %s: %v", identity.Key(), err)
	}
}
