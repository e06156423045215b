package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/cycles-bot/internal/entity"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchRepository stores the decision trace of played games.
type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

func (that *dbMatch) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	matchKey := "match:" + match.ID
	if err = that.client.Set(ctx, matchKey, matchJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	matchKey := "match:" + id

	response, err := that.client.Get(ctx, matchKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Match{}, ErrMatchNotFound
	}

	if err != nil {
		return &entity.Match{}, fmt.Errorf("failed to get match: %w", err)
	}

	var existingMatch entity.Match
	if err = json.Unmarshal([]byte(response), &existingMatch); err != nil {
		return &entity.Match{}, fmt.Errorf("could not unmarshal match: %w", err)
	}

	return &existingMatch, nil
}

// noopMatch is used when no redis storage is configured: the bot still
// plays, it just keeps no trace.
type noopMatch struct{}

func NewNoopMatchRepository() MatchRepository {
	return &noopMatch{}
}

func (noopMatch) CreateOrUpdate(_ context.Context, _ *entity.Match) error {
	return nil
}

func (noopMatch) GetByID(_ context.Context, _ string) (*entity.Match, error) {
	return &entity.Match{}, ErrMatchNotFound
}
