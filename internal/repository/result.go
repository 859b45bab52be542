package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/marblesolitaire/internal/apperror"
	"github.com/rocketscienceinc/marblesolitaire/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	recentKey       = "results:recent"
)

var ErrResultNotFound = fmt.Errorf("result %w", apperror.ErrNotFound)

type ResultRepository interface {
	Create(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Result, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbResult struct {
	client     *redis.Client
	recentSize int64
}

// NewResultRepository - stores results as JSON under "result:<id>" and keeps the
// latest recentSize ids in a list, newest first.
func NewResultRepository(client *redis.Client, recentSize int) ResultRepository {
	return &dbResult{
		client:     client,
		recentSize: int64(recentSize),
	}
}

func (that *dbResult) Create(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.LPush(ctx, recentKey, result.ID)
		pipe.LTrim(ctx, recentKey, 0, that.recentSize-1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("failed to get result by id: %w", err)
	}

	var existingResult entity.Result
	if err = json.Unmarshal([]byte(response), &existingResult); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &existingResult, nil
}

// ListRecent - returns up to limit results, newest first. Ids whose record has
// been deleted are skipped.
func (that *dbResult) ListRecent(ctx context.Context, limit int) ([]*entity.Result, error) {
	if limit <= 0 {
		return []*entity.Result{}, nil
	}

	ids, err := that.client.LRange(ctx, recentKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}

	results := make([]*entity.Result, 0, len(ids))
	for _, id := range ids {
		result, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrResultNotFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

func (that *dbResult) DeleteByID(ctx context.Context, id string) error {
	var deleted *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, resultKeyPrefix+id)
		pipe.LRem(ctx, recentKey, 0, id)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete result by id: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrResultNotFound
	}

	return nil
}
