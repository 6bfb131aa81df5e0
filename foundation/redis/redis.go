package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Redis struct {
	Client         *redis.Client
	Logger         *zap.SugaredLogger
	SessionChannel string
}

func New(host, password, sessionChannel string, logger *zap.SugaredLogger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     host,
		Password: password,
	})

	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Redis{
		Client:         client,
		Logger:         logger,
		SessionChannel: sessionChannel,
	}, nil
}

// Publish sends one session record to the session channel.
func (r *Redis) Publish(ctx context.Context, record any) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := r.Client.Publish(ctx, r.SessionChannel, jsonData).Err(); err != nil {
		return err
	}

	r.Logger.Infow("redis: Publish", "channel", r.SessionChannel, "record", record)

	return nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
