package database

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"pintureria-backend/logger"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

var redisCtx = context.Background()

func GetRedis() *redis.Client {
	return rdb
}

func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := rdb.Ping(redisCtx).Err(); err != nil {
		logger.Get().WithError(err).Warn("redis unavailable, cart and report cache disabled")
		rdb = nil
	}
}

// GetRedisObject unmarshals the value at key into dest. The bool reports
// whether the key existed. A nil client reads as a miss.
func GetRedisObject(key string, dest interface{}) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	val, err := rdb.Get(redisCtx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func SetRedisObject(key string, obj interface{}, exp time.Duration) error {
	if rdb == nil {
		return nil
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return rdb.Set(redisCtx, key, raw, exp).Err()
}

func DeleteRedisKey(key string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(redisCtx, key).Err()
}
