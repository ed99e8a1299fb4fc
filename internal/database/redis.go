package database

import (
	"context"
	"fmt"
	"time"

	"go-event-management/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis 建立 redis 連線，目前僅供登入限流計數使用。
// 啟動時 ping 一次確認可用，之後限流 middleware 遇到錯誤會放行。
func InitRedis(config *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password:     config.Password,
		DB:           config.DB,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
