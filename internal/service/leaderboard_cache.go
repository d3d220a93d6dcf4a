package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const leaderboardKeyPrefix = "room:leaderboard:"

// LeaderboardEntry 排行榜单行，按积分降序、加入时间升序排名
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID uint   `json:"playerId"`
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}

// LeaderboardCache 排行榜的 Redis 旁路缓存，积分变更时失效，读取时回源重建
type LeaderboardCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewLeaderboardCache(rdb *redis.Client, ttlSeconds int) *LeaderboardCache {
	return &LeaderboardCache{
		Redis: rdb,
		TTL:   time.Duration(ttlSeconds) * time.Second,
	}
}

func leaderboardKey(roomID uint) string {
	return fmt.Sprintf("%s%d", leaderboardKeyPrefix, roomID)
}

// Get 命中时返回缓存的排行榜，未命中返回 (nil, nil)
func (c *LeaderboardCache) Get(ctx context.Context, roomID uint) ([]LeaderboardEntry, error) {
	val, err := c.Redis.Get(ctx, leaderboardKey(roomID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, roomID uint, entries []LeaderboardEntry) error {
	val, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, leaderboardKey(roomID), val, c.TTL).Err()
}

// Invalidate 积分写入后删除缓存，调用方按尽力而为处理错误
func (c *LeaderboardCache) Invalidate(ctx context.Context, roomID uint) error {
	return c.Redis.Del(ctx, leaderboardKey(roomID)).Err()
}
