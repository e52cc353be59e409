package services

import (
	"context"
	"time"

	"roombook/constants"
	"roombook/models"

	"github.com/redis/go-redis/v9"
)

// RoomCache lưu danh sách phòng để đọc nhanh
type RoomCache interface {
	Get(ctx context.Context, key string) ([]models.Room, bool)
	Set(ctx context.Context, key string, rooms []models.Room)
	// Invalidate xóa danh sách đã lưu; lỗi phải được trả về để thao tác ghi bị hủy
	Invalidate(ctx context.Context) error
}

// RedisRoomCache lưu danh sách phòng dạng JSON trên Redis
type RedisRoomCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRoomCache(rdb *redis.Client, ttl time.Duration) *RedisRoomCache {
	return &RedisRoomCache{rdb: rdb, ttl: ttl}
}

func (c *RedisRoomCache) Get(ctx context.Context, key string) ([]models.Room, bool) {
	var rooms []models.Room
	found, err := GetFromRedis(ctx, c.rdb, key, &rooms)
	if err != nil || !found {
		return nil, false
	}
	if rooms == nil {
		rooms = make([]models.Room, 0)
	}
	return rooms, true
}

func (c *RedisRoomCache) Set(ctx context.Context, key string, rooms []models.Room) {
	_ = SetToRedis(ctx, c.rdb, key, rooms, c.ttl)
}

func (c *RedisRoomCache) Invalidate(ctx context.Context) error {
	return DeleteFromRedis(ctx, c.rdb, constants.CacheKeyRoomsAll, constants.CacheKeyRoomsAvailable)
}

// noRoomCache dùng khi không cấu hình Redis
type noRoomCache struct{}

func (noRoomCache) Get(context.Context, string) ([]models.Room, bool) { return nil, false }
func (noRoomCache) Set(context.Context, string, []models.Room)        {}
func (noRoomCache) Invalidate(context.Context) error                  { return nil }
