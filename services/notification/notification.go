package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"

	"roombook/types"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService phát sự kiện tới mọi websocket đang kết nối
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// RedisService publish sự kiện lên một channel Redis
type RedisService struct {
	rdb     *redis.Client
	channel string
}

func NewRedisService(rdb *redis.Client, channel string) *RedisService {
	return &RedisService{rdb: rdb, channel: channel}
}

func (s *RedisService) SendMessage(message string) error {
	if s.rdb == nil {
		return fmt.Errorf("redis client is nil")
	}
	return s.rdb.Publish(context.Background(), s.channel, message).Err()
}

// MultiService gửi tới tất cả các service con, lỗi được gộp lại
type MultiService []Service

func (s MultiService) SendMessage(message string) error {
	var errs []error
	for _, svc := range s {
		if err := svc.SendMessage(message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NopService bỏ qua mọi sự kiện
type NopService struct{}

func (NopService) SendMessage(string) error { return nil }

// Event là payload gửi ra ngoài
type Event struct {
	Event     string          `json:"event"`
	RoomID    uint64          `json:"roomId"`
	Account   types.AccountID `json:"account,omitempty"`
	Timestamp uint64          `json:"timestamp"`
}

type MessageBuilder struct {
	event Event
}

func NewMessageBuilder(name string, roomID uint64) *MessageBuilder {
	return &MessageBuilder{
		event: Event{Event: name, RoomID: roomID},
	}
}

func (b *MessageBuilder) WithAccount(account types.AccountID) *MessageBuilder {
	b.event.Account = account
	return b
}

func (b *MessageBuilder) WithTimestamp(ts uint64) *MessageBuilder {
	b.event.Timestamp = ts
	return b
}

func (b *MessageBuilder) Build() (string, error) {
	data, err := json.Marshal(b.event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
