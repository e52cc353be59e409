package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBuilder(t *testing.T) {
	message, err := NewMessageBuilder("sign_agreement", 4).
		WithAccount("tenant1").
		WithTimestamp(1700000000000).
		Build()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal([]byte(message), &event))
	assert.Equal(t, Event{Event: "sign_agreement", RoomID: 4, Account: "tenant1", Timestamp: 1700000000000}, event)

	message, err = NewMessageBuilder("add_room", 0).Build()
	require.NoError(t, err)
	assert.NotContains(t, message, "account")
}

func TestRedisService(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	sub := rdb.Subscribe(ctx, "hotel:events")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	svc := NewRedisService(rdb, "hotel:events")
	require.NoError(t, svc.SendMessage(`{"event":"add_room"}`))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"event":"add_room"}`, msg.Payload)

	assert.Error(t, NewRedisService(nil, "x").SendMessage("m"))
}

type stubService struct {
	sent []string
	err  error
}

func (s *stubService) SendMessage(message string) error {
	s.sent = append(s.sent, message)
	return s.err
}

func TestMultiService(t *testing.T) {
	ok := &stubService{}
	failing := &stubService{err: errors.New("boom")}

	err := MultiService{failing, ok}.SendMessage("hello")
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []string{"hello"}, ok.sent)
	assert.Equal(t, []string{"hello"}, failing.sent)

	assert.NoError(t, MultiService{ok}.SendMessage("again"))
	assert.NoError(t, MultiService{}.SendMessage("none"))
	assert.NoError(t, NopService{}.SendMessage("ignored"))
}

func TestMelodyService_Nil(t *testing.T) {
	assert.Error(t, NewMelodyService(nil).SendMessage("m"))
}
