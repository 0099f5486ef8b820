package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const metaKeyTopic = "topic"

// Bus implements Publisher and Subscriber over watermill's in-memory GoChannel.
type Bus struct {
	channel *gochannel.GoChannel
	log     *slog.Logger
}

// NewBus creates an in-memory bus logging through log.
func NewBus(log *slog.Logger) *Bus {
	channel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(log),
	)
	return &Bus{channel: channel, log: log}
}

func toWatermill(msg Message) *message.Message {
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wm.Metadata.Set(k, v)
	}
	wm.Metadata.Set(metaKeyTopic, msg.Topic)
	return wm
}

func fromWatermill(wm *message.Message) Message {
	metadata := make(map[string]string, len(wm.Metadata))
	for k, v := range wm.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    wm.Metadata.Get(metaKeyTopic),
		Payload:  wm.Payload,
		Metadata: metadata,
	}
}

// Publish implements Publisher. Messages published before anyone subscribes are dropped.
func (b *Bus) Publish(ctx context.Context, msg Message) error {
	return b.channel.Publish(msg.Topic, toWatermill(msg))
}

// Subscribe implements Subscriber. A message whose handler fails is logged and
// dropped; GoChannel would redeliver a nacked message forever.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wm := range messages {
			if err := handler(ctx, fromWatermill(wm)); err != nil {
				b.log.Error("failed to handle message", "topic", topic, "msg_id", wm.UUID, "error", err)
			}
			wm.Ack()
		}
		b.log.Debug("subscription ended", "topic", topic)
	}()

	return nil
}

// Close implements Publisher and Subscriber.
func (b *Bus) Close() error {
	return b.channel.Close()
}
