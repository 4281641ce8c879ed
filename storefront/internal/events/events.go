package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Kind string

const (
	KindLogin       Kind = "login"
	KindLogout      Kind = "logout"
	KindRegister    Kind = "register"
	KindCartAdd     Kind = "cart_add"
	KindCartUpdate  Kind = "cart_update"
	KindReviewAdd   Kind = "review_add"
	KindAdminCreate Kind = "admin_create"
	KindAdminUpdate Kind = "admin_update"
	KindAdminDelete Kind = "admin_delete"
)

// Event is an audit record of something a user did through the storefront.
type Event struct {
	ID     string    `json:"id"`
	Kind   Kind      `json:"kind"`
	Login  string    `json:"login"`
	Target string    `json:"target,omitempty"`
	Time   time.Time `json:"time"`
}

func New(kind Kind, login, target string) Event {
	return Event{
		ID:     uuid.NewString(),
		Kind:   kind,
		Login:  login,
		Target: target,
		Time:   time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

type Kafka struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
}

func NewKafka(producer sarama.AsyncProducer, topic string, log *zap.Logger) *Kafka {
	return &Kafka{
		producer: producer,
		topic:    topic,
		log:      log.Named("events"),
	}
}

func (k *Kafka) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(ev.Login),
		Value: sarama.ByteEncoder(data),
	}
	select {
	case k.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run logs delivery errors until ctx is done or the producer is closed.
func (k *Kafka) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case perr, ok := <-k.producer.Errors():
			if !ok {
				return nil
			}
			k.log.Error("deliver event", zap.String("topic", perr.Msg.Topic), zap.Error(perr.Err))
		}
	}
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}
