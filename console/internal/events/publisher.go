package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Astemirdum/room-booking/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Outcome string

const (
	Approved Outcome = "approved"
	Rejected Outcome = "rejected"
)

// Decision is emitted once the backend accepted an approve or reject.
type Decision struct {
	RequestID int       `json:"requestId"`
	Outcome   Outcome   `json:"outcome"`
	RoomID    int       `json:"roomId,omitempty"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	At        time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, d Decision) error
}

type Noop struct{}

func (Noop) Publish(context.Context, Decision) error { return nil }

type kafkaPublisher struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
	done     chan struct{}
}

// NewKafkaPublisher sends decisions keyed by request id. Delivery errors are logged.
func NewKafkaPublisher(producer sarama.AsyncProducer, topic string, log *zap.Logger) *kafkaPublisher {
	if topic == "" {
		topic = kafka.DecisionsTopic
	}
	p := &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("decisions"),
		done:     make(chan struct{}),
	}
	go p.drainErrors()
	return p
}

func (p *kafkaPublisher) Publish(ctx context.Context, d Decision) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(d.RequestID)),
		Value: sarama.ByteEncoder(data),
	}
	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *kafkaPublisher) drainErrors() {
	defer close(p.done)
	for perr := range p.producer.Errors() {
		p.log.Error("publish decision", zap.String("topic", perr.Msg.Topic), zap.Error(perr.Err))
	}
}

func (p *kafkaPublisher) Close() error {
	err := p.producer.Close()
	<-p.done
	return err
}
