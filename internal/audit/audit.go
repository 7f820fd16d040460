package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Entry describes one successful mutating API request.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Method    string    `json:"method"`
	Route     string    `json:"route"`
	Actor     string    `json:"actor,omitempty"`
	Status    int       `json:"status"`
	EntityID  string    `json:"entity_id,omitempty"`
}

// MessageWriter is the subset of *kafka.Writer the log needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Log writes every entry to zap and, when a writer is configured, to Kafka.
type Log struct {
	logger *zap.Logger
	writer MessageWriter
}

func NewLog(logger *zap.Logger, writer MessageWriter) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger, writer: writer}
}

// NewKafkaWriter returns nil when no brokers are configured.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		Async:                  true,
		AllowAutoTopicCreation: true,
	}
}

func (l *Log) Record(ctx context.Context, entry Entry) {
	l.logger.Info("audit",
		zap.String("request_id", entry.RequestID),
		zap.String("method", entry.Method),
		zap.String("route", entry.Route),
		zap.String("actor", entry.Actor),
		zap.Int("status", entry.Status),
		zap.String("entity_id", entry.EntityID),
	)
	if l.writer == nil {
		return
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		l.logger.Error("audit encode failed", zap.Error(err))
		return
	}
	msg := kafka.Message{Key: []byte(entry.Actor), Value: payload, Time: entry.Timestamp}
	if err := l.writer.WriteMessages(ctx, msg); err != nil {
		l.logger.Warn("audit publish failed", zap.Error(err))
	}
}

func (l *Log) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}
