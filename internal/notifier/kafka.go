package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/cinemahub/cinemahub-api/internal/logger"
)

// Event keys consumed by the external mail service.
const (
	eventVerifyEmail   = "user.verify_email"
	eventResetPassword = "user.reset_password"
)

// KafkaNotifier publishes delivery events for an external mail
// service instead of sending mail itself.
type KafkaNotifier struct {
	writer *kafka.Writer
}

// NewKafkaNotifier creates a notifier publishing to the given broker/topic.
func NewKafkaNotifier(broker, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 10 * time.Second,
		},
	}
}

type otpEvent struct {
	Email     string    `json:"email"`
	OTP       int       `json:"otp"`
	ExpiresAt time.Time `json:"expires_at"`
}

type resetEvent struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// SendOTP publishes a verify-email event.
func (n *KafkaNotifier) SendOTP(ctx context.Context, email string, code int) error {
	return n.publish(ctx, eventVerifyEmail, otpEvent{
		Email:     email,
		OTP:       code,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	})
}

// SendResetLink publishes a reset-password event.
func (n *KafkaNotifier) SendResetLink(ctx context.Context, email, link string) error {
	return n.publish(ctx, eventResetPassword, resetEvent{Email: email, Link: link})
}

func (n *KafkaNotifier) publish(ctx context.Context, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return err
	}

	logger.Log.Infow("notification event published", "key", key)
	return nil
}

// Close flushes and closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
