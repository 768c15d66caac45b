package consumers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader serves queued messages, then blocks until the context ends
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	fetchErrs []error
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.fetchErrs) > 0 {
		err := r.fetchErrs[0]
		r.fetchErrs = r.fetchErrs[1:]
		r.mu.Unlock()
		return kafka.Message{}, err
	}
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func (r *fakeReader) committedKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.committed))
	for _, m := range r.committed {
		keys = append(keys, string(m.Key))
	}
	return keys
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewKafkaConsumer(t *testing.T) {
	cfg := &config.KafkaConfig{
		Brokers:       "localhost:9092",
		StockTopic:    "test-topic",
		ConsumerGroup: "test-group",
		MinBytes:      1024,
		MaxBytes:      10240,
		MaxWait:       time.Second,
	}

	consumer := NewKafkaConsumer(context.Background(), discardLogger(), cfg)
	require.NotNil(t, consumer)
	require.NotNil(t, consumer.reader)
	assert.NoError(t, consumer.Close())
}

func TestKafkaConsumer_Subscribe(t *testing.T) {
	t.Run("CommitsOnlyHandledMessages", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{
			{Key: []byte("ok-1"), Value: []byte("{}")},
			{Key: []byte("fail"), Value: []byte("{}")},
			{Key: []byte("ok-2"), Value: []byte("{}")},
		}}
		consumer := NewKafkaConsumerWithReader(discardLogger(), reader)

		var mu sync.Mutex
		var handled []string
		handler := func(_ context.Context, key, _ []byte) error {
			mu.Lock()
			handled = append(handled, string(key))
			mu.Unlock()
			if string(key) == "fail" {
				return errors.New("handler failed")
			}
			return nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, consumer.Subscribe(ctx, "stock_updates", "group", handler))

		assert.Eventually(t, func() bool { return len(reader.committedKeys()) == 2 }, time.Second, 5*time.Millisecond)
		cancel()
		consumer.Wait()

		assert.Equal(t, []string{"ok-1", "ok-2"}, reader.committedKeys())
		mu.Lock()
		assert.Equal(t, []string{"ok-1", "fail", "ok-2"}, handled)
		mu.Unlock()
	})

	t.Run("RetriesAfterFetchError", func(t *testing.T) {
		reader := &fakeReader{
			fetchErrs: []error{errors.New("broker unavailable")},
			messages:  []kafka.Message{{Key: []byte("after-retry")}},
		}
		consumer := NewKafkaConsumerWithReader(discardLogger(), reader)
		consumer.retryBackoff = time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, consumer.Subscribe(ctx, "stock_updates", "group", func(context.Context, []byte, []byte) error { return nil }))

		assert.Eventually(t, func() bool { return len(reader.committedKeys()) == 1 }, time.Second, 5*time.Millisecond)
		cancel()
		consumer.Wait()
	})
}

func TestKafkaConsumer_Close(t *testing.T) {
	t.Run("CloseWithNilReader", func(t *testing.T) {
		consumer := &KafkaConsumer{logger: discardLogger()}
		require.NoError(t, consumer.Close())
	})

	t.Run("ClosesReader", func(t *testing.T) {
		reader := &fakeReader{}
		consumer := NewKafkaConsumerWithReader(discardLogger(), reader)
		require.NoError(t, consumer.Close())
		assert.True(t, reader.closed)
	})
}
