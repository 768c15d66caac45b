package producers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStockUpdateProducer_Publish(t *testing.T) {
	ctx := context.Background()
	topic := "test-stock-updates"

	t.Run("SuccessfulPublish", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		producer := NewStockUpdateProducerWithWriter(discardLogger(), mockWriter, topic)

		update := &shared.StockUpdate{
			SaleID:    uuid.New(),
			Lines:     []shared.StockLine{{ItemID: "abc123", Quantity: 3}},
			Timestamp: time.Now().UTC(),
		}
		key := update.SaleID.String()

		mockWriter.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
			if len(msgs) != 1 || string(msgs[0].Key) != key {
				return false
			}
			var decoded shared.StockUpdate
			if err := json.Unmarshal(msgs[0].Value, &decoded); err != nil {
				return false
			}
			return decoded.SaleID == update.SaleID && len(decoded.Lines) == 1 && decoded.Lines[0].Quantity == 3
		})).Return(nil).Once()

		require.NoError(t, producer.Publish(ctx, key, update))
		mockWriter.AssertExpectations(t)
	})

	t.Run("WriterError", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		producer := NewStockUpdateProducerWithWriter(discardLogger(), mockWriter, topic)
		writerError := errors.New("kafka write error")

		mockWriter.On("WriteMessages", ctx, mock.AnythingOfType("[]kafka.Message")).Return(writerError).Once()

		err := producer.Publish(ctx, "key", map[string]string{"data": "x"})
		assert.ErrorIs(t, err, writerError)
		mockWriter.AssertExpectations(t)
	})

	t.Run("UnmarshalableValue", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		producer := NewStockUpdateProducerWithWriter(discardLogger(), mockWriter, topic)

		err := producer.Publish(ctx, "key", make(chan int))
		assert.ErrorContains(t, err, "failed to marshal stock update")
		mockWriter.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})
}

func TestStockUpdateProducer_Close(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	producer := NewStockUpdateProducerWithWriter(discardLogger(), mockWriter, "topic")
	closeError := errors.New("kafka close error")

	mockWriter.On("Close").Return(closeError).Once()

	err := producer.Close()
	assert.ErrorIs(t, err, closeError)
	mockWriter.AssertExpectations(t)
}

func TestEnsureTopic(t *testing.T) {
	t.Run("ExistingTopic", func(t *testing.T) {
		admin := new(mockTopicAdmin)
		admin.On("ReadPartitions", []string{"stock_updates"}).Return([]kafka.Partition{{Topic: "stock_updates", ID: 0}}, nil).Once()

		err := ensureTopic(admin, "stock_updates", 3, 1, time.Millisecond, discardLogger())
		require.NoError(t, err)
		admin.AssertNotCalled(t, "CreateTopics", mock.Anything)
		admin.AssertExpectations(t)
	})

	t.Run("CreatesMissingTopicWithDefaults", func(t *testing.T) {
		admin := new(mockTopicAdmin)
		admin.On("ReadPartitions", []string{"stock_updates"}).Return(nil, errors.New("unknown topic")).Times(topicReadAttempts)
		admin.On("CreateTopics", []kafka.TopicConfig{{Topic: "stock_updates", NumPartitions: 1, ReplicationFactor: 1}}).Return(nil).Once()

		err := ensureTopic(admin, "stock_updates", 0, 0, time.Millisecond, discardLogger())
		require.NoError(t, err)
		admin.AssertExpectations(t)
	})

	t.Run("CreateFailure", func(t *testing.T) {
		admin := new(mockTopicAdmin)
		admin.On("ReadPartitions", []string{"stock_updates"}).Return([]kafka.Partition{}, nil).Once()
		admin.On("CreateTopics", mock.Anything).Return(errors.New("not authorized")).Once()

		err := ensureTopic(admin, "stock_updates", 1, 1, time.Millisecond, discardLogger())
		assert.ErrorContains(t, err, "failed to create kafka topic stock_updates")
	})
}
