package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"

	"github.com/skydevhost/skyshop-gateway/internal/config"
	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/service"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req entities.OrderRequest) (*service.PlaceResult, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	placer   OrderPlacer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, placer OrderPlacer) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		placer:   placer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handlePlaceOrder(ctx, m); err != nil {
			messagesFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// В writer'е уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			messagesDLQ.Inc()
		} else {
			messagesProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePlaceOrder(ctx context.Context, m kafka.Message) error {
	var msg OrderMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal order request: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid order request: %w", err)
	}
	if msg.Price.IsZero() {
		return fmt.Errorf("invalid order request: price is required")
	}

	res, err := h.placer.PlaceOrder(ctx, OrderMessageToEntity(msg))
	if err != nil {
		return err
	}
	if res.Rejected {
		// бизнес-отказ не повод для DLQ, провайдер уже дал окончательный ответ
		h.logger.Warn("order rejected by provider",
			"user_id", msg.UserID, "service", msg.ServiceCode)
		return nil
	}

	h.logger.Info("order placed", "order_id", res.Ref.OrderID, "service", msg.ServiceCode)
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
