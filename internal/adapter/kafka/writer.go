package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/quake-map/internal/config"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/mapview"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces encoded markers to a Kafka topic.
// It implements pipeline.MarkerPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured marker topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// markerMessage is the exported form of one marker.
type markerMessage struct {
	Variant     domain.Variant `json:"variant"`
	GeneratedAt time.Time      `json:"generated_at"`
	Marker      mapview.Marker `json:"marker"`
}

// PublishMarkers publishes every marker of one composed map in a single
// WriteMessages call. Messages are keyed by event id so repeated builds of
// the same event land on the same partition.
func (w *Writer) PublishMarkers(ctx context.Context, variant domain.Variant, generatedAt time.Time, markers []mapview.Marker) error {
	if len(markers) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(markers))
	for i := range markers {
		msg, err := serializeToMessage(variant, generatedAt, markers[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write markers: %w", err)
	}
	w.logger.Debug("markers published", "variant", string(variant), "count", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a marker into a Kafka message.
func serializeToMessage(variant domain.Variant, generatedAt time.Time, marker mapview.Marker) (kafkago.Message, error) {
	data, err := json.Marshal(markerMessage{
		Variant:     variant,
		GeneratedAt: generatedAt,
		Marker:      marker,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize marker %s: %w", marker.ID, err)
	}
	return kafkago.Message{
		Key:   []byte(marker.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "variant", Value: []byte(variant)},
			{Key: "generated_at", Value: []byte(generatedAt.Format(time.RFC3339))},
		},
	}, nil
}
