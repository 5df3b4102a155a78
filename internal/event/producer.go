package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Fylinde/brand-service/internal/domain"
	pkgkafka "github.com/Fylinde/brand-service/pkg/kafka"
)

// TopicBrandEvents is the single broadcast topic for brand lifecycle
// events. Every consumer group subscribed to it receives every event.
const TopicBrandEvents = "brand.events"

// Event type constants for brand lifecycle events.
const (
	TypeBrandCreated     = "brand.created"
	TypeBrandUpdated     = "brand.updated"
	TypeBrandDeleted     = "brand.deleted"
	TypeBrandActivated   = "brand.activated"
	TypeBrandDeactivated = "brand.deactivated"
)

// Aggregate type constant.
const AggregateTypeBrand = "brand"

// Source identifier for events originating from the brand service.
const SourceBrandService = "brand-service"

var publishFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "brand_event_publish_failures_total",
		Help: "Total number of brand events that could not be published.",
	},
	[]string{"event_type"},
)

// BrandCreatedData is the payload for a brand.created event.
type BrandCreatedData struct {
	BrandID     int64   `json:"brand_id"`
	BrandName   string  `json:"brand_name"`
	Description *string `json:"description,omitempty"`
}

// BrandUpdatedData is the payload for a brand.updated event.
type BrandUpdatedData struct {
	BrandID     int64   `json:"brand_id"`
	BrandName   string  `json:"brand_name"`
	Description *string `json:"description,omitempty"`
	Status      bool    `json:"status"`
}

// BrandDeletedData is the payload for a brand.deleted event.
type BrandDeletedData struct {
	BrandID int64 `json:"brand_id"`
}

// BrandActivatedData is the payload for a brand.activated event.
type BrandActivatedData struct {
	BrandID int64 `json:"brand_id"`
}

// BrandDeactivatedData is the payload for a brand.deactivated event.
type BrandDeactivatedData struct {
	BrandID int64 `json:"brand_id"`
}

// kafkaPublisher is the slice of pkg/kafka.Producer this package uses.
type kafkaPublisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// Producer publishes brand domain events to Kafka.
type Producer struct {
	kafka  kafkaPublisher
	logger *slog.Logger
}

// NewProducer creates a new event producer for the brand service.
func NewProducer(kafka kafkaPublisher, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishBrandCreated publishes a brand.created event.
func (p *Producer) PublishBrandCreated(ctx context.Context, brand *domain.Brand) error {
	data := BrandCreatedData{
		BrandID:     brand.ID,
		BrandName:   brand.Name,
		Description: brand.Description,
	}

	return p.publish(ctx, TypeBrandCreated, brand.ID, data)
}

// PublishBrandUpdated publishes a brand.updated event.
func (p *Producer) PublishBrandUpdated(ctx context.Context, brand *domain.Brand) error {
	data := BrandUpdatedData{
		BrandID:     brand.ID,
		BrandName:   brand.Name,
		Description: brand.Description,
		Status:      brand.Status,
	}

	return p.publish(ctx, TypeBrandUpdated, brand.ID, data)
}

// PublishBrandDeleted publishes a brand.deleted event.
func (p *Producer) PublishBrandDeleted(ctx context.Context, brandID int64) error {
	return p.publish(ctx, TypeBrandDeleted, brandID, BrandDeletedData{BrandID: brandID})
}

// PublishBrandActivated publishes a brand.activated event.
func (p *Producer) PublishBrandActivated(ctx context.Context, brandID int64) error {
	return p.publish(ctx, TypeBrandActivated, brandID, BrandActivatedData{BrandID: brandID})
}

// PublishBrandDeactivated publishes a brand.deactivated event.
func (p *Producer) PublishBrandDeactivated(ctx context.Context, brandID int64) error {
	return p.publish(ctx, TypeBrandDeactivated, brandID, BrandDeactivatedData{BrandID: brandID})
}

func (p *Producer) publish(ctx context.Context, eventType string, brandID int64, data any) error {
	aggregateID := strconv.FormatInt(brandID, 10)

	event, err := pkgkafka.NewEvent(eventType, aggregateID, AggregateTypeBrand, SourceBrandService, data)
	if err != nil {
		publishFailures.WithLabelValues(eventType).Inc()
		return fmt.Errorf("create %s event: %w", eventType, err)
	}

	if err := p.kafka.Publish(ctx, TopicBrandEvents, event); err != nil {
		publishFailures.WithLabelValues(eventType).Inc()
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	p.logger.DebugContext(ctx, "published brand event",
		slog.String("event_type", eventType),
		slog.Int64("brand_id", brandID),
	)

	return nil
}
