package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"

	"github.com/folio/backend/internal/infrastructure/config"
)

// MeterProvider wraps the OpenTelemetry MeterProvider with lifecycle management.
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
	config   config.TelemetryConfig
}

// NewMeterProvider creates and configures a new MeterProvider.
// If telemetry is disabled, it returns a provider that wraps the no-op global meter.
func NewMeterProvider(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{
		logger: logger,
		config: cfg,
	}

	if !cfg.Enabled {
		logger.Info("Metrics disabled, using no-op meter provider")
		return mp, nil
	}

	exporterOpts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint),
	}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(60*time.Second)),
		),
	)

	otel.SetMeterProvider(mp.provider)

	logger.Info("OpenTelemetry MeterProvider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.String("service_name", cfg.ServiceName),
	)

	return mp, nil
}

// Shutdown gracefully shuts down the meter provider, flushing any pending metrics
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mp.provider.Shutdown(shutdownCtx); err != nil {
		mp.logger.Error("Error shutting down meter provider", zap.Error(err))
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	return nil
}

// Meter returns a named meter from the provider
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.provider.Meter(name, opts...)
}

// ContentMetrics records counters for content operations. All instruments are
// no-ops when telemetry is disabled.
type ContentMetrics struct {
	entityReads  metric.Int64Counter
	entityWrites metric.Int64Counter
	blogViews    metric.Int64Counter
}

// NewContentMetrics creates the content operation instruments
func NewContentMetrics(meter metric.Meter) (*ContentMetrics, error) {
	entityReads, err := meter.Int64Counter("content.reads",
		metric.WithDescription("Number of content read operations"))
	if err != nil {
		return nil, err
	}

	entityWrites, err := meter.Int64Counter("content.writes",
		metric.WithDescription("Number of content write operations"))
	if err != nil {
		return nil, err
	}

	blogViews, err := meter.Int64Counter("blog.views",
		metric.WithDescription("Number of blog post view increments"))
	if err != nil {
		return nil, err
	}

	return &ContentMetrics{
		entityReads:  entityReads,
		entityWrites: entityWrites,
		blogViews:    blogViews,
	}, nil
}

// RecordRead increments the read counter for an entity type
func (m *ContentMetrics) RecordRead(ctx context.Context, entity string) {
	if m == nil {
		return
	}
	m.entityReads.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", entity)))
}

// RecordWrite increments the write counter for an entity type and operation
func (m *ContentMetrics) RecordWrite(ctx context.Context, entity, operation string) {
	if m == nil {
		return
	}
	m.entityWrites.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("operation", operation),
	))
}

// RecordBlogView increments the blog view counter
func (m *ContentMetrics) RecordBlogView(ctx context.Context, slug string) {
	if m == nil {
		return
	}
	m.blogViews.Add(ctx, 1, metric.WithAttributes(attribute.String("slug", slug)))
}
