package di

import (
	"context"
	"fmt"
	"time"

	"DartWatch/internal/domain/repository"
	internalrepo "DartWatch/internal/repository"
	"DartWatch/internal/service/dart"
	"DartWatch/internal/service/dedup"
	"DartWatch/internal/service/telegram"
	"DartWatch/internal/usecase"
	pkgch "DartWatch/pkg/clickhouse"
	"DartWatch/pkg/config"
	xhttp "DartWatch/pkg/http"
	pkgkafka "DartWatch/pkg/kafka"
	"DartWatch/pkg/logger"
	"DartWatch/pkg/metrics"
	"DartWatch/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideDisclosureSource creates the OpenDART client.
func ProvideDisclosureSource(cfg *config.Config, m repository.Metrics, l *logger.Logger) repository.DisclosureSource {
	httpClient := xhttp.NewClient(
		xhttp.WithTimeout(cfg.Dart.Timeout),
		xhttp.WithUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
	)
	return dart.New(cfg.Dart.APIKey, cfg.Dart.BaseURL, httpClient, m, l)
}

// ProvideExtractor creates the purchase-evidence extractor.
func ProvideExtractor(l *logger.Logger) *dart.Extractor {
	return dart.NewExtractor(l)
}

// ProvideNotifier creates the Telegram notifier.
func ProvideNotifier(cfg *config.Config, l *logger.Logger) repository.Notifier {
	httpClient := xhttp.NewClient(xhttp.WithTimeout(cfg.Telegram.Timeout))
	return telegram.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.BaseURL, httpClient, l)
}

// ProvideProcessedStore creates the configured dedup backend.
func ProvideProcessedStore(cfg *config.Config, l *logger.Logger) (repository.ProcessedStore, error) {
	switch cfg.Dedup.Backend {
	case "redis":
		store, err := dedup.NewRedisStore(
			cfg.Dedup.Redis.Addr,
			cfg.Dedup.Redis.Password,
			cfg.Dedup.Redis.DB,
			cfg.Dedup.Redis.TTL,
			l,
		)
		if err != nil {
			return nil, fmt.Errorf("redis dedup store: %w", err)
		}
		return store, nil
	default:
		return dedup.NewMemoryStore(), nil
	}
}

// ProvideEventArchive creates the configured archive backend.
func ProvideEventArchive(cfg *config.Config, l *logger.Logger) (repository.EventArchive, error) {
	switch cfg.Archive.Backend {
	case "kafka":
		producer, err := pkgkafka.NewProducer(pkgkafka.ProducerConfig{
			Brokers:      cfg.Archive.Kafka.Brokers,
			Compression:  cfg.Archive.Kafka.Compression,
			RequiredAcks: cfg.Archive.Kafka.RequiredAcks,
			WriteTimeout: cfg.Archive.Kafka.WriteTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		return internalrepo.NewKafkaArchive(producer, cfg.Archive.Kafka.Topic), nil

	case "clickhouse":
		client, err := pkgch.NewClient(pkgch.Config{
			Host:        cfg.Archive.ClickHouse.Host,
			Port:        cfg.Archive.ClickHouse.Port,
			Database:    cfg.Archive.ClickHouse.Database,
			User:        cfg.Archive.ClickHouse.User,
			Password:    cfg.Archive.ClickHouse.Password,
			DialTimeout: cfg.Archive.ClickHouse.DialTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.InitSchema(ctx, internalrepo.ClickHouseSchema(cfg.Archive.ClickHouse.Database)); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("clickhouse schema: %w", err)
		}
		return internalrepo.NewClickHouseArchive(client, cfg.Archive.ClickHouse.Database), nil

	default:
		archive, err := internalrepo.NewFileArchive(cfg.Archive.OutputDir, l)
		if err != nil {
			return nil, fmt.Errorf("file archive: %w", err)
		}
		return archive, nil
	}
}

// ProvideMonitor creates the monitoring orchestrator.
func ProvideMonitor(
	cfg *config.Config,
	source repository.DisclosureSource,
	extractor *dart.Extractor,
	notifier repository.Notifier,
	processed repository.ProcessedStore,
	m repository.Metrics,
	l *logger.Logger,
) *usecase.Monitor {
	return usecase.NewMonitor(source, extractor, notifier, processed, m, l,
		usecase.WithDaysBack(cfg.Monitor.DaysBack),
		usecase.WithPageSize(cfg.Monitor.PageSize),
		usecase.WithMaxPages(cfg.Monitor.MaxPages),
		usecase.WithNotifyDelay(cfg.Monitor.NotifyDelay),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	monitor *usecase.Monitor,
	notifier repository.Notifier,
	archive repository.EventArchive,
	l *logger.Logger,
) *server.App {
	return server.New(cfg, monitor, notifier, archive, l)
}
