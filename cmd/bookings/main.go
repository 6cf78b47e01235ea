package main

import (
	"context"

	"staycal/internal/bookings/handler"
	"staycal/internal/bookings/seed"
	"staycal/internal/bookings/store"
	"staycal/internal/bookings/validator"
	"staycal/pkg/app"
	"staycal/pkg/config"
	"staycal/pkg/kafka"
	"staycal/pkg/kv"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetBackends()

	cfg.Log.Info("Starting Bookings service")

	var kvStore kv.Store
	switch cfg.KVBackend {
	case config.KVBackendRedis:
		kvStore = kv.NewRedis(cfg.Client.Redis)
	case config.KVBackendMongo:
		kvStore = kv.NewMongo(cfg.Client.Mongo.Database(cfg.MongoDatabaseName))
	default:
		kvStore = kv.NewMemory()
	}

	var publisher store.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}()
		publisher = producer
	}

	bookingStore := store.New(store.Options{
		Rooms:      cfg.Rooms,
		KV:         kvStore,
		StorageKey: cfg.StorageKey,
		Seed:       seed.Bookings,
		Validator:  validator.NewBookingValidator(cfg.Rooms, cfg.Log),
		Publisher:  publisher,
		Log:        cfg.Log,
	})
	bookingStore.Load(context.Background())

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewBookingHandler(bookingStore, cfg.Log))
	serverApp.Run()
}
