package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRooms      = "101,102,103,104,105"
	DefaultStorageKey = "bookings"

	KVBackendMemory = "memory"
	KVBackendRedis  = "redis"
	KVBackendMongo  = "mongo"

	DefaultKVBackend = KVBackendMemory

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisDB   = 0

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "staycal"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaTopic = "booking-events"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// RoomType is the only room category the calendar supports.
	RoomType = "deluxe"
)
