package constants

import "time"

// Database pool settings.
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Token settings.
const (
	TokenIssuer   = "slot-swapper"
	TokenAudience = "slot-swapper-users"
	TokenTTL      = 24 * time.Hour
	TokenCookie   = "token"
)

// Redis key prefixes.
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyRateLimit      = "ratelimit:"
)

// Rate limit for authentication endpoints: 5 attempts per minute per identity.
const (
	AuthRateLimitWindow = time.Minute
	AuthRateLimitMax    = 5
)

// Password hashing.
const BcryptCost = 12

// Pagination defaults.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// Asynq task types.
const TaskTypeNotificationEmail = "notification:email"
