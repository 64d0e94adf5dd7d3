package config

import (
	"masterpos_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "masterPOS_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8082"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:3000"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "Content-Disposition"}),
			},
			Upstream: &structs.UpstreamConfig{
				BaseURL:        getEnvAsString("UPSTREAM_PRODUCTS_URL", "https://devcase.isiksoftyazilim.com/api/products"),
				Page:           getEnvAsInt("UPSTREAM_PRODUCTS_PAGE", 1),
				RequestTimeout: getEnvAsTimeDuration("UPSTREAM_REQUEST_TIMEOUT", 10*time.Second),
				CacheTTL:       getEnvAsTimeDuration("UPSTREAM_CACHE_TTL", 2*time.Minute),
			},
			Cache: &structs.CacheConfig{
				Address:         getEnvAsString("REDIS_ADDRESS", ""),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			},
			Mutation: &structs.MutationConfig{
				SimulatedLatency: getEnvAsTimeDuration("MUTATION_SIMULATED_LATENCY", 1*time.Second),
			},
			Table: &structs.TableConfig{
				DefaultPageSize: getEnvAsInt("TABLE_DEFAULT_PAGE_SIZE", 10),
				PageSizes:       []int{5, 10, 20, 50},
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:         getEnvAsBool("RATE_LIMIT_ENABLED", false),
				GeneralLimit:    getEnvAsInt("RATE_LIMIT_GENERAL", 120),
				GeneralWindow:   getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", 1*time.Minute),
				AdminLimit:      getEnvAsInt("RATE_LIMIT_ADMIN", 30),
				AdminWindow:     getEnvAsTimeDuration("RATE_LIMIT_ADMIN_WINDOW", 1*time.Minute),
				ExpensiveLimit:  getEnvAsInt("RATE_LIMIT_EXPENSIVE", 60),
				ExpensiveWindow: getEnvAsTimeDuration("RATE_LIMIT_EXPENSIVE_WINDOW", 1*time.Minute),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
