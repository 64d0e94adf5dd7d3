package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Upstream  *UpstreamConfig
	Cache     *CacheConfig
	Mutation  *MutationConfig
	Table     *TableConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // masterPOS
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// UpstreamConfig describes the remote catalog endpoint the full record
// set is fetched from.
type UpstreamConfig struct {
	BaseURL        string // e.g. https://devcase.isiksoftyazilim.com/api/products
	Page           int    // page query parameter, the whole set lives on page 1
	RequestTimeout time.Duration
	CacheTTL       time.Duration // TTL of the cached payload in redis
}

type CacheConfig struct {
	Address         string // empty disables the cache entirely
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

// MutationConfig controls the simulated latency of create/update/delete
// operations while no real upstream write API exists.
type MutationConfig struct {
	SimulatedLatency time.Duration
}

// TableConfig holds the list pipeline defaults.
type TableConfig struct {
	DefaultPageSize int
	PageSizes       []int
}

type RateLimitConfig struct {
	Enabled         bool
	GeneralLimit    int
	GeneralWindow   time.Duration
	AdminLimit      int
	AdminWindow     time.Duration
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
}
