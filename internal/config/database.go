// internal/config/database.go
package config

import (
	"fmt"
	"time"
)

// Configured reports whether both the connection string and the database name are set.
func (d *DatabaseConfig) Configured() bool {
	return d.URL != "" && d.Name != ""
}

func (d *DatabaseConfig) Timeout() time.Duration {
	return time.Duration(d.ConnectTimeout) * time.Second
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func (r *RedisConfig) TTL() time.Duration {
	return time.Duration(r.IdempotencyTTL) * time.Second
}
