// internal/services/health_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zensupply/backend/internal/config"
)

const (
	maxReportedCollections = 10
	maxStatusErrorLength   = 50
)

// DatabaseInspector is satisfied by *mongo.Database.
type DatabaseInspector interface {
	Name() string
	ListCollectionNames(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]string, error)
}

type HealthService struct {
	db  DatabaseInspector
	cfg *config.Config
}

// DiagnosticsReport is the flat status object served by /test. Configuration
// values are reported as set or not set, never echoed.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func NewHealthService(db DatabaseInspector, cfg *config.Config) *HealthService {
	return &HealthService{db: db, cfg: cfg}
}

// Diagnose never fails; store problems are folded into the Database field.
func (s *HealthService) Diagnose(ctx context.Context) (report DiagnosticsReport) {
	report = DiagnosticsReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setStatus(s.cfg.Database.URL),
		DatabaseName:     setStatus(s.cfg.Database.Name),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Diagnostics panicked")
			report.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxStatusErrorLength)
		}
	}()

	if s.db == nil {
		return report
	}

	report.Database = "✅ Available"
	report.ConnectionStatus = "Connected"

	collections, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		logrus.WithError(err).WithField("database", s.db.Name()).Warn("Failed to list collections")
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxStatusErrorLength)
		return report
	}

	if len(collections) > maxReportedCollections {
		collections = collections[:maxReportedCollections]
	}
	report.Collections = collections
	report.Database = "✅ Connected & Working"
	return report
}

func setStatus(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
