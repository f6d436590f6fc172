// Package statusrecorder persists compliance events to InfluxDB for later
// analysis. When InfluxDB is not configured the engine falls back to a
// no-op recorder.
package statusrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.StatusRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "status event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, status event recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "status event recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordReminderDispatch(ctx context.Context, record domain.ReminderDispatchRecord) error {
	point := influxdb2.NewPoint(
		"reminder_dispatch",
		map[string]string{
			"group_id": record.GroupID,
		},
		map[string]any{
			"group_name": record.GroupName,
			"candidates": record.Candidates,
			"delivered":  record.Delivered,
			"fired_unix": record.FiredAt.Unix(),
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write reminder dispatch to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("group_id", record.GroupID),
		)
	}
	return nil
}

func (r *influxDBRecorder) RecordUrgentSession(ctx context.Context, record domain.UrgentSessionRecord) error {
	point := influxdb2.NewPoint(
		"urgent_session",
		map[string]string{
			"group_id": record.GroupID,
		},
		map[string]any{
			"session_id":      record.SessionID,
			"opened_unix":     record.OpenedAt.Unix(),
			"closed_unix":     record.ClosedAt.Unix(),
			"expired":         record.Expired,
			"total_members":   record.TotalMembers,
			"responded_count": record.RespondedCount,
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write urgent session to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("session_id", record.SessionID),
		)
	}
	return nil
}

func (r *influxDBRecorder) Close() error {
	r.client.Close()
	return nil
}
