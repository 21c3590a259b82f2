package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/noteloft/noteloft/internal/domain"
)

const meterName = "noteloft"

// Metrics holds the Noteloft metric instruments. A nil *Metrics is valid
// and records nothing, so services can run without telemetry.
type Metrics struct {
	logins          metric.Int64Counter
	notesCreated    metric.Int64Counter
	limitRejections metric.Int64Counter
	upgrades        metric.Int64Counter
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.logins, err = meter.Int64Counter("noteloft.logins",
		metric.WithDescription("Successful logins"))
	if err != nil {
		return nil, err
	}

	m.notesCreated, err = meter.Int64Counter("noteloft.notes.created",
		metric.WithDescription("Notes created"))
	if err != nil {
		return nil, err
	}

	m.limitRejections, err = meter.Int64Counter("noteloft.notes.limit_rejections",
		metric.WithDescription("Note creations rejected by the free-plan cap"))
	if err != nil {
		return nil, err
	}

	m.upgrades, err = meter.Int64Counter("noteloft.tenants.upgraded",
		metric.WithDescription("Tenant plan upgrades"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Login records a successful login.
func (m *Metrics) Login(ctx context.Context) {
	if m == nil {
		return
	}
	m.logins.Add(ctx, 1)
}

// NoteCreated records a successful note creation.
func (m *Metrics) NoteCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.notesCreated.Add(ctx, 1)
}

// NoteLimitHit records a creation rejected by the subscription cap.
// Errors other than the cap are ignored.
func (m *Metrics) NoteLimitHit(ctx context.Context, err error) {
	if m == nil || !errors.Is(err, domain.ErrNoteLimit) {
		return
	}
	m.limitRejections.Add(ctx, 1)
}

// TenantUpgraded records a plan upgrade.
func (m *Metrics) TenantUpgraded(ctx context.Context) {
	if m == nil {
		return
	}
	m.upgrades.Add(ctx, 1)
}
