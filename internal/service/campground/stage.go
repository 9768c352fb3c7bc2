package campground

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// Stage is a state of a mutation.
type Stage string

// Mutation states. Create visits every stage; update skips Uploading.
const (
	StageStart      Stage = "start"
	StageGeocoding  Stage = "geocoding"
	StageUploading  Stage = "uploading"
	StagePersisting Stage = "persisting"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// StageError is the terminal failure of a mutation. Kind is one of the
// domain sentinels; errors.Is matches both Kind and Err.
type StageError struct {
	Op    string
	Stage Stage
	Kind  error
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("campground %s: %s: %v", e.Op, e.Stage, e.Err)
}

func (e *StageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// mutation tracks one run through the state machine.
type mutation struct {
	op      string
	stage   Stage
	started time.Time
	log     *slog.Logger
	metrics *Metrics
}

func (s *Service) newMutation(op string) *mutation {
	return &mutation{
		op:      op,
		stage:   StageStart,
		started: time.Now(),
		log:     s.log.With(slog.String("op", op)),
		metrics: s.metrics,
	}
}

// advance moves to the next stage.
func (m *mutation) advance(ctx context.Context, next Stage) {
	m.log.DebugContext(ctx, "mutation stage",
		slog.String("from", string(m.stage)),
		slog.String("to", string(next)),
	)
	m.stage = next
}

// done marks the mutation successful.
func (m *mutation) done(ctx context.Context) {
	m.advance(ctx, StageDone)
	m.metrics.observe(m.op, "ok", time.Since(m.started))
}

// fail moves to StageFailed and returns the StageError for the stage the
// failure happened in.
func (m *mutation) fail(ctx context.Context, kind, err error) error {
	failedAt := m.stage
	m.stage = StageFailed

	name := kindName(kind)
	m.log.WarnContext(ctx, "mutation failed",
		slog.String("stage", string(failedAt)),
		slog.String("kind", name),
		slog.String("error", err.Error()),
	)
	m.metrics.failed(m.op, failedAt, name)
	m.metrics.observe(m.op, "failed", time.Since(m.started))

	return &StageError{Op: m.op, Stage: failedAt, Kind: kind, Err: err}
}

// guardKind picks the failure kind of a guard or validation error.
func guardKind(err error) error {
	for _, kind := range []error{
		domain.ErrUnauthorized,
		domain.ErrForbidden,
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrUnsupportedImageType,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return domain.ErrPersist
}

func kindName(kind error) string {
	switch kind {
	case domain.ErrUnauthorized:
		return "unauthorized"
	case domain.ErrForbidden:
		return "forbidden"
	case domain.ErrNotFound:
		return "not_found"
	case domain.ErrValidation:
		return "validation"
	case domain.ErrGeocode:
		return "geocode"
	case domain.ErrUnsupportedImageType:
		return "unsupported_image_type"
	case domain.ErrUpload:
		return "upload"
	case domain.ErrPersist:
		return "persist"
	default:
		return "unknown"
	}
}
