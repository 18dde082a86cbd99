package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"go-courses-api/internal/core/domain/courses"
	"go-courses-api/internal/core/ports"
)

var tracer = otel.Tracer("internal/core/service")

type CourseService struct {
	repo   ports.CourseRepository
	cache  ports.Cache
	logger *slog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache ports.Cache, logger *slog.Logger) *CourseService {
	return &CourseService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Create persists a new course bound to ownerID. Any owner reference the
// caller put in the course itself is overwritten here.
func (s *CourseService) Create(ctx context.Context, course courses.Course, ownerID string) (courses.Course, error) {
	ctx, span := tracer.Start(ctx, "CourseService.Create", trace.WithAttributes(
		attribute.String("course.owner_id", ownerID),
	))
	defer span.End()

	if err := course.Validate(); err != nil {
		span.RecordError(err)
		return courses.Course{}, err
	}

	now := time.Now().UTC()
	course.ID = uuid.NewString()
	course.UserID = ownerID
	course.CreatedAt = now
	course.UpdatedAt = now

	if err := s.repo.Create(ctx, course); err != nil {
		span.RecordError(err)
		return courses.Course{}, err
	}

	s.logger.InfoContext(ctx, "course created", "id", course.ID, "owner_id", ownerID)

	// Re-read with the owner join so the cache holds the joined shape.
	joined, err := s.repo.FindByID(ctx, course.ID)
	if err != nil {
		// The write succeeded; serve the unjoined course rather than fail.
		s.logger.Warn("failed to re-read course after create", "id", course.ID, "error", err)
		return course, nil
	}
	s.cacheSet(ctx, joined)
	return joined, nil
}

// FindByID returns one owner-joined course, consulting the cache first.
func (s *CourseService) FindByID(ctx context.Context, id string) (courses.Course, error) {
	ctx, span := tracer.Start(ctx, "CourseService.FindByID", trace.WithAttributes(
		attribute.String("course.id", id),
	))
	defer span.End()

	if data, ok, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn("cache read failed", "id", id, "error", err)
	} else if ok {
		var course courses.Course
		if err := json.Unmarshal(data, &course); err == nil {
			return course, nil
		}
		s.logger.Warn("cache held unreadable course, evicting", "id", id)
		_ = s.cache.Remove(ctx, id)
	}

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return courses.Course{}, err
	}
	s.cacheSet(ctx, course)
	return course, nil
}

// FindAll returns every course, owner-joined, always from storage.
func (s *CourseService) FindAll(ctx context.Context) ([]courses.Course, error) {
	ctx, span := tracer.Start(ctx, "CourseService.FindAll")
	defer span.End()

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return list, nil
}

// Update merges the partial update into the stored course and persists it.
// Any authenticated account may update any course, not only its owner; that
// gap is inherited behavior and is kept on purpose (see DESIGN.md).
func (s *CourseService) Update(ctx context.Context, id string, upd courses.Update) error {
	ctx, span := tracer.Start(ctx, "CourseService.Update", trace.WithAttributes(
		attribute.String("course.id", id),
	))
	defer span.End()

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	merged := course.Apply(upd)
	if err := merged.Validate(); err != nil {
		span.RecordError(err)
		return err
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, merged); err != nil {
		span.RecordError(err)
		return err
	}

	s.logger.InfoContext(ctx, "course updated", "id", id)
	s.cacheRemove(ctx, id)
	return nil
}

// Delete removes the course. The same owner-check gap as Update applies.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "CourseService.Delete", trace.WithAttributes(
		attribute.String("course.id", id),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	s.logger.InfoContext(ctx, "course deleted", "id", id)
	s.cacheRemove(ctx, id)
	return nil
}

func (s *CourseService) cacheSet(ctx context.Context, course courses.Course) {
	data, err := json.Marshal(course)
	if err != nil {
		s.logger.Warn("failed to marshal course for cache", "id", course.ID, "error", err)
		return
	}
	if err := s.cache.Set(ctx, course.ID, data); err != nil {
		s.logger.Warn("cache write failed", "id", course.ID, "error", err)
	}
}

func (s *CourseService) cacheRemove(ctx context.Context, id string) {
	if err := s.cache.Remove(ctx, id); err != nil {
		s.logger.Warn("cache remove failed", "id", id, "error", err)
	}
}
