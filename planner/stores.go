package planner

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/planner/internal/validation"
	"github.com/arthur-debert/planner/storage"
	"github.com/arthur-debert/planner/store"
)

// Fixed storage keys, one per collection. The reminder and account keys
// live with their own packages (remind.Key, auth.Key).
const (
	CoursesKey      = "courses"
	AssignmentsKey  = "assignments"
	GradeCoursesKey = "gradeCourses"
)

// NewCourseStore creates the course schedule store over kv.
func NewCourseStore(kv storage.KV, opts ...store.Option[Course]) (*store.Store[Course], error) {
	return store.New(kv, store.Config[Course]{
		Key: CoursesKey,
		Normalize: func(c Course) Course {
			if c.Day == "" {
				c.Day = Monday
			}
			return c
		},
		Validate: func(c Course) error { return validation.Struct(c) },
	}, opts...)
}

// NewAssignmentStore creates the assignment store over kv.
func NewAssignmentStore(kv storage.KV, opts ...store.Option[Assignment]) (*store.Store[Assignment], error) {
	return store.New(kv, store.Config[Assignment]{
		Key: AssignmentsKey,
		Normalize: func(a Assignment) Assignment {
			if a.Priority == "" {
				a.Priority = PriorityMedium
			}
			return a
		},
		Validate: func(a Assignment) error { return validation.Struct(a) },
	}, opts...)
}

// ToggleCompleted flips an assignment's completion flag in place.
// This is equivalent to: s.Update(id, flipped draft).
func ToggleCompleted(s *store.Store[Assignment], id string) (Assignment, error) {
	a, err := s.Get(id)
	if err != nil {
		return Assignment{}, err
	}
	a.Completed = !a.Completed
	return s.Update(id, a)
}

// GradeCourseStore wraps the grade-course store with component-level
// operations: components live inside their course record, so appending or
// removing one is an update of the whole record.
type GradeCourseStore struct {
	*store.Store[GradeCourse]
	newComponentID func() string
}

// GradeCourseOption configures a GradeCourseStore.
type GradeCourseOption func(*GradeCourseStore)

// WithComponentID sets a custom component id generator, used in tests.
func WithComponentID(fn func() string) GradeCourseOption {
	return func(s *GradeCourseStore) { s.newComponentID = fn }
}

// NewGradeCourseStore creates the grade-tracked course store over kv.
func NewGradeCourseStore(kv storage.KV, opts []store.Option[GradeCourse], gcOpts ...GradeCourseOption) (*GradeCourseStore, error) {
	inner, err := store.New(kv, store.Config[GradeCourse]{
		Key:      GradeCoursesKey,
		Validate: func(g GradeCourse) error { return validation.Struct(g) },
	}, opts...)
	if err != nil {
		return nil, err
	}

	s := &GradeCourseStore{Store: inner}
	for _, opt := range gcOpts {
		opt(s)
	}
	if s.newComponentID == nil {
		s.newComponentID = uuid.NewString
	}
	return s, nil
}

// AddComponent validates the component, assigns it a fresh id and appends
// it to the course's component list, preserving component order.
func (s *GradeCourseStore) AddComponent(courseID string, draft GradeComponent) (GradeCourse, error) {
	if err := validation.Struct(draft); err != nil {
		return GradeCourse{}, &store.ValidationError{Err: err}
	}

	course, err := s.Get(courseID)
	if err != nil {
		return GradeCourse{}, err
	}

	draft.ID = s.newComponentID()
	course.Components = append(course.Components, draft)
	return s.Update(courseID, course)
}

// RemoveComponent deletes one component from a course. Removing an absent
// component id is a no-op.
func (s *GradeCourseStore) RemoveComponent(courseID, componentID string) (GradeCourse, error) {
	course, err := s.Get(courseID)
	if err != nil {
		return GradeCourse{}, err
	}

	for i, c := range course.Components {
		if c.ID == componentID {
			course.Components = append(course.Components[:i], course.Components[i+1:]...)
			return s.Update(courseID, course)
		}
	}
	return course, nil
}
