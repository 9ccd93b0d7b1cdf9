package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"asdscreen/internal/cache"
	"asdscreen/internal/ml"
	"asdscreen/internal/model"
	"asdscreen/internal/repository"
	"asdscreen/internal/risk"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when an assessment exists in neither the
// cache nor the reachable external store.
var ErrNotFound = errors.New("assessment not found")

// storeTimeout bounds every external-store call so an unreachable
// MongoDB degrades a request instead of stalling it.
const storeTimeout = 5 * time.Second

// listLimit caps how many records one listing pulls from the store.
const listLimit = 1000

// AssessmentService drives the screening pipeline: feature encoding,
// prediction, risk tiering and dual-backed persistence. The in-memory
// cache always succeeds and takes precedence; the Mongo repository is
// best-effort and may be nil when the store was unreachable at startup.
type AssessmentService struct {
	predictor ml.Predictor
	repo      repository.AssessmentRepo
	cache     cache.AssessmentCache
	log       *logrus.Logger
}

// NewAssessmentService creates a new assessment service. repo may be nil.
func NewAssessmentService(
	predictor ml.Predictor,
	repo repository.AssessmentRepo,
	assessmentCache cache.AssessmentCache,
	log *logrus.Logger,
) *AssessmentService {
	return &AssessmentService{
		predictor: predictor,
		repo:      repo,
		cache:     assessmentCache,
		log:       log,
	}
}

// Create runs the prediction pipeline over a validated request and
// persists the resulting record. The cache write always succeeds; a
// failed store write is logged and swallowed.
func (s *AssessmentService) Create(ctx context.Context, req *model.AssessmentRequest) (*model.Assessment, error) {
	features := ml.FeatureVector(*req.Demographic, *req.Behavioral)

	pred, err := s.predictor.Predict(features)
	if err != nil {
		return nil, err
	}

	a := &model.Assessment{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		Demographic:   *req.Demographic,
		Behavioral:    *req.Behavioral,
		ImageFilename: req.ImageFilename,
		Prediction:    pred.Label,
		Probability:   pred.Probability,
		Confidence:    pred.Confidence,
		RiskLevel:     string(risk.Classify(pred.Probability)),
	}

	s.cache.Put(a)

	if s.repo != nil {
		storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()
		if err := s.repo.Insert(storeCtx, a); err != nil {
			s.log.WithError(err).WithField("assessment_id", a.ID).
				Warn("store degraded: could not save assessment, continuing cache-only")
		} else {
			s.log.WithField("assessment_id", a.ID).Info("assessment saved to store")
		}
	}

	return a, nil
}

// Get returns the record for id, checking the cache first and falling
// back to the external store. A store hit warms the cache.
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	if a, ok := s.cache.Get(id); ok {
		return a, nil
	}

	if s.repo != nil {
		storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()
		a, err := s.repo.GetByID(storeCtx, id)
		if err != nil {
			s.log.WithError(err).WithField("assessment_id", id).
				Warn("store degraded: lookup failed")
		} else if a != nil {
			s.cache.Put(a)
			return a, nil
		}
	}

	return nil, ErrNotFound
}

// List returns all known records newest-first: the union of cache and
// store, de-duplicated by ID with cache entries taking precedence.
func (s *AssessmentService) List(ctx context.Context) []*model.Assessment {
	assessments := s.cache.List()

	if s.repo != nil {
		storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()
		stored, err := s.repo.List(storeCtx, listLimit)
		if err != nil {
			s.log.WithError(err).Warn("store degraded: listing from cache only")
		} else {
			seen := make(map[string]bool, len(assessments))
			for _, a := range assessments {
				seen[a.ID] = true
			}
			for _, a := range stored {
				if !seen[a.ID] {
					assessments = append(assessments, a)
				}
			}
			sort.Slice(assessments, func(i, j int) bool {
				if !assessments[i].Timestamp.Equal(assessments[j].Timestamp) {
					return assessments[i].Timestamp.After(assessments[j].Timestamp)
				}
				return assessments[i].ID < assessments[j].ID
			})
		}
	}

	return assessments
}
