package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"catermatch/config"
	deliverycontext "catermatch/internal/delivery/context"
	"catermatch/internal/domain/entity"
	domainerrors "catermatch/internal/domain/errors"
	"catermatch/internal/domain/location"
	"catermatch/internal/domain/repository"
	"catermatch/internal/domain/service"
	"catermatch/internal/errors"
	"catermatch/internal/infra/metrics"
	"catermatch/internal/usecase"

	"go.uber.org/fx"
)

const (
	// Inputs this short are too ambiguous to learn from.
	minLearnableAliasLength = 3

	defaultLearnedListLimit = 50
	maxLearnedListLimit     = 500
	defaultEvalTimeout      = 2 * time.Second
)

// Inference failure reasons reported to metrics.
const (
	inferenceFailureTimeout     = "timeout"
	inferenceFailureUnavailable = "unavailable"
	inferenceFailureInvalid     = "invalid"
	inferenceFailureError       = "error"
)

type locationService struct {
	learnedRepo      repository.LearnedLocationRepository
	evalRepo         repository.LocationEvalRepository
	inference        service.StructuredInference
	fallback         entity.ResolvedLocation
	inferenceTimeout time.Duration
	evalTimeout      time.Duration
	logger           *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LearnedRepo repository.LearnedLocationRepository
	EvalRepo    repository.LocationEvalRepository
	Inference   service.StructuredInference
	Config      *config.Config
	Logger      *slog.Logger
}

// NewLocationService creates the three-tier location resolver.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	cfg := params.Config.Resolver
	def := cfg.DefaultLocation

	evalTimeout := cfg.EvalTimeout
	if evalTimeout <= 0 {
		evalTimeout = defaultEvalTimeout
	}

	var inferenceTimeout time.Duration
	if cfg.Inference != nil {
		inferenceTimeout = cfg.Inference.Timeout
	}

	return &locationService{
		learnedRepo: params.LearnedRepo,
		evalRepo:    params.EvalRepo,
		inference:   params.Inference,
		fallback: entity.ResolvedLocation{
			City:       def.City,
			Province:   def.Province,
			Latitude:   def.Latitude,
			Longitude:  def.Longitude,
			Confidence: entity.ConfidenceLow,
			Source:     entity.LocationSourceAI,
		},
		inferenceTimeout: inferenceTimeout,
		evalTimeout:      evalTimeout,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Resolve tries the learned store, then the alias table, then inference.
// Every call leaves an evaluation record behind.
func (s *locationService) Resolve(ctx context.Context, input string) *entity.ResolvedLocation {
	normalized := location.Normalize(input)

	resolved := s.resolve(ctx, input, normalized)

	metrics.RecordResolution(string(resolved.Source), string(resolved.Confidence))
	s.recordEval(ctx, input, resolved)

	return resolved
}

func (s *locationService) resolve(ctx context.Context, input, normalized string) *entity.ResolvedLocation {
	if normalized != "" {
		if loc, ok := s.fromLearned(ctx, normalized); ok {
			return loc
		}
	}

	if place, ok := location.LookupAliasInText(normalized); ok {
		return &entity.ResolvedLocation{
			City:       place.City,
			Province:   place.Province,
			Latitude:   place.Latitude,
			Longitude:  place.Longitude,
			Confidence: entity.ConfidenceHigh,
			Source:     entity.LocationSourceAlias,
		}
	}

	inferred, ok := s.infer(ctx, input)
	if !ok {
		fallback := s.fallback

		return &fallback
	}

	if inferred.Confidence == entity.ConfidenceHigh && len(normalized) >= minLearnableAliasLength {
		s.learn(ctx, &entity.LearnedLocation{
			Alias:     normalized,
			City:      inferred.City,
			Province:  inferred.Province,
			Latitude:  inferred.Latitude,
			Longitude: inferred.Longitude,
			AddedBy:   entity.AddedBySystem,
		})
	}

	return &entity.ResolvedLocation{
		City:       inferred.City,
		Province:   inferred.Province,
		Latitude:   inferred.Latitude,
		Longitude:  inferred.Longitude,
		Confidence: inferred.Confidence,
		Source:     entity.LocationSourceAI,
	}
}

func (s *locationService) fromLearned(ctx context.Context, normalized string) (*entity.ResolvedLocation, bool) {
	learned, err := s.learnedRepo.TouchLearnedLocation(ctx, normalized)
	if err != nil {
		if !errors.Is(err, repository.ErrLearnedLocationNotFound) {
			s.log(ctx).Warn("Learned location lookup failed, continuing with alias table",
				slog.String("alias", normalized),
				slog.Any("error", err),
			)
		}

		return nil, false
	}

	return &entity.ResolvedLocation{
		City:       learned.City,
		Province:   learned.Province,
		Latitude:   learned.Latitude,
		Longitude:  learned.Longitude,
		Confidence: entity.ConfidenceHigh,
		Source:     entity.LocationSourceLearned,
	}, true
}

func (s *locationService) infer(ctx context.Context, input string) (*location.InferredLocation, bool) {
	inferCtx := ctx
	if s.inferenceTimeout > 0 {
		var cancel context.CancelFunc
		inferCtx, cancel = context.WithTimeout(ctx, s.inferenceTimeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.inference.Infer(inferCtx, location.BuildPrompt(strings.TrimSpace(input)), location.InferenceSchema())
	if err == nil {
		var inferred *location.InferredLocation
		inferred, err = location.DecodeInference(raw)
		if err == nil {
			metrics.RecordInference(time.Since(start), "")

			return inferred, true
		}
	}

	reason := inferenceFailureReason(err)
	metrics.RecordInference(time.Since(start), reason)
	s.log(ctx).Warn("Location inference failed, using default location",
		slog.String("input", input),
		slog.String("reason", reason),
		slog.Any("error", err),
	)

	return nil, false
}

func inferenceFailureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return inferenceFailureTimeout
	case errors.Is(err, service.ErrInferenceUnavailable):
		return inferenceFailureUnavailable
	case errors.Is(err, location.ErrInvalidInference):
		return inferenceFailureInvalid
	default:
		return inferenceFailureError
	}
}

// learn writes a system mapping; failures only cost a future cache miss.
func (s *locationService) learn(ctx context.Context, learned *entity.LearnedLocation) {
	if _, err := s.learnedRepo.UpsertLearnedLocation(ctx, learned); err != nil {
		s.log(ctx).Warn("Failed to store learned location",
			slog.String("alias", learned.Alias),
			slog.Any("error", err),
		)

		return
	}

	metrics.LearnedLocationWrites.WithLabelValues(string(learned.AddedBy)).Inc()
}

// recordEval outlives a cancelled request so the audit trail stays complete.
func (s *locationService) recordEval(ctx context.Context, input string, resolved *entity.ResolvedLocation) {
	evalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.evalTimeout)
	defer cancel()

	err := s.evalRepo.RecordEval(evalCtx, &entity.LocationEval{
		Input:      input,
		City:       resolved.City,
		Province:   resolved.Province,
		Confidence: resolved.Confidence,
		Source:     resolved.Source,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		metrics.LocationEvalFailures.Inc()
		s.log(ctx).Warn("Failed to record location eval",
			slog.String("input", input),
			slog.Any("error", err),
		)
	}
}

// LearnLocation stores a human-curated alias. Admin and correction entries win over
// whatever was learned before.
func (s *locationService) LearnLocation(ctx context.Context, input *usecase.LearnLocationInput) (*entity.LearnedLocation, error) {
	alias := location.Normalize(input.Alias)
	if alias == "" {
		return nil, domainerrors.ErrInvalidLocation.WithDetails("alias is empty")
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		return nil, domainerrors.ErrInvalidLocation.WithDetails("city is empty")
	}

	addedBy := input.AddedBy
	if addedBy == "" {
		addedBy = entity.AddedByAdmin
	}

	if !addedBy.Overrides() {
		return nil, domainerrors.ErrInvalidLocation.WithDetails("added_by must be admin or user_correction")
	}

	learned := &entity.LearnedLocation{
		Alias:     alias,
		City:      city,
		Province:  strings.TrimSpace(input.Province),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		AddedBy:   addedBy,
	}

	hasCoordinates := learned.Latitude != 0 || learned.Longitude != 0

	// A known city without coordinates takes the alias table's centre point.
	if place, ok := location.LookupAlias(location.Normalize(city)); ok {
		learned.City = place.City
		if learned.Province == "" {
			learned.Province = place.Province
		}
		if !hasCoordinates {
			learned.Latitude = place.Latitude
			learned.Longitude = place.Longitude
		}
	} else if !hasCoordinates {
		return nil, domainerrors.ErrInvalidLocation.WithDetails("coordinates are required for a city outside the alias table")
	}

	stored, err := s.learnedRepo.UpsertLearnedLocation(ctx, learned)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store learned location")
	}

	metrics.LearnedLocationWrites.WithLabelValues(string(addedBy)).Inc()
	s.log(ctx).Info("Learned location stored",
		slog.String("alias", stored.Alias),
		slog.String("city", stored.City),
		slog.String("added_by", string(stored.AddedBy)),
	)

	return stored, nil
}

// ListLearnedLocations returns the most used aliases first.
func (s *locationService) ListLearnedLocations(ctx context.Context, limit int) ([]*entity.LearnedLocation, error) {
	switch {
	case limit <= 0:
		limit = defaultLearnedListLimit
	case limit > maxLearnedListLimit:
		limit = maxLearnedListLimit
	}

	locations, err := s.learnedRepo.ListLearnedLocations(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list learned locations")
	}

	return locations, nil
}
