package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"catermatch/config"
	deliverycontext "catermatch/internal/delivery/context"
	"catermatch/internal/domain/entity"
	domainerrors "catermatch/internal/domain/errors"
	"catermatch/internal/domain/matching"
	"catermatch/internal/domain/repository"
	"catermatch/internal/domain/service"
	"catermatch/internal/errors"
	"catermatch/internal/infra/metrics"
	"catermatch/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// matchingService implements the MatchingUsecase interface.
type matchingService struct {
	txManager   repository.TransactionManager
	requestRepo repository.EventRequestRepository
	catererRepo repository.CatererRepository
	matchRepo   repository.MatchRepository
	resolver    usecase.LocationResolver
	publisher   service.EventPublisher
	engine      *matching.Engine
	thresholds  matching.TierThresholds
	validate    *validator.Validate
	logger      *slog.Logger
	now         func() time.Time
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	RequestRepo repository.EventRequestRepository
	CatererRepo repository.CatererRepository
	MatchRepo   repository.MatchRepository
	Resolver    usecase.LocationResolver
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMatchingService creates the matching orchestrator.
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	engineCfg := matching.Config{}
	thresholds := matching.DefaultTierThresholds()
	if m := params.Config.Matching; m != nil {
		engineCfg.MaxMatches = m.MaxMatches
		engineCfg.MinScore = m.MinScore
		if m.TierThresholds.Pro > 0 && m.TierThresholds.Business > m.TierThresholds.Pro {
			thresholds = matching.TierThresholds{Pro: m.TierThresholds.Pro, Business: m.TierThresholds.Business}
		}
	}

	return &matchingService{
		txManager:   params.TxManager,
		requestRepo: params.RequestRepo,
		catererRepo: params.CatererRepo,
		matchRepo:   params.MatchRepo,
		resolver:    params.Resolver,
		publisher:   params.Publisher,
		engine:      matching.NewEngine(engineCfg),
		thresholds:  thresholds,
		validate:    validator.New(),
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *matchingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MatchRequest loads the request, resolves its location while fetching the caterer
// pool, scores and ranks, then swaps the stored matches in one transaction.
func (srv *matchingService) MatchRequest(ctx context.Context, requestID uuid.UUID) (*usecase.MatchOutcome, error) {
	start := srv.now()
	candidates := -1
	outcome := metrics.OutcomeFailed
	defer func() {
		metrics.RecordMatchRun(outcome, candidates, time.Since(start))
	}()

	req, err := srv.loadMatchableRequest(ctx, requestID)
	if err != nil {
		if isRejection(err) {
			outcome = metrics.OutcomeRejected
		}

		return nil, err
	}

	totalBudget := req.TotalBudget()

	if err := srv.requestRepo.UpdateRequestStatus(ctx, req.ID, entity.RequestStatusMatching); err != nil {
		return nil, errors.Wrap(err, "failed to mark request as matching")
	}

	var (
		resolved *entity.ResolvedLocation
		caterers []*entity.Caterer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resolved = srv.resolver.Resolve(gctx, req.City)

		return nil
	})
	g.Go(func() error {
		var findErr error
		caterers, findErr = srv.catererRepo.FindActiveCaterers(gctx)

		return errors.Wrap(findErr, "failed to load active caterers")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	candidates = len(caterers)

	tier := srv.thresholds.TierFor(totalBudget)
	matches := srv.engine.Rank(req, resolved, tier, caterers)

	createdAt := srv.now()
	for _, m := range matches {
		m.ID = uuid.New()
		m.CreatedAt = createdAt
	}

	if err := srv.persistMatches(ctx, req.ID, resolved.City, matches); err != nil {
		srv.log(ctx).Error("Failed to persist matches",
			slog.String("event_request_id", req.ID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrMatchPersistenceFailed, err.Error())
	}

	outcome = metrics.OutcomeMatched
	if len(matches) == 0 {
		outcome = metrics.OutcomeEmpty
	}

	srv.publishMatchesReady(ctx, req.ID, tier, resolved.City, matches)

	srv.log(ctx).Info("Matching completed",
		slog.String("event_request_id", req.ID.String()),
		slog.Int("candidates", candidates),
		slog.Int("matches", len(matches)),
		slog.String("tier", tier.String()),
		slog.String("city", resolved.City),
		slog.String("location_source", string(resolved.Source)),
	)

	return &usecase.MatchOutcome{
		RequestID:          req.ID,
		MatchCount:         len(matches),
		TotalBudget:        totalBudget,
		Tier:               tier,
		ResolvedCity:       resolved.City,
		LocationSource:     resolved.Source,
		LocationConfidence: resolved.Confidence,
		Matches:            matches,
	}, nil
}

func (srv *matchingService) loadMatchableRequest(ctx context.Context, requestID uuid.UUID) (*entity.EventRequest, error) {
	req, err := srv.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrEventRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find event request")
	}

	if req.Status.IsTerminal() {
		return nil, domainerrors.ErrRequestNotMatchable.WithDetails("status " + req.Status.String())
	}

	if err := checkBudget(req); err != nil {
		return nil, err
	}

	if err := srv.validate.Struct(req); err != nil {
		return nil, domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	return req, nil
}

// checkBudget rejects budgets the tier classifier cannot take.
func checkBudget(req *entity.EventRequest) error {
	for name, v := range map[string]*float64{
		"budget_total":      req.BudgetTotal,
		"budget_per_person": req.BudgetPerPerson,
		"budget_max":        req.BudgetMax,
	} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0) {
			return domainerrors.ErrInvalidBudget.WithDetails(fmt.Sprintf("%s is %v", name, *v))
		}
	}

	if total := req.TotalBudget(); math.IsInf(total, 0) {
		return domainerrors.ErrInvalidBudget.WithDetails("total budget overflows")
	}

	return nil
}

func isRejection(err error) bool {
	return errors.Is(err, domainerrors.ErrRequestNotMatchable) ||
		errors.Is(err, domainerrors.ErrInvalidRequest) ||
		errors.Is(err, domainerrors.ErrInvalidBudget)
}

// persistMatches clears earlier matches, inserts the new batch and marks the request
// matched, all or nothing.
func (srv *matchingService) persistMatches(ctx context.Context, requestID uuid.UUID, city string, matches []*entity.Match) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.NewMatchRepository()
		requestRepo := repoFactory.NewEventRequestRepository()

		if err := matchRepo.DeleteMatchesByRequest(ctx, requestID); err != nil {
			return errors.Wrap(err, "failed to clear previous matches")
		}

		if len(matches) > 0 {
			if err := matchRepo.CreateMatches(ctx, matches); err != nil {
				return errors.Wrap(err, "failed to insert matches")
			}
		}

		if err := requestRepo.MarkRequestMatched(ctx, requestID, city); err != nil {
			return errors.Wrap(err, "failed to mark request as matched")
		}

		return nil
	})
}

func (srv *matchingService) publishMatchesReady(ctx context.Context, requestID uuid.UUID, tier entity.Tier, city string, matches []*entity.Match) {
	catererIDs := make([]string, len(matches))
	for i, m := range matches {
		catererIDs[i] = m.CatererID.String()
	}

	err := srv.publisher.PublishMatchesReady(ctx, &service.MatchesReadyEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      requestID.String(),
		MatchCount:   len(matches),
		CatererIDs:   catererIDs,
		Tier:         tier.String(),
		ResolvedCity: city,
	})
	if err != nil {
		// Matches are already committed; downstream can re-read them.
		srv.log(ctx).Warn("Failed to publish matches ready event",
			slog.String("event_request_id", requestID.String()),
			slog.Any("error", err),
		)
	}
}

// RequestMatchingAsync checks the request can be matched and hands it to the worker.
func (srv *matchingService) RequestMatchingAsync(ctx context.Context, requestID uuid.UUID) error {
	if _, err := srv.loadMatchableRequest(ctx, requestID); err != nil {
		return err
	}

	err := srv.publisher.PublishMatchRequested(ctx, &service.MatchRequestedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     requestID.String(),
		RequestedAt: srv.now().Unix(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to publish match request",
			slog.String("event_request_id", requestID.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrMatchDispatchFailed, err.Error())
	}

	return nil
}

// ListMatches returns the stored matches of an existing request.
func (srv *matchingService) ListMatches(ctx context.Context, requestID uuid.UUID) ([]*entity.Match, error) {
	if _, err := srv.requestRepo.FindRequestByID(ctx, requestID); err != nil {
		if errors.Is(err, repository.ErrEventRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find event request")
	}

	matches, err := srv.matchRepo.FindMatchesByRequest(ctx, requestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches")
	}

	return matches, nil
}
