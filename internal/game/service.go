// Package game coordinates the rule engine, storage and collaborators around a single
// in-memory AppState. One mutex serializes every transition, and a new state only
// replaces the current one after it has been saved.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HealthQuest_Go/internal/analyzer"
	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/engine"
	"github.com/osse101/HealthQuest_Go/internal/health"
	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/metrics"
	"github.com/osse101/HealthQuest_Go/internal/report"
	"github.com/osse101/HealthQuest_Go/internal/storage"
	"github.com/osse101/HealthQuest_Go/internal/validation"
)

// Repository is the storage surface the service needs. Implemented by *storage.Store.
type Repository interface {
	LoadState(ctx context.Context) (domain.AppState, error)
	SaveState(ctx context.Context, state domain.AppState) error
	ImportState(ctx context.Context, data []byte) error
	ExportState(ctx context.Context) ([]byte, error)
	ExportStateYAML(ctx context.Context) (string, error)
	ExportToFolder(ctx context.Context, format storage.ExportFormat) (string, error)
	CurrentUsage(ctx context.Context) (domain.StorageUsage, error)
	RotateStorageIfNeeded(ctx context.Context) (domain.RotationResult, error)
	SetRetention(quotaMB, keepMin int)
	SaveDailyLog(ctx context.Context, entry domain.DailyLog) error
	DailyLog(ctx context.Context, date string) (domain.DailyLog, error)
	ListDailyLogs(ctx context.Context) ([]string, error)
}

// Service defines the game operations
type Service interface {
	Load(ctx context.Context) (domain.AppState, error)
	State(ctx context.Context) (domain.AppState, error)

	// Transitions
	RecordMeal(ctx context.Context, input domain.MealInput) (domain.Meal, error)
	SyncHealth(ctx context.Context) (SyncResult, error)
	Explore(ctx context.Context, choiceHealthy bool) (ExploreResult, error)
	CloseDay(ctx context.Context) (DayCloseResult, error)
	UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error)

	// Storage
	Usage(ctx context.Context) (domain.StorageUsage, error)
	Rotate(ctx context.Context) (domain.RotationResult, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	ExportYAML(ctx context.Context) (string, error)
	ExportToFolder(ctx context.Context, format storage.ExportFormat) (string, error)
	Import(ctx context.Context, data []byte) (domain.AppState, error)
	DailyLog(ctx context.Context, date string) (domain.DailyLog, error)
	ListDailyLogs(ctx context.Context) ([]string, error)

	// HandleReport is the notification callback for scheduled reports
	HandleReport(ctx context.Context, kind domain.ReportKind) error
}

type service struct {
	mu sync.Mutex

	store       Repository
	engine      *engine.Engine
	health      health.Provider
	renderer    report.Renderer
	analyzerFor func(domain.Settings) analyzer.Analyzer
	validator   *validation.Validator
	now         func() time.Time
	newID       func() string

	state  domain.AppState
	loaded bool
}

// Option configures the service
type Option func(*service)

// WithClock overrides the wall clock used for meal times and day boundaries
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator overrides meal id generation
func WithIDGenerator(newID func() string) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// WithAnalyzer pins the meal analyzer regardless of settings
func WithAnalyzer(a analyzer.Analyzer) Option {
	return func(s *service) {
		s.analyzerFor = func(domain.Settings) analyzer.Analyzer { return a }
	}
}

// NewService creates the game service. renderer may be nil to skip report snapshots.
func NewService(store Repository, eng *engine.Engine, provider health.Provider, renderer report.Renderer, opts ...Option) Service {
	s := &service{
		store:       store,
		engine:      eng,
		health:      provider,
		renderer:    renderer,
		analyzerFor: analyzer.ForSettings,
		validator:   validation.Get(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the canonical record, applies its retention settings and closes a
// leftover day from an earlier date.
func (s *service) Load(ctx context.Context) (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return domain.AppState{}, err
	}
	return s.state.Clone(), nil
}

func (s *service) loadLocked(ctx context.Context) error {
	log := logger.FromContext(ctx)

	state, err := s.store.LoadState(ctx)
	if err != nil {
		return err
	}
	s.store.SetRetention(state.Settings.StorageQuotaMB, state.Settings.KeepDaysMin)
	s.state = state
	s.loaded = true

	today := s.today()
	if state.Today == nil {
		day := domain.NewDayProgress(s.now())
		s.state.Today = &day
	} else if state.Today.Date < today {
		result, err := s.closeDayLocked(ctx)
		if err != nil {
			s.loaded = false
			return err
		}
		log.Info(LogMsgStaleDayClosed, "date", result.Log.Date, "badge", result.Log.BadgeDaily)
	}

	s.recordAvatarGauges()
	log.Info(LogMsgStateLoaded, "level", s.state.Avatar.Level, "xp", s.state.Avatar.XP, "today", s.state.Today.Date)
	return nil
}

func (s *service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

func (s *service) today() string {
	return s.now().Format(domain.DateLayout)
}

// commit saves next and only then makes it the current state. A save whose
// rotation failed still counts: the record is durable.
func (s *service) commit(ctx context.Context, next domain.AppState) error {
	if err := s.store.SaveState(ctx, next); err != nil {
		if !errors.Is(err, storage.ErrRotationAborted) {
			return err
		}
		logger.FromContext(ctx).Warn(LogMsgRotationFailed, "error", err)
	}
	s.state = next
	s.recordAvatarGauges()
	return nil
}

func (s *service) recordAvatarGauges() {
	metrics.AvatarLevel.Set(float64(s.state.Avatar.Level))
	metrics.AvatarXP.Set(float64(s.state.Avatar.XP))
}

// withToday returns a clone of the current state with an open day
func (s *service) withToday() domain.AppState {
	next := s.state.Clone()
	if next.Today == nil {
		day := domain.NewDayProgress(s.now())
		next.Today = &day
	}
	return next
}

func (s *service) State(ctx context.Context) (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return domain.AppState{}, err
	}
	return s.state.Clone(), nil
}

// RecordMeal grades the meal with the configured analyzer and adds it to today
func (s *service) RecordMeal(ctx context.Context, input domain.MealInput) (domain.Meal, error) {
	if err := s.validator.ValidateStruct(input); err != nil {
		return domain.Meal{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if !hasText(input.Text) && !hasText(input.PhotoRef) {
		return domain.Meal{}, fmt.Errorf("%w: a meal needs a text or a photo", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Meal{}, err
	}

	meal := domain.Meal{
		ID:           s.newID(),
		Time:         s.now(),
		PhotoRef:     input.PhotoRef,
		Text:         input.Text,
		KcalEstimate: input.KcalEstimate,
		Quality:      domain.MealNeutral,
	}
	if input.Quality != nil {
		meal.Quality = *input.Quality
	}
	analysis := s.analyzerFor(s.state.Settings).Analyze(ctx, meal)
	meal.KcalEstimate = analysis.Kcal
	meal.Quality = analysis.Quality

	next := s.withToday()
	next.Today.Meals = append(next.Today.Meals, meal)
	if err := s.commit(ctx, next); err != nil {
		return domain.Meal{}, err
	}

	metrics.MealsRecorded.WithLabelValues(string(meal.Quality)).Inc()
	logger.FromContext(ctx).Info(LogMsgMealRecorded, "meal_id", meal.ID, "quality", meal.Quality, "kcal", meal.KcalEstimate)
	return meal, nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// SyncHealth stores today's provider stats and walks the journey forward by the
// steps gained since the previous sync.
func (s *service) SyncHealth(ctx context.Context) (SyncResult, error) {
	if err := s.health.RequestAuthorization(ctx); err != nil {
		return SyncResult{}, err
	}
	stats, err := s.health.ReadTodayStats(ctx)
	if err != nil {
		return SyncResult{}, err
	}
	if err := s.validator.ValidateStruct(stats); err != nil {
		return SyncResult{}, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return SyncResult{}, err
	}

	next := s.withToday()
	added := max(0, stats.Steps-next.Today.SyncedSteps)
	next.Today.HealthStats = &stats
	next.Today.SyncedSteps = max(next.Today.SyncedSteps, stats.Steps)

	next, unlocked := engine.AdvanceJourney(next, added)
	if err := s.commit(ctx, next); err != nil {
		return SyncResult{}, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgHealthSynced, "steps", stats.Steps, "steps_added", added)
	s.recordUnlocked(ctx, unlocked)

	return SyncResult{
		Stats:      stats.Clone(),
		StepsAdded: added,
		Unlocked:   nonNil(unlocked),
		Journey:    next.Journey.Clone(),
	}, nil
}

func (s *service) recordUnlocked(ctx context.Context, unlocked []string) {
	log := logger.FromContext(ctx)
	for _, dest := range unlocked {
		metrics.DestinationsUnlocked.Inc()
		log.Info(LogMsgDestinationUnlocked, "destination", dest)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (s *service) Explore(ctx context.Context, choiceHealthy bool) (ExploreResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return ExploreResult{}, err
	}

	next, outcome := s.engine.Explore(s.state, choiceHealthy)
	if err := s.commit(ctx, next); err != nil {
		return ExploreResult{}, err
	}

	metrics.Explorations.WithLabelValues(string(outcome)).Inc()
	logger.FromContext(ctx).Info(LogMsgExplored, "healthy", choiceHealthy, "outcome", outcome)

	return ExploreResult{
		Outcome: outcome,
		Avatar:  next.Clone().Avatar,
		Journey: next.Journey.Clone(),
	}, nil
}

func (s *service) CloseDay(ctx context.Context) (DayCloseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return DayCloseResult{}, err
	}
	return s.closeDayLocked(ctx)
}

// closeDayLocked scores the open day, archives it as a DailyLog and opens the next one.
// Order: meal evaluation, health deltas, boss progress, daily tick.
func (s *service) closeDayLocked(ctx context.Context) (DayCloseResult, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	next := s.withToday()
	day := next.Today.Clone()
	stats := day.Stats()

	eval := engine.EvaluateMeals(day.Meals)
	next = engine.ApplyMealEvaluation(next, eval)

	deltas := s.engine.ApplyHealthStats(stats)
	next = engine.ApplyDeltas(next, deltas)

	next, boss := engine.UpdateBossProgress(next, deltas.BossDamagePercent > 0)
	next, levelUp := engine.TickDailyClose(next)

	entry := domain.DailyLog{
		Date:        day.Date,
		Meals:       day.Meals,
		HealthStats: stats,
		BadgeDaily:  eval.BadgeDaily,
		TotalKcal:   eval.TotalKcal,
		ClosedAt:    now,
	}
	if err := s.store.SaveDailyLog(ctx, entry); err != nil {
		if !errors.Is(err, storage.ErrRotationAborted) {
			return DayCloseResult{}, err
		}
		log.Warn(LogMsgRotationFailed, "error", err)
	}

	opened := domain.DayProgress{Date: nextDate(day.Date, now), Meals: []domain.Meal{}}
	next.Today = &opened
	if err := s.commit(ctx, next); err != nil {
		return DayCloseResult{}, err
	}

	metrics.DaysClosed.WithLabelValues(string(eval.BadgeDaily)).Inc()
	log.Info(LogMsgDayClosed, "date", entry.Date, "badge", entry.BadgeDaily, "total_kcal", entry.TotalKcal,
		"xp_delta", deltas.XPDelta, "hp_delta", deltas.HPDelta, "loot", len(deltas.Loot))
	if boss.Victory {
		metrics.BossVictories.Inc()
		log.Info(LogMsgBossVictory, "boss", next.Boss.Name)
	}
	if levelUp {
		log.Info(LogMsgLevelUp, "level", next.Avatar.Level, "hp_max", next.Avatar.HPMax)
	}

	result := DayCloseResult{
		Log:         entry.Clone(),
		Evaluation:  eval,
		Deltas:      deltas,
		LevelUp:     levelUp,
		BossVictory: boss.Victory,
		BossDefeat:  boss.Defeat,
		State:       next.Clone(),
	}

	if s.renderer != nil {
		rep := newReport(domain.ReportBattle, next, entry.Date, now)
		rep.StepsToday = stats.Steps
		rep.Badge = entry.BadgeDaily
		path, err := s.renderer.SaveReportSnapshot(ctx, rep, now)
		if err != nil {
			log.Warn(LogMsgReportRenderFailed, "kind", rep.Kind, "error", err)
		} else {
			result.ReportPath = path
		}
	}
	return result, nil
}

// nextDate is the day after closed, or today when the closed day is further behind
func nextDate(closed string, now time.Time) string {
	today := now.Format(domain.DateLayout)
	t, err := time.ParseInLocation(domain.DateLayout, closed, now.Location())
	if err != nil {
		return today
	}
	following := t.AddDate(0, 0, 1).Format(domain.DateLayout)
	if following < today {
		return today
	}
	return following
}

// UpdateSettings validates and persists settings, then applies the new retention
// with an immediate rotation pass so a lowered quota takes effect.
func (s *service) UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	if err := s.validator.ValidateSettings(settings); err != nil {
		return domain.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Settings{}, err
	}

	next := s.state.Clone()
	next.Settings = settings
	if err := s.commit(ctx, next); err != nil {
		return domain.Settings{}, err
	}

	log := logger.FromContext(ctx)
	s.store.SetRetention(settings.StorageQuotaMB, settings.KeepDaysMin)
	if _, err := s.store.RotateStorageIfNeeded(ctx); err != nil {
		log.Warn(LogMsgRotationFailed, "error", err)
	}

	log.Info(LogMsgSettingsUpdated, "quota_mb", settings.StorageQuotaMB, "keep_min", settings.KeepDaysMin,
		"notifications", settings.NotificationsEnabled, "cloud_analyzer", settings.UseOpenAIAnalyzer)
	return settings, nil
}

func (s *service) Usage(ctx context.Context) (domain.StorageUsage, error) {
	return s.store.CurrentUsage(ctx)
}

func (s *service) Rotate(ctx context.Context) (domain.RotationResult, error) {
	return s.store.RotateStorageIfNeeded(ctx)
}

func (s *service) ExportJSON(ctx context.Context) ([]byte, error) {
	return s.store.ExportState(ctx)
}

func (s *service) ExportYAML(ctx context.Context) (string, error) {
	return s.store.ExportStateYAML(ctx)
}

func (s *service) ExportToFolder(ctx context.Context, format storage.ExportFormat) (string, error) {
	return s.store.ExportToFolder(ctx, format)
}

// Import replaces the canonical record and reloads it as the current state
func (s *service) Import(ctx context.Context, data []byte) (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ImportState(ctx, data); err != nil {
		return domain.AppState{}, err
	}
	if err := s.loadLocked(ctx); err != nil {
		return domain.AppState{}, err
	}

	logger.FromContext(ctx).Info(LogMsgStateImported, "level", s.state.Avatar.Level)
	return s.state.Clone(), nil
}

func (s *service) DailyLog(ctx context.Context, date string) (domain.DailyLog, error) {
	return s.store.DailyLog(ctx, date)
}

func (s *service) ListDailyLogs(ctx context.Context) ([]string, error) {
	return s.store.ListDailyLogs(ctx)
}

// HandleReport logs a summary of the current state for a scheduled report
func (s *service) HandleReport(ctx context.Context, kind domain.ReportKind) error {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	state := s.state.Clone()
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	if !state.Settings.NotificationsEnabled {
		log.Debug(LogMsgReportSkipped, "kind", kind)
		return nil
	}

	date := s.today()
	if state.Today != nil {
		date = state.Today.Date
	}
	rep := newReport(kind, state, date, s.now())
	log.Info(LogMsgDailyReport, "kind", kind, "summary", report.Summary(rep))
	return nil
}

func newReport(kind domain.ReportKind, state domain.AppState, date string, now time.Time) domain.Report {
	steps := state.Journey.StepsToday
	if state.Today != nil && state.Today.HealthStats != nil {
		steps = state.Today.HealthStats.Steps
	}
	return domain.Report{
		Kind:        kind,
		Date:        date,
		GeneratedAt: now,
		Level:       state.Avatar.Level,
		XP:          state.Avatar.XP,
		HPCurrent:   state.Avatar.HPCurrent,
		HPMax:       state.Avatar.HPMax,
		BossName:    state.Boss.Name,
		BossHP:      state.Boss.HPPercent,
		Environment: state.Journey.Environment,
		Destination: state.Journey.CurrentDestination,
		StepsToday:  steps,
	}
}
