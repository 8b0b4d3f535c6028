// Package focusmode runs the focus session: a pomodoro or count-up timer
// wrapped in a timed enter/celebrate/leave lifecycle
package focusmode

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/focustab/internal/clock"
	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/notify"
)

const storeTimeout = 2 * time.Second

// persistEvery is the number of ticks between periodic state writes.
const persistEvery = 60

// Store persists the focus session between runs.
type Store interface {
	SaveState(ctx context.Context, state *models.FocusState) error
	// LoadState returns nil without an error when nothing has been saved.
	LoadState(ctx context.Context) (*models.FocusState, error)
	AppendSession(ctx context.Context, record *models.SessionRecord) error
}

// Chime plays the completion sound.
type Chime interface {
	Play() error
}

// Notifier displays system notifications.
type Notifier interface {
	Permission() notify.Permission
	RequestPermission() (notify.Permission, error)
	Notify(title, body string) error
}

// State is a snapshot of the focus session.
type State struct {
	SessionStartTime    time.Time            `json:"sessionStartTime"`
	Quote               Quote                `json:"quote"`
	Celebration         Celebration          `json:"celebration"`
	Phase               Phase                `json:"phase"`
	FocusTask           string               `json:"focusTask"`
	TimerMode           models.TimerMode     `json:"timerMode"`
	PomodoroPhase       models.PomodoroPhase `json:"pomodoroPhase"`
	Settings            models.Settings      `json:"settings"`
	TimerSeconds        int                  `json:"timerSeconds"`
	InitialTimerSeconds int                  `json:"initialTimerSeconds"`
	PomodorosCompleted  int                  `json:"pomodorosCompleted"`
	TotalSessionSeconds int                  `json:"totalSessionSeconds"`
	IsTimerRunning      bool                 `json:"isTimerRunning"`
}

// Controller owns the live focus session. All methods are safe for
// concurrent use; mutations are serialised by a single mutex.
type Controller struct {
	mu    sync.Mutex
	state State

	clock    clock.Clock
	store    Store
	chime    Chime
	notifier Notifier
	log      *slog.Logger
	dispatch func(func())

	sessionCmd string

	// pending is the delayed transition out of the current phase. gen
	// identifies it so that a callback which lost a race with Stop is
	// ignored.
	pending clock.Timer
	gen     uint64

	completing bool
	ticks      int

	subscribers []chan Event
	closed      bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source.
func WithClock(c clock.Clock) Option {
	return func(ctrl *Controller) {
		ctrl.clock = c
	}
}

// WithStore sets where the session is persisted.
func WithStore(s Store) Option {
	return func(ctrl *Controller) {
		ctrl.store = s
	}
}

// WithChime sets the completion sound player.
func WithChime(ch Chime) Option {
	return func(ctrl *Controller) {
		ctrl.chime = ch
	}
}

// WithNotifier sets the notification backend.
func WithNotifier(n Notifier) Option {
	return func(ctrl *Controller) {
		ctrl.notifier = n
	}
}

// WithSettings sets the initial settings.
func WithSettings(s models.Settings) Option {
	return func(ctrl *Controller) {
		ctrl.state.Settings = normaliseSettings(s)
	}
}

// WithTimerMode sets the initial timer mode.
func WithTimerMode(m models.TimerMode) Option {
	return func(ctrl *Controller) {
		if m.Valid() {
			ctrl.state.TimerMode = m
		}
	}
}

// WithSessionCmd sets a command that is executed whenever an interval
// completes.
func WithSessionCmd(cmd string) Option {
	return func(ctrl *Controller) {
		ctrl.sessionCmd = cmd
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(ctrl *Controller) {
		ctrl.log = l
	}
}

// WithDispatcher sets how completion side effects are run. The default runs
// each batch on its own goroutine.
func WithDispatcher(d func(func())) Option {
	return func(ctrl *Controller) {
		ctrl.dispatch = d
	}
}

// New returns a Controller in the idle phase.
func New(opts ...Option) *Controller {
	c := &Controller{
		clock: clock.New(),
		log:   slog.Default(),
		dispatch: func(f func()) {
			go f()
		},
	}

	c.state.Settings = models.DefaultSettings()
	c.state.TimerMode = models.ModePomodoro

	for _, opt := range opts {
		opt(c)
	}

	c.resetLocked()

	return c
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Subscribe returns a channel that receives session events. Events are
// dropped for a subscriber whose buffer is full.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan Event, buffer)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		close(ch)
		return ch
	}

	c.subscribers = append(c.subscribers, ch)

	return ch
}

// Unsubscribe stops delivery to ch and closes it.
func (c *Controller) Unsubscribe(ch <-chan Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sub := range c.subscribers {
		if sub == ch {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			close(sub)

			return
		}
	}
}

// Close cancels any pending transition, persists the session and closes all
// subscriber channels.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.cancelPendingLocked()
	c.persistLocked()

	c.closed = true

	for _, ch := range c.subscribers {
		close(ch)
	}

	c.subscribers = nil
}

// Restore loads persisted settings and timer mode. A session that was in
// progress resumes in the active phase with its timer paused.
func (c *Controller) Restore(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	saved, err := c.store.LoadState(ctx)
	if err != nil {
		return err
	}

	if saved == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if saved.Settings.FocusDuration > 0 {
		c.state.Settings = normaliseSettings(saved.Settings)
	}

	if saved.TimerMode.Valid() {
		c.state.TimerMode = saved.TimerMode
	}

	if c.state.Phase != PhaseIdle {
		return nil
	}

	c.resetTimerLocked()

	if saved.SessionStartTime.IsZero() {
		c.emitLocked(EventSettingsChanged)
		return nil
	}

	c.state.FocusTask = saved.FocusTask
	c.state.PomodorosCompleted = saved.PomodorosCompleted
	c.state.SessionStartTime = saved.SessionStartTime
	c.state.TotalSessionSeconds = c.elapsedLocked()
	c.state.Phase = PhaseActive

	c.log.Info(
		"resumed focus session",
		slog.String("task", saved.FocusTask),
		slog.Time("started", saved.SessionStartTime),
		slog.Int("elapsed_seconds", c.state.TotalSessionSeconds),
	)

	c.emitLocked(EventPhaseChanged)

	return nil
}

// EnterFocusMode starts a new session for the given task. It is ignored
// while a session is already running; a session that is winding down is
// superseded.
func (c *Controller) EnterFocusMode(focusTask string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase.live() {
		c.log.Debug(
			"enter focus mode ignored",
			slog.String("phase", string(c.state.Phase)),
		)

		return
	}

	c.cancelPendingLocked()
	c.resetLocked()

	c.state.FocusTask = focusTask

	c.log.Info("entering focus mode", slog.String("task", focusTask))

	c.enterPhaseLocked(PhaseEntering)
	c.persistLocked()
}

// ExitFocusMode stops the timer and begins the wind-down sequence. It is
// ignored unless a session is running.
func (c *Controller) ExitFocusMode() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Phase.live() {
		return
	}

	c.enterPhaseLocked(PhaseExiting)
}

// SetPhase moves the session to phase p as if it had been reached
// naturally: entry actions run and the automatic successor is scheduled.
func (c *Controller) SetPhase(p Phase) {
	if !p.Valid() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.enterPhaseLocked(p)
}

// enterPhaseLocked switches to p, runs its entry actions and schedules the
// transition out of it.
func (c *Controller) enterPhaseLocked(p Phase) {
	c.cancelPendingLocked()

	if p == PhaseIdle {
		c.resetLocked()
		c.persistLocked()
		c.log.Info("focus mode ended")
		c.emitLocked(EventPhaseChanged)

		return
	}

	prev := c.state.Phase
	c.state.Phase = p

	switch p {
	case PhaseEntering:
		c.startSessionLocked()
	case PhaseTransition:
		c.state.Quote = RandomQuote()
	case PhaseActive:
		c.state.IsTimerRunning = true
	case PhaseExiting:
		// the session is recorded once, when it leaves a live phase
		if prev.live() {
			c.state.IsTimerRunning = false
			c.state.TotalSessionSeconds = c.elapsedLocked()
			c.recordSessionLocked()
			c.persistLocked()
		}
	case PhaseCelebration:
		c.state.Celebration = CelebrationFor(c.state.TotalSessionSeconds)
	}

	if s, ok := successors[p]; ok {
		c.scheduleLocked(s.delay, s.next)
	}

	c.emitLocked(EventPhaseChanged)
}

// startSessionLocked anchors a new session at the current time with a
// fresh timer and no completed pomodoros.
func (c *Controller) startSessionLocked() {
	c.state.PomodoroPhase = models.PhaseFocus
	c.state.PomodorosCompleted = 0
	c.state.TotalSessionSeconds = 0
	c.state.SessionStartTime = c.clock.Now()

	c.completing = false
	c.ticks = 0

	c.resetTimerLocked()
}

// scheduleLocked arranges for the session to move to next after d, unless
// another transition supersedes it first.
func (c *Controller) scheduleLocked(d time.Duration, next Phase) {
	c.cancelPendingLocked()

	gen := c.gen

	c.pending = c.clock.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.closed || gen != c.gen {
			return
		}

		c.pending = nil
		c.enterPhaseLocked(next)
	})
}

func (c *Controller) cancelPendingLocked() {
	c.gen++

	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// resetLocked returns every field except the settings and timer mode to its
// default.
func (c *Controller) resetLocked() {
	settings := c.state.Settings
	mode := c.state.TimerMode

	c.state = State{
		Phase:         PhaseIdle,
		Settings:      settings,
		TimerMode:     mode,
		PomodoroPhase: models.PhaseFocus,
	}

	c.completing = false
	c.ticks = 0

	c.resetTimerLocked()
}

// elapsedLocked returns the whole seconds since the session started,
// measured from the wall clock.
func (c *Controller) elapsedLocked() int {
	if c.state.SessionStartTime.IsZero() {
		return 0
	}

	elapsed := c.clock.Now().Sub(c.state.SessionStartTime)
	if elapsed < 0 {
		return 0
	}

	return int(elapsed / time.Second)
}

func (c *Controller) persistLocked() {
	if c.store == nil {
		return
	}

	saved := &models.FocusState{
		Settings:           c.state.Settings,
		TimerMode:          c.state.TimerMode,
		PomodorosCompleted: c.state.PomodorosCompleted,
	}

	if c.state.Phase.live() {
		saved.SessionStartTime = c.state.SessionStartTime
		saved.TotalSessionSeconds = c.state.TotalSessionSeconds
		saved.FocusTask = c.state.FocusTask
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	err := c.store.SaveState(ctx, saved)
	if err != nil {
		c.log.Warn("unable to persist focus session", slog.Any("error", err))
	}
}

func (c *Controller) recordSessionLocked() {
	if c.store == nil || c.state.SessionStartTime.IsZero() {
		return
	}

	record := newSessionRecord(
		c.state,
		c.state.SessionStartTime.Add(
			time.Duration(c.state.TotalSessionSeconds)*time.Second,
		),
	)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	err := c.store.AppendSession(ctx, record)
	if err != nil {
		c.log.Warn("unable to record focus session", slog.Any("error", err))
	}
}
