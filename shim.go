package genconn

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/qbixus/genconn-go/internal"
)

// State - состояние [Shim].
type State int

const (
	StateIdle State = iota
	StateEnlisted
	StatePrepared
	StateCommitted
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEnlisted:
		return "enlisted"
	case StatePrepared:
		return "prepared"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled-back"
	default:
		return "unknown"
	}
}

// Shim - ресурс 2PC [Resource] для участника, который умеет только выполнить работу под идентификатором ветви и
// позже узнать о фиксации или отмене. Решение координатора доставляется в [CompletionHandler].
//
// Shim одноразовый: Idle -> Enlisted -> (Prepared) -> Committed | RolledBack. Методы Prepare, Commit и Rollback
// предназначены для координатора; Commit и Rollback допускают повторную доставку.
type Shim struct {
	handler     CompletionHandler
	logger      logrus.FieldLogger
	metrics     *shimMetrics
	newBranchID func() BranchID

	mu       sync.Mutex
	state    State
	branch   BranchID
	coord    Coordinator
	worked   bool
	released bool

	// Упорядочивает доставку Commit и Rollback: повторная доставка дожидается завершения обработчика первой.
	ctlMu sync.Mutex
}

// NewShim создает Shim в состоянии StateIdle.
func NewShim(handler CompletionHandler, opts ...ShimOption) *Shim {
	internal.Assert(handler != nil, "#args: handler")
	options := shimOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.newBranchID == nil {
		options.newBranchID = NewBranchID
	}
	logger := internal.EnsureLogger(options.logger).WithField("component", "shim")
	if options.name != "" {
		logger = logger.WithField("resource", options.name)
	}
	return &Shim{
		handler:     handler,
		logger:      logger,
		metrics:     newShimMetrics(options.meterProvider, options.name, logger),
		newBranchID: options.newBranchID,
	}
}

// Enlist присоединяет Shim к активной транзакции coord под новым идентификатором ветви.
//
// Возвращает ErrNoActiveTransaction если у coord нет активной транзакции, ErrIllegalStateTransition если Shim
// уже использовался, и ошибку coord.Enlist, если координатор отказал. При ошибке Shim остается в StateIdle.
func (s *Shim) Enlist(coord Coordinator) (BranchID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return BranchID{}, s.illegal("enlist")
	}
	if coord == nil || !coord.Active() {
		return BranchID{}, ErrNoActiveTransaction
	}

	branch := s.newBranchID()
	if err := coord.Enlist(s); err != nil {
		return BranchID{}, fmt.Errorf("enlist branch %s: %w", branch, err)
	}

	s.state = StateEnlisted
	s.branch = branch
	s.coord = coord
	s.logger.WithField("branch", branch).Debug("enlisted")
	return branch, nil
}

// Do синхронно выполняет работу участника под идентификатором ветви. Ошибка work возвращается без изменений;
// повторов не выполняется. Допускается несколько вызовов на одну ветвь.
//
// Возвращает ErrIllegalStateTransition, не вызывая work, если Shim не в StateEnlisted или уже освобожден.
func (s *Shim) Do(ctx context.Context, work func(ctx context.Context, id BranchID) error) error {
	s.mu.Lock()
	if s.state != StateEnlisted || s.released {
		err := s.illegal("do work")
		s.mu.Unlock()
		return err
	}
	s.worked = true
	branch := s.branch
	s.mu.Unlock()

	start := time.Now()
	err := work(ctx, branch)
	s.metrics.recordWork(ctx, time.Since(start), err)
	if err != nil {
		s.logger.WithField("branch", branch).WithError(err).Info("participant work failed")
	}
	return err
}

// Execute выполняет work через [Shim.Do] и возвращает ее результат.
func Execute[T any](ctx context.Context, s *Shim, work func(ctx context.Context, id BranchID) (T, error)) (T, error) {
	var result T
	err := s.Do(ctx, func(ctx context.Context, id BranchID) error {
		var err error
		result, err = work(ctx, id)
		return err
	})
	return result, err
}

// Prepare реализует [Resource.Prepare]. Голосует VoteReadOnly, если работа не выполнялась, иначе VoteReady.
func (s *Shim) Prepare(ctx context.Context) (Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEnlisted {
		return VoteReady, s.illegal("prepare")
	}
	s.state = StatePrepared

	vote := VoteReady
	if !s.worked {
		vote = VoteReadOnly
	}
	s.logger.WithField("branch", s.branch).WithField("vote", vote).Debug("prepared")
	return vote, nil
}

// Commit реализует [Resource.Commit]. Требует StatePrepared, либо StateEnlisted при onePhase. Повторная доставка
// в StateCommitted ничего не делает. Ошибка обработчика возвращается координатору и не повторяется.
func (s *Shim) Commit(ctx context.Context, onePhase bool) error {
	return s.complete(ctx, StateCommitted, func(from State) bool {
		return from == StatePrepared || (onePhase && from == StateEnlisted)
	})
}

// Rollback реализует [Resource.Rollback]. Допустим из StateEnlisted и StatePrepared. Повторная доставка в
// StateRolledBack ничего не делает.
func (s *Shim) Rollback(ctx context.Context) error {
	return s.complete(ctx, StateRolledBack, func(from State) bool {
		return from == StateEnlisted || from == StatePrepared
	})
}

// Release прекращает связь с координатором, если Shim еще не получил решение. Новая работа после этого не
// принимается, но решение координатора по-прежнему будет доставлено. Безопасно вызывать многократно.
func (s *Shim) Release() error {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return nil
	}
	s.released = true
	coord, branch := s.coord, s.branch
	s.mu.Unlock()

	if coord == nil {
		return nil
	}
	if err := coord.Delist(s); err != nil {
		return fmt.Errorf("delist branch %s: %w", branch, err)
	}
	s.logger.WithField("branch", branch).Debug("released")
	return nil
}

func (s *Shim) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// BranchID возвращает идентификатор ветви или нулевое значение до Enlist.
func (s *Shim) BranchID() BranchID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.branch
}

func (s *Shim) complete(ctx context.Context, target State, allowed func(from State) bool) error {
	s.ctlMu.Lock()
	defer s.ctlMu.Unlock()

	outcome := "commit"
	if target == StateRolledBack {
		outcome = "rollback"
	}

	s.mu.Lock()
	if s.state == target {
		branch := s.branch
		s.mu.Unlock()
		s.metrics.recordRedelivery(ctx, outcome)
		s.logger.WithField("branch", branch).Debugf("%s redelivered, ignored", outcome)
		return nil
	}
	if !allowed(s.state) {
		err := s.illegal(outcome)
		s.mu.Unlock()
		return err
	}

	// С этого момента Do завершается с ошибкой, а повторная доставка ничего не делает
	s.state = target
	s.coord = nil
	branch := s.branch
	s.mu.Unlock()

	var err error
	if target == StateCommitted {
		err = s.handler.OnCommit(ctx, branch)
	} else {
		err = s.handler.OnRollback(ctx, branch)
	}
	s.metrics.recordCompletion(ctx, outcome, err)

	log := s.logger.WithField("branch", branch)
	if err != nil {
		log.WithError(err).Warnf("%s handler failed", outcome)
		return fmt.Errorf("%s branch %s: %w", outcome, branch, err)
	}
	log.Debugf("%s delivered", outcome)
	return nil
}

// illegal вызывается с удерживаемым s.mu.
func (s *Shim) illegal(op string) error {
	if s.released && s.state == StateEnlisted {
		return fmt.Errorf("%w: %s after release", ErrIllegalStateTransition, op)
	}
	return fmt.Errorf("%w: %s in state %s", ErrIllegalStateTransition, op, s.state)
}
