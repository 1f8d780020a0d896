package genconn

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/qbixus/genconn-go/internal"
)

// CommittableTransaction - локальная транзакция [Transaction], изменения в которой могут быть зафиксированы.
// Нулевое значение - активная транзакция без участников. Журнал восстановления не ведется.
type CommittableTransaction struct {
	mu           sync.Mutex
	status       txStatus
	rollbackOnly bool
	enls         []*enlistment

	// Для исключения конкурирующих друг с другом Commit и Rollback, в дополнение к mu
	ctlMu sync.Mutex
}

// Active реализует [Coordinator.Active].
func (tx *CommittableTransaction) Active() bool {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	return tx.status == txStatusActive || tx.isPreparing()
}

// Enlist реализует [Coordinator.Enlist].
// Может использоваться конкурентно. На фазе подготовки 2PC также может использоваться вложенно - присоединенный
// ресурс будет подготовлен в том же цикле подготовки. Повторное присоединение ресурса восстанавливает его связь.
// Тип r должен быть сравнимым.
//
// Возвращает nil если ресурс был присоединен и ErrTxError если статус транзакции не допускает новые
// присоединения.
func (tx *CommittableTransaction) Enlist(r Resource) error {
	internal.Assert(r != nil, "#args: r")

	tx.mu.Lock()
	defer tx.mu.Unlock()

	if !(tx.status == txStatusActive || tx.isPreparing()) {
		return ErrTxError
	}
	if enl := tx.find(r); enl != nil {
		enl.associated = true
		return nil
	}
	tx.enls = append(tx.enls, &enlistment{res: r, associated: true})
	return nil
}

// Delist реализует [Coordinator.Delist].
//
// Возвращает nil если связь прекращена или транзакция уже завершена, и ErrTxError если ресурс не был
// присоединен или уже отсоединен.
func (tx *CommittableTransaction) Delist(r Resource) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	if tx.isTerminated() {
		return nil
	}
	enl := tx.find(r)
	if enl == nil || !enl.associated {
		return ErrTxError
	}
	enl.associated = false
	return nil
}

// SetRollbackOnly реализует [Transaction.SetRollbackOnly].
func (tx *CommittableTransaction) SetRollbackOnly() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	switch {
	case tx.status == txStatusActive:
		tx.rollbackOnly = true
	case tx.isPreparing():
		tx.status = txStatusPrepareAborted
	default:
		return ErrTxError
	}
	return nil
}

// Status реализует [Transaction.Status].
func (tx *CommittableTransaction) Status() Status {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	switch tx.status {
	case txStatusActive:
		if tx.rollbackOnly {
			return StatusMarkedRollback
		}
		return StatusActive
	case txStatusPreparing, txStatusPrepareAborted:
		return StatusPreparing
	case txStatusFinalizing:
		return StatusCommitting
	case txStatusCommitted:
		return StatusCommitted
	default:
		return StatusRolledBack
	}
}

// Commit фиксирует изменения в транзакции.
// Единственный участник фиксируется по протоколу SPC без подготовки. Иначе фиксация выполняется поэтапно:
// 1) фаза подготовки 2PC в порядке присоединения, включая вложенные присоединения; участники, проголосовавшие
// VoteReadOnly, во второй фазе не участвуют; 2) фаза фиксации или отмены 2PC. Ошибки второй фазы не прерывают
// доставку решения остальным участникам.
// Блокируется на все время выполнения фиксации. Может использоваться конкурентно.
// Допускает вложенное использование Rollback, SetRollbackOnly и Enlist на фазе подготовки 2PC.
//
// Возвращает nil если изменения зафиксированы, ErrTxAborted (вместе с причиной) если изменения отменены или были
// отменены ранее, ErrTxError если изменения были зафиксированы ранее, и ErrCompletionFailed вместе с ошибками
// участников, если решение о фиксации принято, но часть участников не смогла его выполнить.
func (tx *CommittableTransaction) Commit(ctx context.Context) error {
	tx.ctlMu.Lock()
	defer tx.ctlMu.Unlock()

	tx.mu.Lock()

	// ... т.к. tx.ctlMu исключает конкурирующие вызовы Commit и Rollback
	internal.Assert(tx.isTerminated() || tx.status == txStatusActive)

	// Проверяем текущее состояние
	if tx.status == txStatusAborted {
		tx.mu.Unlock()
		return ErrTxAborted
	}
	if tx.isTerminated() {
		tx.mu.Unlock()
		return ErrTxError
	}

	// Формируем рабочий набор данных
	enls := append(make([]*enlistment, 0, len(tx.enls)+len(tx.enls)/2+1), tx.enls...)

	// ... и проверяем возможность быстрого завершения
	if tx.rollbackOnly {
		tx.status = txStatusAborted
		tx.clear()
		tx.mu.Unlock()
		return aborted(nil, rollbackAll(ctx, enls)...)
	}
	if len(enls) == 0 {
		tx.status = txStatusCommitted
		tx.clear()
		tx.mu.Unlock()
		return nil
	}
	if len(enls) == 1 {
		return tx.commitSinglePhase(ctx, enls[0])
	}

	// Шаг 1: 2PC Prepare

	tx.status = txStatusPreparing

	var (
		shouldAbort bool
		cause       error
	)
	for i := 0; !shouldAbort && i < len(enls); i++ {
		tx.mu.Unlock()

		vote, err := enls[i].res.Prepare(ctx)

		tx.mu.Lock()

		switch {
		case err != nil:
			shouldAbort = true
			cause = fmt.Errorf("prepare: %w", err)
		case vote == VoteReadOnly:
			enls[i].readOnly = true
		}

		// Учитываем возможные вложенные присоединения...
		if len(tx.enls) > len(enls) {
			enls = append(enls, tx.enls[len(enls):]...)
		}

		// ... и вложенные Rollback
		if tx.status == txStatusPrepareAborted {
			shouldAbort = true
		}
	}

	// Шаг 2: 2PC Commit/Rollback

	// Фиксируем результирующий статус транзакции
	if shouldAbort {
		tx.status = txStatusAborted
	} else {
		tx.status = txStatusCommitted
	}

	// Высвобождаем накопленные ресурсы - все необходимое есть в рабочем наборе данных
	tx.clear()

	tx.mu.Unlock()

	if shouldAbort {
		return aborted(cause, rollbackAll(ctx, enls)...)
	}

	var errs []error
	for _, enl := range enls {
		if enl.readOnly {
			continue
		}
		if err := enl.res.Commit(ctx, false); err != nil {
			errs = append(errs, err)
		}
	}
	return completionFailed(errs)
}

// Rollback реализует [Transaction.Rollback].
func (tx *CommittableTransaction) Rollback(ctx context.Context) error {
	// Отрабатываем случай вложенного (и неотличимого конкурентного) вызова во время 2PC Prepare
	tx.mu.Lock()
	if tx.isPreparing() {
		tx.status = txStatusPrepareAborted
		tx.mu.Unlock()
		return nil
	}
	// ... и вложенного вызова на второй фазе, когда tx.ctlMu удерживается Commit
	if err := tx.terminatedErr(); err != nil {
		tx.mu.Unlock()
		return err
	}
	tx.mu.Unlock()

	tx.ctlMu.Lock()
	defer tx.ctlMu.Unlock()

	tx.mu.Lock()

	// ... т.к. tx.ctlMu исключает конкурирующие вызовы Commit и Rollback
	internal.Assert(tx.isTerminated() || tx.status == txStatusActive)

	if err := tx.terminatedErr(); err != nil {
		tx.mu.Unlock()
		return err
	}

	// Единственный шаг: 2PC/SPC Rollback

	enls := tx.enls
	tx.status = txStatusAborted
	tx.clear()

	tx.mu.Unlock()

	return completionFailed(rollbackAll(ctx, enls))
}

// commitSinglePhase вызывается с удерживаемым tx.mu и освобождает его.
func (tx *CommittableTransaction) commitSinglePhase(ctx context.Context, enl *enlistment) error {
	tx.status = txStatusFinalizing
	tx.mu.Unlock()

	err := enl.res.Commit(ctx, true)

	tx.mu.Lock()
	tx.status = txStatusCommitted
	tx.clear()
	tx.mu.Unlock()

	if err != nil {
		return completionFailed([]error{err})
	}
	return nil
}

func (tx *CommittableTransaction) find(r Resource) *enlistment {
	for _, enl := range tx.enls {
		if enl.res == r {
			return enl
		}
	}
	return nil
}

func (tx *CommittableTransaction) terminatedErr() error {
	switch tx.status {
	case txStatusAborted:
		return ErrTxAborted
	case txStatusCommitted:
		return ErrTxError
	default:
		return nil
	}
}

func (tx *CommittableTransaction) isTerminated() bool {
	return tx.status == txStatusCommitted || tx.status == txStatusAborted
}

func (tx *CommittableTransaction) isPreparing() bool {
	return tx.status == txStatusPreparing || tx.status == txStatusPrepareAborted
}

func (tx *CommittableTransaction) clear() {
	tx.enls = nil
	tx.rollbackOnly = false
}

// ---

func rollbackAll(ctx context.Context, enls []*enlistment) []error {
	var errs []error
	for _, enl := range enls {
		if enl.readOnly {
			continue
		}
		if err := enl.res.Rollback(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func aborted(cause error, errs ...error) error {
	if cause == nil && len(errs) == 0 {
		return ErrTxAborted
	}
	return errors.Join(append([]error{ErrTxAborted, cause}, errs...)...)
}

func completionFailed(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrCompletionFailed}, errs...)...)
}

// ---

type enlistment struct {
	res        Resource
	associated bool
	readOnly   bool
}

type txStatus int

const (
	txStatusActive txStatus = iota
	txStatusPreparing
	txStatusPrepareAborted
	txStatusFinalizing
	txStatusCommitted
	txStatusAborted
)
