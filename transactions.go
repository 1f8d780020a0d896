package genconn

import "context"

// Transaction - локальная транзакция с множественными участниками [Resource], взаимодействие с которыми
// производится по протоколу Two Phase Commit (2PC), а для единственного участника - Single Phase Commit (SPC).
type Transaction interface {
	Coordinator

	// SetRollbackOnly помечает транзакцию к отмене: последующая фиксация превратится в отмену.
	// На фазе подготовки 2PC прерывает выполняющуюся фиксацию.
	//
	// Возвращает nil если пометка установлена и ErrTxError если транзакция уже завершена.
	SetRollbackOnly() error

	// Rollback отменяет все изменения в транзакции.
	// Может использоваться конкурентно. На фазе подготовки 2PC также может использоваться вложенно.
	//
	// Возвращает nil если изменения отменены, ErrTxAborted если изменения были отменены ранее, ErrTxError если
	// изменения были зафиксированы ранее, и ErrCompletionFailed вместе с ошибками участников, если часть из них
	// не смогла выполнить отмену.
	Rollback(context.Context) error

	// Status возвращает текущий статус транзакции.
	Status() Status
}

// Status - статус транзакции.
type Status int

const (
	StatusActive Status = iota
	StatusMarkedRollback
	StatusPreparing
	StatusCommitting
	StatusCommitted
	StatusRolledBack
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusMarkedRollback:
		return "marked-rollback"
	case StatusPreparing:
		return "preparing"
	case StatusCommitting:
		return "committing"
	case StatusCommitted:
		return "committed"
	case StatusRolledBack:
		return "rolled-back"
	default:
		return "unknown"
	}
}
