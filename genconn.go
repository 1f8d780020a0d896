// Package genconn позволяет включать в двухфазную фиксацию (2PC) произвольных участников, которые сами ничего о
// 2PC не знают: участник выполняет работу под идентификатором ветви транзакции [BranchID], а решение координатора
// доставляется приложению через [CompletionHandler].
package genconn

import (
	"errors"
	"fmt"
)

var (
	ErrTxError          = errors.New("#TX_ILLEGAL_STATE")
	ErrTxAborted        = fmt.Errorf("#TX_ABORTED: %w", ErrTxError)
	ErrCompletionFailed = errors.New("#TX_COMPLETION_FAILED")
	ErrInvalidOperation = errors.New("#TX_INVALID_OPERATION")

	ErrNoActiveTransaction    = errors.New("#TX_NO_ACTIVE_TRANSACTION")
	ErrIllegalStateTransition = errors.New("#SHIM_ILLEGAL_STATE_TRANSITION")
	ErrNoHandler              = errors.New("#SHIM_NO_HANDLER")
)

type contextKey[T any] struct{}
