package genconn

import "context"

// Vote - ответ ресурса на фазе подготовки 2PC.
type Vote int

const (
	// VoteReady - ресурс готов зафиксировать изменения и ждет решения координатора.
	VoteReady Vote = iota
	// VoteReadOnly - ресурс ничего не менял; на второй фазе он не участвует.
	VoteReadOnly
)

func (v Vote) String() string {
	switch v {
	case VoteReady:
		return "ready"
	case VoteReadOnly:
		return "read-only"
	default:
		return "unknown"
	}
}

// Resource - участник 2PC в том виде, в котором его видит координатор.
// Координатор вызывает методы одного ресурса последовательно; Commit и Rollback могут быть доставлены повторно.
type Resource interface {
	// Prepare голосует за фиксацию. Ошибка означает голос за отмену.
	Prepare(ctx context.Context) (Vote, error)
	// Commit фиксирует изменения. onePhase указывает, что координатор пропустил фазу подготовки.
	Commit(ctx context.Context, onePhase bool) error
	// Rollback отменяет изменения.
	Rollback(ctx context.Context) error
}

// Coordinator - граница координатора, которой пользуется [Shim].
type Coordinator interface {
	// Active сообщает, есть ли активная транзакция, в которую можно присоединиться.
	Active() bool
	// Enlist присоединяет ресурс к активной транзакции.
	Enlist(r Resource) error
	// Delist прекращает связь ресурса с вызывающим контекстом. Ресурс по-прежнему получает Commit или Rollback.
	Delist(r Resource) error
}
