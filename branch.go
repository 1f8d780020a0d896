package genconn

import (
	"github.com/google/uuid"
)

// BranchID - идентификатор ветви транзакции, связывающий работу участника с решением координатора.
// Сравнивается по значению; нулевое значение не является допустимым идентификатором.
type BranchID struct {
	id uuid.UUID
}

// NewBranchID возвращает новый упорядоченный по времени (UUIDv7) идентификатор.
func NewBranchID() BranchID {
	return BranchID{id: uuid.Must(uuid.NewV7())}
}

// ParseBranchID разбирает строковое представление, полученное от [BranchID.String].
func ParseBranchID(s string) (BranchID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return BranchID{}, err
	}
	return BranchID{id: id}, nil
}

func (b BranchID) IsZero() bool {
	return b.id == uuid.Nil
}

func (b BranchID) String() string {
	return b.id.String()
}

func (b BranchID) MarshalText() ([]byte, error) {
	return b.id.MarshalText()
}

func (b *BranchID) UnmarshalText(data []byte) error {
	return b.id.UnmarshalText(data)
}
