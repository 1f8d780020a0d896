package demo

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/boltdb/bolt"
	"github.com/sirupsen/logrus"

	genconn "github.com/qbixus/genconn-go"
	"github.com/qbixus/genconn-go/internal"
)

var (
	ErrForeignKey     = errors.New("#JOURNAL_FOREIGN_KEY")
	ErrBranchFinished = errors.New("#JOURNAL_BRANCH_FINISHED")
)

var (
	personBucket  = []byte("person")
	addressBucket = []byte("address")
)

// Address - строка адреса, ссылающаяся на персону.
type Address struct {
	PersonID uint64 `json:"person_id"`
	Line     string `json:"line"`
}

// Journal - база данных демонстрации на bolt с таблицами person и address. Изменения делаются через
// [JournalBranch] и видны только после фиксации транзакции.
type Journal struct {
	db     *bolt.DB
	logger logrus.FieldLogger
}

// OpenJournal открывает (или создает) файл журнала.
func OpenJournal(path string, logger logrus.FieldLogger) (*Journal, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open journal %q: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{personBucket, addressBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init journal %q: %w", path, err)
	}
	return &Journal{db: db, logger: internal.EnsureLogger(logger).WithField("component", "journal")}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Begin присоединяет к coord новую ветвь журнала.
func (j *Journal) Begin(coord genconn.Coordinator) (*JournalBranch, error) {
	if coord == nil || !coord.Active() {
		return nil, genconn.ErrNoActiveTransaction
	}
	b := &JournalBranch{j: j}
	if err := coord.Enlist(b); err != nil {
		return nil, fmt.Errorf("enlist journal: %w", err)
	}
	return b, nil
}

// Person возвращает имя зафиксированной персоны.
func (j *Journal) Person(id uint64) (name string, ok bool, err error) {
	err = j.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(personBucket).Get(itob(id)); v != nil {
			name, ok = string(v), true
		}
		return nil
	})
	return name, ok, err
}

// Addresses возвращает все зафиксированные адреса.
func (j *Journal) Addresses() ([]Address, error) {
	var out []Address
	err := j.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(addressBucket).ForEach(func(_, v []byte) error {
			var a Address
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			out = append(out, a)
			return nil
		})
	})
	return out, err
}

// Count возвращает число зафиксированных персон и адресов.
func (j *Journal) Count() (persons, addresses int, err error) {
	err = j.db.View(func(tx *bolt.Tx) error {
		persons = tx.Bucket(personBucket).Stats().KeyN
		addresses = tx.Bucket(addressBucket).Stats().KeyN
		return nil
	})
	return persons, addresses, err
}

// ---

// JournalBranch - ветвь журнала в транзакции, реализует [genconn.Resource]. Накапливает вставки до фиксации.
type JournalBranch struct {
	j *Journal

	mu        sync.Mutex
	persons   map[uint64]string
	addresses []Address
	finished  bool
}

// InsertPerson добавляет персону и возвращает ее идентификатор. Идентификатор выделяется сразу и при отмене не
// переиспользуется.
func (b *JournalBranch) InsertPerson(name string) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return 0, ErrBranchFinished
	}
	var id uint64
	err := b.j.db.Update(func(tx *bolt.Tx) error {
		var err error
		id, err = tx.Bucket(personBucket).NextSequence()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("insert person: %w", err)
	}
	if b.persons == nil {
		b.persons = make(map[uint64]string)
	}
	b.persons[id] = name
	b.j.logger.WithField("person", id).Debug("person staged")
	return id, nil
}

// InsertAddress добавляет адрес персоны personID. Возвращает ErrForeignKey, если такой персоны нет ни среди
// зафиксированных, ни среди добавленных в этой ветви.
func (b *JournalBranch) InsertAddress(personID uint64, line string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return ErrBranchFinished
	}
	err := b.j.db.View(func(tx *bolt.Tx) error {
		return b.checkPerson(tx, personID)
	})
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	b.addresses = append(b.addresses, Address{PersonID: personID, Line: line})
	return nil
}

// Prepare реализует [genconn.Resource.Prepare].
func (b *JournalBranch) Prepare(context.Context) (genconn.Vote, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.persons) == 0 && len(b.addresses) == 0 {
		return genconn.VoteReadOnly, nil
	}
	if err := b.j.db.View(b.checkAll); err != nil {
		return genconn.VoteReady, err
	}
	return genconn.VoteReady, nil
}

// Commit реализует [genconn.Resource.Commit]. Все вставки записываются одной транзакцией bolt.
func (b *JournalBranch) Commit(_ context.Context, onePhase bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return nil
	}
	b.finished = true
	persons, addresses := b.persons, b.addresses
	b.persons, b.addresses = nil, nil

	err := b.j.db.Update(func(tx *bolt.Tx) error {
		if onePhase {
			if err := b.checkStaged(tx, persons, addresses); err != nil {
				return err
			}
		}
		pb := tx.Bucket(personBucket)
		for id, name := range persons {
			if err := pb.Put(itob(id), []byte(name)); err != nil {
				return err
			}
		}
		ab := tx.Bucket(addressBucket)
		for _, a := range addresses {
			seq, err := ab.NextSequence()
			if err != nil {
				return err
			}
			v, err := json.Marshal(a)
			if err != nil {
				return err
			}
			if err := ab.Put(itob(seq), v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit journal: %w", err)
	}
	b.j.logger.WithField("persons", len(persons)).WithField("addresses", len(addresses)).Info("journal committed")
	return nil
}

// Rollback реализует [genconn.Resource.Rollback].
func (b *JournalBranch) Rollback(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return nil
	}
	b.finished = true
	b.persons, b.addresses = nil, nil
	b.j.logger.Info("journal rolled back")
	return nil
}

// checkAll вызывается с удерживаемым b.mu.
func (b *JournalBranch) checkAll(tx *bolt.Tx) error {
	return b.checkStaged(tx, b.persons, b.addresses)
}

func (b *JournalBranch) checkStaged(tx *bolt.Tx, persons map[uint64]string, addresses []Address) error {
	for _, a := range addresses {
		if _, ok := persons[a.PersonID]; ok {
			continue
		}
		if tx.Bucket(personBucket).Get(itob(a.PersonID)) == nil {
			return fmt.Errorf("%w: address -> person %d", ErrForeignKey, a.PersonID)
		}
	}
	return nil
}

// checkPerson вызывается с удерживаемым b.mu.
func (b *JournalBranch) checkPerson(tx *bolt.Tx, id uint64) error {
	if _, ok := b.persons[id]; ok {
		return nil
	}
	if tx.Bucket(personBucket).Get(itob(id)) == nil {
		return fmt.Errorf("%w: person %d", ErrForeignKey, id)
	}
	return nil
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
