// Package demo содержит демонстрационное приложение: три нетранзакционных сервиса и журнал на bolt, связанные
// одной транзакцией через genconn.
package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	genconn "github.com/qbixus/genconn-go"
	"github.com/qbixus/genconn-go/internal"
)

var ErrRejected = errors.New("#DEMO_REJECTED")

const (
	AcquirerName      = "acquirer"
	BookingSystemName = "booking"
	LetterWriterName  = "letter"
)

// Service - сервис, который резервирует работу под идентификатором ветви и позже подтверждает или отменяет ее.
// Может использоваться конкурентно.
type Service struct {
	name   string
	prefix string
	fail   bool
	logger logrus.FieldLogger

	mu        sync.Mutex
	seq       int
	pending   map[genconn.BranchID]string
	confirmed map[genconn.BranchID]string
	cancelled map[genconn.BranchID]string
}

type ServiceOption func(*Service)

// WithFailure заставляет Reserve всегда завершаться ошибкой.
func WithFailure(fail bool) ServiceOption {
	return func(s *Service) { s.fail = fail }
}

func WithServiceLogger(logger logrus.FieldLogger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// NewAcquirer резервирует деньги.
func NewAcquirer(opts ...ServiceOption) *Service {
	return newService(AcquirerName, "payment", opts)
}

// NewBookingSystem резервирует билеты.
func NewBookingSystem(opts ...ServiceOption) *Service {
	return newService(BookingSystemName, "ticket", opts)
}

// NewLetterWriter ставит в очередь отправку письма.
func NewLetterWriter(opts ...ServiceOption) *Service {
	return newService(LetterWriterName, "letter", opts)
}

func newService(name, prefix string, opts []ServiceOption) *Service {
	s := &Service{
		name:      name,
		prefix:    prefix,
		pending:   make(map[genconn.BranchID]string),
		confirmed: make(map[genconn.BranchID]string),
		cancelled: make(map[genconn.BranchID]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = internal.EnsureLogger(s.logger).WithField("component", name)
	return s
}

func (s *Service) Name() string {
	return s.name
}

// Reserve резервирует работу для ref под ветвью id и возвращает ответ сервиса. Ссылка вида FAIL<NAME>
// (например, FAILACQUIRER) отклоняется с ErrRejected.
func (s *Service) Reserve(ctx context.Context, id genconn.BranchID, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.fail || ref == "FAIL"+strings.ToUpper(s.name) {
		return "", fmt.Errorf("%w: %s refused %q", ErrRejected, s.name, ref)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	resp := fmt.Sprintf("%s-%d", s.prefix, s.seq)
	s.pending[id] = resp
	s.logger.WithField("branch", id).WithField("ref", ref).Info("reserved ", resp)
	return resp, nil
}

// Handler возвращает обработчик, подтверждающий или отменяющий резерв ветви.
func (s *Service) Handler() genconn.CompletionHandler {
	return genconn.HandlerFuncs{Commit: s.confirm, Rollback: s.cancel}
}

func (s *Service) confirm(_ context.Context, id genconn.BranchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, ok := s.pending[id]
	if !ok {
		return nil
	}
	delete(s.pending, id)
	s.confirmed[id] = resp
	s.logger.WithField("branch", id).Info("confirmed ", resp)
	return nil
}

func (s *Service) cancel(_ context.Context, id genconn.BranchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, ok := s.pending[id]
	if !ok {
		return nil
	}
	delete(s.pending, id)
	s.cancelled[id] = resp
	s.logger.WithField("branch", id).Info("cancelled ", resp)
	return nil
}

// Confirmed возвращает подтвержденный ответ ветви.
func (s *Service) Confirmed(id genconn.BranchID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, ok := s.confirmed[id]
	return resp, ok
}

// Cancelled возвращает отмененный ответ ветви.
func (s *Service) Cancelled(id genconn.BranchID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, ok := s.cancelled[id]
	return resp, ok
}

// Counts возвращает число ожидающих, подтвержденных и отмененных резервов.
func (s *Service) Counts() (pending, confirmed, cancelled int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending), len(s.confirmed), len(s.cancelled)
}
