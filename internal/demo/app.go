package demo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"

	genconn "github.com/qbixus/genconn-go"
	"github.com/qbixus/genconn-go/internal"
)

// FailDB - ссылка, при которой адрес вставляется с несуществующей персоной.
const FailDB = "FAILDB"

var ErrInvalidConfig = errors.New("#DEMO_INVALID_CONFIG")

// Config - настройки демонстрационного приложения.
type Config struct {
	// Journal - путь к файлу журнала bolt.
	Journal string
	// Fail - имена сервисов, которые отклоняют любые резервы.
	Fail []string
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Journal) == "" {
		return fmt.Errorf("%w: journal path is required", ErrInvalidConfig)
	}
	for _, name := range c.Fail {
		if !slices.Contains(ServiceNames(), name) {
			return fmt.Errorf("%w: unknown service %q", ErrInvalidConfig, name)
		}
	}
	return nil
}

// ServiceNames возвращает имена сервисов в порядке их вызова.
func ServiceNames() []string {
	return []string{AcquirerName, BookingSystemName, LetterWriterName}
}

// App выполняет работу трех сервисов и две вставки в журнал в одной транзакции.
type App struct {
	journal   *Journal
	services  []*Service
	factories []*genconn.Factory
	logger    logrus.FieldLogger
}

type AppOption func(*appOptions)

func WithLogger(logger logrus.FieldLogger) AppOption {
	return func(o *appOptions) { o.logger = logger }
}

func WithMeterProvider(mp metric.MeterProvider) AppOption {
	return func(o *appOptions) { o.meterProvider = mp }
}

type appOptions struct {
	logger        logrus.FieldLogger
	meterProvider metric.MeterProvider
}

// NewApp открывает журнал cfg.Journal и регистрирует обработчики сервисов.
func NewApp(cfg Config, opts ...AppOption) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options := appOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	logger := internal.EnsureLogger(options.logger)

	journal, err := OpenJournal(cfg.Journal, logger)
	if err != nil {
		return nil, err
	}

	svcOpts := func(name string) []ServiceOption {
		return []ServiceOption{WithFailure(slices.Contains(cfg.Fail, name)), WithServiceLogger(logger)}
	}
	app := &App{
		journal: journal,
		services: []*Service{
			NewAcquirer(svcOpts(AcquirerName)...),
			NewBookingSystem(svcOpts(BookingSystemName)...),
			NewLetterWriter(svcOpts(LetterWriterName)...),
		},
		logger: logger.WithField("component", "app"),
	}

	handlers := &genconn.HandlerRegistry{}
	for _, s := range app.services {
		if err := handlers.Register(s.Name(), s.Handler()); err != nil {
			_ = journal.Close()
			return nil, err
		}
		app.factories = append(app.factories, genconn.NewFactory(s.Name(), handlers,
			genconn.WithLogger(logger), genconn.WithMeterProvider(options.meterProvider)))
	}
	return app, nil
}

func (a *App) Close() error {
	return a.journal.Close()
}

func (a *App) Journal() *Journal {
	return a.journal
}

// Service возвращает сервис по имени или nil.
func (a *App) Service(name string) *Service {
	for _, s := range a.services {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Run выполняет одну бизнес-операцию для ref и возвращает ответы сервисов через "/". При любой ошибке
// транзакция помечается к отмене, и ни один сервис не подтверждает резерв.
func (a *App) Run(ctx context.Context, ref string) (result string, err error) {
	ctx, complete, dispose := genconn.WithTransactionScope(ctx, genconn.WithRequiresNewTx())
	defer func() {
		if derr := dispose(ctx); derr != nil {
			a.logger.WithError(derr).Warn("rollback failed")
			err = errors.Join(err, derr)
		}
	}()
	tx := genconn.CurrentTransaction(ctx)
	log := a.logger.WithField("ref", ref)

	fail := func(err error) (string, error) {
		if rerr := tx.SetRollbackOnly(); rerr != nil {
			log.WithError(rerr).Warn("set rollback only failed")
		}
		log.WithError(err).Info("operation failed")
		return "", err
	}

	branch, err := a.journal.Begin(tx)
	if err != nil {
		return fail(err)
	}
	personID, err := branch.InsertPerson("FIRST_" + timestamp())
	if err != nil {
		return fail(err)
	}

	responses := make([]string, 0, len(a.factories))
	for i, f := range a.factories {
		shim, err := f.Enlist(tx)
		if err != nil {
			return fail(err)
		}
		defer func() {
			if err := shim.Release(); err != nil {
				log.WithError(err).Warn("release failed")
			}
		}()

		svc := a.services[i]
		resp, err := genconn.Execute(ctx, shim, func(ctx context.Context, id genconn.BranchID) (string, error) {
			return svc.Reserve(ctx, id, ref)
		})
		if err != nil {
			return fail(err)
		}
		responses = append(responses, resp)
	}

	addressOf := personID
	if ref == FailDB {
		addressOf = 0
	}
	if err := branch.InsertAddress(addressOf, "THIRD_"+timestamp()); err != nil {
		return fail(err)
	}

	if err := complete(ctx); err != nil {
		log.WithError(err).Info("commit failed")
		return "", err
	}
	result = strings.Join(responses, "/")
	log.Info("returning ", result)
	return result, nil
}

func timestamp() string {
	return time.Now().Format("2006/01/02_15:04:05.000")
}
