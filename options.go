package genconn

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
)

type ShimOption func(*shimOptions)

// WithName задает имя ресурса, которое попадает в журнал и атрибуты метрик.
func WithName(name string) ShimOption {
	return func(o *shimOptions) { o.name = name }
}

// WithLogger задает журнал. По умолчанию записи отбрасываются.
func WithLogger(logger logrus.FieldLogger) ShimOption {
	return func(o *shimOptions) { o.logger = logger }
}

// WithMeterProvider задает поставщика метрик. По умолчанию используется otel.GetMeterProvider().
func WithMeterProvider(mp metric.MeterProvider) ShimOption {
	return func(o *shimOptions) { o.meterProvider = mp }
}

// WithBranchIDs задает генератор идентификаторов ветвей вместо [NewBranchID].
func WithBranchIDs(next func() BranchID) ShimOption {
	return func(o *shimOptions) { o.newBranchID = next }
}

type shimOptions struct {
	name          string
	logger        logrus.FieldLogger
	meterProvider metric.MeterProvider
	newBranchID   func() BranchID
}
