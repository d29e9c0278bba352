package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/logger"
)

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var periods = []string{PeriodAll, PeriodWeek, PeriodMonth, PeriodYear}

type expensesSource interface {
	Expenses(ctx context.Context) ([]expense.Expense, error)
}

type config interface {
	DefaultReportPeriod() string
}

type Record struct {
	Category string
	Amount   float64
}

type Report struct {
	Period      string
	Records     []Record
	TotalAmount float64
}

type Generator struct {
	source        expensesSource
	defaultPeriod string
}

func NewGenerator(config config, source expensesSource) *Generator {
	return &Generator{
		source:        source,
		defaultPeriod: config.DefaultReportPeriod(),
	}
}

// GenerateReport sums active expenses per category since the start of
// period. An empty period falls back to the configured default.
func (g *Generator) GenerateReport(ctx context.Context, period string) (*Report, error) {
	if period == "" {
		period = g.defaultPeriod
	}
	logger.Info("GenerateReport - start", zap.String("period", period))
	defer logger.Info("GenerateReport - end")

	after, err := PeriodStart(period)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	expenses, err := g.source.Expenses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	report := groupExpenses(FilterExpensesAfter(expenses, after))
	report.Period = period
	return report, nil
}

// PeriodStart returns the beginning of the current week, month or year, and
// the zero time for the whole history.
func PeriodStart(period string) (time.Time, error) {
	switch period {
	case PeriodAll:
		return time.Time{}, nil
	case PeriodWeek:
		return now.BeginningOfWeek(), nil
	case PeriodMonth:
		return now.BeginningOfMonth(), nil
	case PeriodYear:
		return now.BeginningOfYear(), nil
	}
	return time.Time{}, fmt.Errorf("report period %s is not supported", period)
}

// FilterExpensesAfter keeps active expenses made after the given moment.
func FilterExpensesAfter(exps []expense.Expense, after time.Time) []expense.Expense {
	res := make([]expense.Expense, 0)
	for _, exp := range exps {
		if !exp.Active {
			continue
		}
		if after.IsZero() || after.Before(exp.Timestamp) {
			res = append(res, exp)
		}
	}
	return res
}

func groupExpenses(exps []expense.Expense) *Report {
	m := make(map[string]float64)
	for _, exp := range exps {
		m[exp.CategoryName()] += exp.Amount
	}
	records := make([]Record, 0, len(m))
	total := 0.0
	for cat, am := range m {
		records = append(records, Record{Category: cat, Amount: am})
		total += am
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Amount == records[j].Amount {
			return records[i].Category < records[j].Category
		}
		return records[i].Amount > records[j].Amount
	})
	return &Report{
		Records:     records,
		TotalAmount: total,
	}
}

func ReportPeriods() []string {
	return append([]string(nil), periods...)
}
