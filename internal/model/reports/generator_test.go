package reports

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/slots-tracker/internal/entity/expense"
)

type staticConfig string

func (c staticConfig) DefaultReportPeriod() string {
	return string(c)
}

type staticSource struct {
	expenses []expense.Expense
	err      error
}

func (s *staticSource) Expenses(context.Context) ([]expense.Expense, error) {
	return s.expenses, s.err
}

func Test_OnGenerateReport_ShouldGroupByCategory(t *testing.T) {
	ctx := context.Background()
	source := &staticSource{expenses: []expense.Expense{
		{Amount: 1000, Category: &expense.Category{Name: "Internet"}, Timestamp: time.Now(), Active: true},
		{Amount: 1500, Category: &expense.Category{Name: "Shopping"}, Timestamp: time.Now(), Active: true},
		{Amount: 100, Category: &expense.Category{Name: "Shopping"}, Timestamp: time.Now(), Active: true},
		{Amount: 50, Timestamp: time.Now(), Active: true},
		{Amount: 9999, Category: &expense.Category{Name: "Shopping"}, Timestamp: time.Now(), Active: false},
	}}

	report, err := NewGenerator(staticConfig(""), source).GenerateReport(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 2650.0, report.TotalAmount)
	require.Len(t, report.Records, 3)
	assert.Equal(t, Record{Category: "Shopping", Amount: 1600}, report.Records[0])
	assert.Equal(t, Record{Category: "Internet", Amount: 1000}, report.Records[1])
	assert.Equal(t, Record{Category: "Uncategorized", Amount: 50}, report.Records[2])
}

func Test_OnGenerateReportForYear_ShouldSkipOldExpenses(t *testing.T) {
	ctx := context.Background()
	source := &staticSource{expenses: []expense.Expense{
		{Amount: 10, Category: &expense.Category{Name: "Food"}, Timestamp: time.Now(), Active: true},
		{Amount: 20, Category: &expense.Category{Name: "Food"}, Timestamp: time.Now().AddDate(-2, 0, 0), Active: true},
	}}

	report, err := NewGenerator(staticConfig("year"), source).GenerateReport(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, "year", report.Period)
	assert.Equal(t, 10.0, report.TotalAmount)
}

func Test_OnUnknownPeriod_ShouldFail(t *testing.T) {
	_, err := NewGenerator(staticConfig(""), &staticSource{}).GenerateReport(context.Background(), "decade")
	assert.Error(t, err)
}

func Test_OnSourceError_ShouldFail(t *testing.T) {
	source := &staticSource{err: errors.New("api is down")}
	_, err := NewGenerator(staticConfig(""), source).GenerateReport(context.Background(), "month")
	assert.Error(t, err)
}

func Test_PeriodStart(t *testing.T) {
	for _, p := range ReportPeriods() {
		start, err := PeriodStart(p)
		require.NoError(t, err)
		assert.False(t, start.After(time.Now()))
	}
}
