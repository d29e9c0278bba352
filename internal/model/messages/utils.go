package messages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/model/reports"
)

const (
	commandParts   = 2
	categoryMarker = "#"
	timeLayout     = "02.01.2006 15:04"
)

// parseCommand splits "/cmd@bot arg" into "/cmd" and "arg". Plain text has no
// command.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	split := strings.SplitN(text, " ", commandParts)
	cmd = split[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	if len(split) == commandParts {
		arg = strings.TrimSpace(split[1])
	}
	return cmd, arg
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse amount")
	}
	if amount <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return amount, nil
}

// splitDescription joins words into a description and takes out a #category.
func splitDescription(words []string) (description, category string) {
	rest := make([]string, 0, len(words))
	for _, w := range words {
		if category == "" && strings.HasPrefix(w, categoryMarker) && len(w) > len(categoryMarker) {
			category = strings.TrimPrefix(w, categoryMarker)
			continue
		}
		rest = append(rest, w)
	}
	return strings.Join(rest, " "), category
}

func formatExpenses(exps []expense.Expense) string {
	res := make([]string, 0, len(exps))
	for _, exp := range exps {
		line := fmt.Sprintf("%s %.2f %s", exp.Timestamp.Format(timeLayout), exp.Amount, exp.CategoryName())
		if exp.PayMethod != nil && exp.PayMethod.Name != "" {
			line += " (" + exp.PayMethod.Name + ")"
		}
		if exp.Description != "" {
			line += " " + exp.Description
		}
		res = append(res, line+"\nid: "+expense.Identifier(exp.ID))
	}
	return strings.Join(res, "\n")
}

func formatNamed(rs []record.Record) string {
	res := make([]string, 0, len(rs))
	for _, r := range rs {
		if !r.Bool("active", true) {
			continue
		}
		id, _ := record.Identifier(r)
		res = append(res, fmt.Sprintf("%s: %s", r.String("name"), id))
	}
	if len(res) == 0 {
		return emptyListMessage
	}
	return strings.Join(res, "\n")
}

func formatReport(report *reports.Report) string {
	res := make([]string, 0, len(report.Records)+2)
	for _, rec := range report.Records {
		res = append(res, fmt.Sprintf("%s: %.2f", rec.Category, rec.Amount))
	}
	res = append(res, "", fmt.Sprintf("Total: %.2f", report.TotalAmount))
	return strings.Join(res, "\n")
}
