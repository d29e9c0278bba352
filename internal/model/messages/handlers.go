package messages

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/reports"
	"max.ks1230/slots-tracker/internal/model/screens"
)

const (
	helpMessage = `/expenses [week|month|year] - list expenses
/expense <amount> <pay method> [description] [#category] - add an expense
/edit_expense <id> <amount> [description] - change an expense
/delete_expense <id> - delete an expense
/paymethods - list payment methods
/paymethod <name> - add a payment method
/edit_paymethod <id> <name> - rename a payment method
/categories - list categories
/category <name> - add a category
/report [week|month|year] - spending per category
/cancel - drop the expense you are typing`

	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am SlotsTracker bot 🤖\n\n" + helpMessage
	loveToTalkMessage     = "I would love to talk about it more!"
	okMessage             = "Gotcha!"
	deletedMessage        = "Deleted"
	cancelledMessage      = "Nothing was saved"
	noExpensesMessage     = "You have no expenses yet"
	emptyListMessage      = "Nothing here yet"

	incorrectUsageMessage    = "That is an incorrect command usage"
	incorrectExpenseMessage  = "Your expense amount is incorrect"
	incorrectPeriodMessage   = "The period is incorrect. Use week, month or year"
	unknownPayMethodMessage  = "I don't know this payment method. See /paymethods"
	unknownCategoryMessage   = "I don't know this category. See /categories"
	unknownRecordMessage     = "I can't find a record with this id"
	cannotGetExpensesMessage = "Can't get your expenses atm. Try later"
	cannotGetListMessage     = "Can't get the list atm. Try later"
	errorPrefix              = "Error occurred: "
)

const (
	startCommand         = "/start"
	helpCommand          = "/help"
	expensesCommand      = "/expenses"
	expenseCommand       = "/expense"
	editExpenseCommand   = "/edit_expense"
	deleteExpenseCommand = "/delete_expense"
	payMethodsCommand    = "/paymethods"
	payMethodCommand     = "/paymethod"
	editPayMethodCommand = "/edit_paymethod"
	categoriesCommand    = "/categories"
	categoryCommand      = "/category"
	reportCommand        = "/report"
	cancelCommand        = "/cancel"
)

type forms interface {
	Records(collection string) []record.Record
	Refresh(ctx context.Context, collection string) error
	Find(collection, id string) (record.Record, bool)
	FindByName(collection, name string) (record.Record, bool)
	CreateOrUpdateExpense(ctx context.Context, ui screens.UI, data record.Record) (screens.Outcome, error)
	CreateOrUpdatePayMethod(ctx context.Context, ui screens.UI, data record.Record) (screens.Outcome, error)
	CreateOrUpdateCategory(ctx context.Context, ui screens.UI, data record.Record) (screens.Outcome, error)
	Remove(ctx context.Context, ui screens.UI, collection, id string) error
}

type reporter interface {
	GenerateReport(ctx context.Context, period string) (*reports.Report, error)
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	sender      messageSender
	forms       forms
	reporter    reporter
}

func newHandler(sender messageSender, forms forms, reporter reporter) *HandlerService {
	res := &HandlerService{
		sender:   sender,
		forms:    forms,
		reporter: reporter,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[expensesCommand] = s.handleExpenses
	m[expenseCommand] = s.handleExpense
	m[editExpenseCommand] = s.handleEditExpense
	m[deleteExpenseCommand] = s.handleDeleteExpense
	m[payMethodsCommand] = s.handleList(expense.PayMethods)
	m[payMethodCommand] = s.handleNamed(expense.PayMethods)
	m[editPayMethodCommand] = s.handleEditPayMethod
	m[categoriesCommand] = s.handleList(expense.Categories)
	m[categoryCommand] = s.handleNamed(expense.Categories)
	m[reportCommand] = s.handleReport
	m[cancelCommand] = s.handleCancel

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) ui(userID int64, fields record.Record) *chatUI {
	return &chatUI{sender: s.sender, userID: userID, fields: fields}
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleExpenses(ctx context.Context, arg string, _ int64) (string, error) {
	after, err := reports.PeriodStart(strings.TrimSpace(arg))
	if err != nil {
		return incorrectPeriodMessage, nil
	}

	if err = s.forms.Refresh(ctx, expense.Expenses); err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle expenses")
	}
	exps, err := expense.FromList[expense.Expense](s.forms.Records(expense.Expenses))
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle expenses")
	}

	exps = reports.FilterExpensesAfter(exps, after)
	if len(exps) == 0 {
		return noExpensesMessage, nil
	}
	return formatExpenses(exps), nil
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	amount, err := parseAmount(args[0])
	if err != nil {
		return incorrectExpenseMessage, nil
	}
	payMethod, ok := s.lookupRef(ctx, expense.PayMethods, args[1])
	if !ok {
		return unknownPayMethodMessage, nil
	}

	description, categoryName := splitDescription(args[2:])
	fields := record.Record{
		"amount":      amount,
		"description": description,
		"pay_method":  payMethod,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"active":      true,
	}
	if categoryName != "" {
		category, ok := s.lookupRef(ctx, expense.Categories, categoryName)
		if !ok {
			return unknownCategoryMessage, nil
		}
		fields["category"] = category
	}

	return outcomeReply(s.forms.CreateOrUpdateExpense(ctx, s.ui(userID, fields), nil))
}

func (s *HandlerService) handleEditExpense(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	initial, ok := s.find(ctx, expense.Expenses, args[0])
	if !ok {
		return unknownRecordMessage, nil
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return incorrectExpenseMessage, nil
	}

	fields := record.Record{"amount": amount}
	if len(args) > 2 {
		fields["description"] = strings.Join(args[2:], " ")
	}
	return outcomeReply(s.forms.CreateOrUpdateExpense(ctx, s.ui(userID, fields), initial))
}

func (s *HandlerService) handleDeleteExpense(ctx context.Context, arg string, userID int64) (string, error) {
	id := strings.TrimSpace(arg)
	if id == "" {
		return incorrectUsageMessage, nil
	}
	if err := s.forms.Remove(ctx, s.ui(userID, nil), expense.Expenses, id); err != nil {
		return "", errors.Wrap(err, "handle delete expense")
	}
	return deletedMessage, nil
}

func (s *HandlerService) handleList(collection string) handler {
	return func(ctx context.Context, _ string, _ int64) (string, error) {
		if err := s.forms.Refresh(ctx, collection); err != nil {
			return cannotGetListMessage, errors.Wrapf(err, "handle list %s", collection)
		}
		rs := s.forms.Records(collection)
		if len(rs) == 0 {
			return emptyListMessage, nil
		}
		return formatNamed(rs), nil
	}
}

func (s *HandlerService) handleNamed(collection string) handler {
	return func(ctx context.Context, arg string, userID int64) (string, error) {
		name := strings.TrimSpace(arg)
		if name == "" {
			return incorrectUsageMessage, nil
		}
		ui := s.ui(userID, record.Record{"name": name, "active": true})
		if collection == expense.Categories {
			return outcomeReply(s.forms.CreateOrUpdateCategory(ctx, ui, nil))
		}
		return outcomeReply(s.forms.CreateOrUpdatePayMethod(ctx, ui, nil))
	}
}

func (s *HandlerService) handleEditPayMethod(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.SplitN(strings.TrimSpace(arg), " ", 2)
	if len(args) < 2 || strings.TrimSpace(args[1]) == "" {
		return incorrectUsageMessage, nil
	}
	initial, ok := s.find(ctx, expense.PayMethods, args[0])
	if !ok {
		return unknownRecordMessage, nil
	}
	ui := s.ui(userID, record.Record{"name": strings.TrimSpace(args[1])})
	return outcomeReply(s.forms.CreateOrUpdatePayMethod(ctx, ui, initial))
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, _ int64) (string, error) {
	period := strings.TrimSpace(arg)
	if _, err := reports.PeriodStart(period); err != nil {
		return incorrectPeriodMessage, nil
	}

	report, err := s.reporter.GenerateReport(ctx, period)
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle report")
	}
	if len(report.Records) == 0 {
		return noExpensesMessage, nil
	}
	return formatReport(report), nil
}

// handleCancel dismisses an expense form without submitting anything.
func (s *HandlerService) handleCancel(ctx context.Context, _ string, userID int64) (string, error) {
	return outcomeReply(s.forms.CreateOrUpdateExpense(ctx, s.ui(userID, nil), nil))
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

// lookupRef finds a record by name and returns a reference to it.
func (s *HandlerService) lookupRef(ctx context.Context, collection, name string) (record.Record, bool) {
	r, ok := s.lookup(ctx, collection, name)
	if !ok {
		return nil, false
	}
	return record.Link(r)
}

// lookup finds a record by name, refreshing the collection once on a miss.
func (s *HandlerService) lookup(ctx context.Context, collection, name string) (record.Record, bool) {
	if r, ok := s.forms.FindByName(collection, name); ok {
		return r, true
	}
	if err := s.forms.Refresh(ctx, collection); err != nil {
		logger.Error("cannot refresh collection", zap.String("collection", collection), zap.Error(err))
		return nil, false
	}
	return s.forms.FindByName(collection, name)
}

// find is lookup by identifier.
func (s *HandlerService) find(ctx context.Context, collection, id string) (record.Record, bool) {
	if r, ok := s.forms.Find(collection, id); ok {
		return r, true
	}
	if err := s.forms.Refresh(ctx, collection); err != nil {
		logger.Error("cannot refresh collection", zap.String("collection", collection), zap.Error(err))
		return nil, false
	}
	return s.forms.Find(collection, id)
}

// outcomeReply turns a form outcome into the answer. Failures were already
// shown to the user by the form, so they produce no answer of their own.
func outcomeReply(outcome screens.Outcome, err error) (string, error) {
	switch outcome {
	case screens.OutcomeSaved:
		if err != nil {
			logger.Warn("saved but not refreshed", zap.Error(err))
		}
		return okMessage, nil
	case screens.OutcomeCancelled:
		return cancelledMessage, nil
	}
	return "", err
}
