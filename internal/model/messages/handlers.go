package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-dashboard/internal/entity/currency"
	"max.ks1230/expense-dashboard/internal/entity/expense"
	"max.ks1230/expense-dashboard/internal/logger"
	"max.ks1230/expense-dashboard/internal/model/analytics"
	"max.ks1230/expense-dashboard/internal/model/reports"
	"max.ks1230/expense-dashboard/internal/model/store"
)

const (
	helloMessage = "Hello! I am your expense dashboard 🤖\n\n" + helpMessage

	helpMessage = "Commands:\n" +
		"/dashboard — spending summary\n" +
		"/expenses [category:Food] [text] — browse expenses\n" +
		"/analytics [trend|category|method] — breakdowns and a chart\n" +
		"/add amount;category;payment method[;date][;description]\n" +
		"/edit id;amount;category;payment method[;date][;description]\n" +
		"/delete id\n" +
		"/currency CODE — convert displayed amounts"

	dontUnderstandMessage = "I don't understand you :( Try /help"

	noExpensesMessage   = "You have no expenses yet. Add one with /add"
	addedMessage        = "Expense added successfully"
	addedLocalMessage   = "Expense saved locally; the server is unreachable"
	updatedMessage      = "Expense updated successfully"
	updatedLocalMessage = "Expense updated locally; the server is unreachable"
	deletedMessage      = "Expense deleted successfully"
	deletedLocalMessage = "Expense removed locally; the server is unreachable"
	chartOnTheWay       = "Rendering your chart, it will arrive shortly..."

	incorrectAddUsageMessage  = "Usage: /add amount;category;payment method[;date][;description]"
	incorrectEditUsageMessage = "Usage: /edit id;amount;category;payment method[;date][;description]"
	incorrectAmountMessage    = "Your expense amount is incorrect"
	incorrectDateMessage      = "The date is incorrect. Should be yyyy-mm-dd"
	incorrectIDMessage        = "The expense id is incorrect"
	unknownIDMessage          = "You have no expense with that id"
	missingIDMessage          = "That expense has no id yet and cannot be edited"
	unknownCategoryMessage    = "Unknown category. Pick one of: %s"
	unknownMethodMessage      = "Unknown payment method. Pick one of: %s"
	unknownCurrencyMessage    = "Unknown currency code. E.g. USD, EUR, INR"
	unknownKindMessage        = "Unknown chart kind. Pick one of: trend, category, method"
)

const (
	startCommand     = "/start"
	helpCommand      = "/help"
	dashboardCommand = "/dashboard"
	expensesCommand  = "/expenses"
	analyticsCommand = "/analytics"
	addCommand       = "/add"
	editCommand      = "/edit"
	deleteCommand    = "/delete"
	currencyCommand  = "/currency"
)

const maxListedExpenses = 25

type expenseStore interface {
	Expenses(ctx context.Context, userID int64) []expense.Record
	SelectedCurrency(userID int64) string
	HomeCurrency() string
	Add(ctx context.Context, userID int64, rec expense.Record) (expense.Record, bool)
	Update(ctx context.Context, userID int64, rec expense.Record) (expense.Record, bool, error)
	Delete(ctx context.Context, userID, id int64) bool
	Convert(ctx context.Context, userID int64, target string) bool
}

type chartRequester interface {
	RequestChart(ctx context.Context, userID int64, kind, curr string) error
}

type reportsCache interface {
	GetReport(userID int64, currency string) (string, error)
	CacheReport(userID int64, currency string, report string) error
	InvalidateCache(userID int64, currencies []string) error
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	store       expenseStore
	charts      chartRequester
	cache       reportsCache
}

func newHandler(store expenseStore, charts chartRequester, cache reportsCache) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		store:       store,
		charts:      charts,
		cache:       cache,
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
	m[dashboardCommand] = s.handleDashboard
	m[expensesCommand] = s.handleExpenses
	m[analyticsCommand] = s.handleAnalytics
	m[addCommand] = s.handleAdd
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[currencyCommand] = s.handleCurrency

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return dontUnderstandMessage, nil
}

func (s *HandlerService) handleDashboard(ctx context.Context, _ string, userID int64) (string, error) {
	records := s.store.Expenses(ctx, userID)
	if len(records) == 0 {
		return noExpensesMessage, nil
	}
	sym := currency.Symbol(s.store.SelectedCurrency(userID))

	total := analytics.Total(records)
	thisMonth, lastMonth := analytics.MonthSums(records, time.Now())
	change := analytics.PercentChange(thisMonth, lastMonth)
	top := analytics.TopCategory(records)
	avg := analytics.Average(records)

	lines := []string{
		fmt.Sprintf("💰 Total expenses: %s across %d expenses", formatAmount(sym, total), len(records)),
		fmt.Sprintf("📅 This month: %s (%s vs %s last month)",
			formatAmount(sym, thisMonth), formatPercent(change), formatAmount(sym, lastMonth)),
		fmt.Sprintf("🏆 Top category: %s (%s)", top.Name, formatAmount(sym, top.Amount)),
		fmt.Sprintf("🧾 Average expense: %s", formatAmount(sym, avg)),
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleExpenses(ctx context.Context, arg string, userID int64) (string, error) {
	records := s.store.Expenses(ctx, userID)
	if len(records) == 0 {
		return noExpensesMessage, nil
	}

	text, category := parseFilterArg(arg)
	filtered := analytics.Filter(records, text, category)
	if len(filtered) == 0 {
		return "No expenses match your filter", nil
	}

	sym := currency.Symbol(s.store.SelectedCurrency(userID))
	lines := make([]string, 0, len(filtered)+1)
	for i, rec := range filtered {
		if i == maxListedExpenses {
			lines = append(lines, fmt.Sprintf("...and %d more", len(filtered)-maxListedExpenses))
			break
		}
		lines = append(lines, formatExpenseLine(&rec, sym))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleAnalytics(ctx context.Context, arg string, userID int64) (string, error) {
	kind := strings.TrimSpace(arg)
	if kind == "" {
		kind = reports.KindTrend
	}
	if !reports.ValidKind(kind) {
		return unknownKindMessage, nil
	}

	records := s.store.Expenses(ctx, userID)
	if len(records) == 0 {
		return noExpensesMessage, nil
	}
	curr := s.store.SelectedCurrency(userID)

	report, err := s.cache.GetReport(userID, curr)
	if err != nil {
		report = buildAnalyticsReport(records, curr)
		if cacheErr := s.cache.CacheReport(userID, curr, report); cacheErr != nil {
			logger.Warn("failed to cache report", zap.Error(cacheErr))
		}
	}

	if err = s.charts.RequestChart(ctx, userID, kind, curr); err != nil {
		logger.Error("failed to request chart", zap.Error(err))
		return report, nil
	}
	return report + "\n\n" + chartOnTheWay, nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string, userID int64) (string, error) {
	rec, errMsg, err := parseExpenseArg(arg)
	if err != nil {
		return errMsg, errors.Wrap(err, "handle add")
	}

	_, synced := s.store.Add(ctx, userID, rec)
	s.invalidateReports(userID)
	if !synced {
		return addedLocalMessage, nil
	}
	return addedMessage, nil
}

func (s *HandlerService) handleEdit(ctx context.Context, arg string, userID int64) (string, error) {
	idPart, rest, found := strings.Cut(arg, ";")
	if !found {
		return incorrectEditUsageMessage, nil
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil || id <= 0 {
		return incorrectIDMessage, errors.Wrap(err, "handle edit")
	}

	rec, errMsg, err := parseExpenseArg(rest)
	if err != nil {
		if errMsg == incorrectAddUsageMessage {
			errMsg = incorrectEditUsageMessage
		}
		return errMsg, errors.Wrap(err, "handle edit")
	}
	rec.ID = id

	if !hasExpense(s.store.Expenses(ctx, userID), id) {
		return unknownIDMessage, nil
	}

	_, synced, err := s.store.Update(ctx, userID, rec)
	if err != nil {
		if store.IsMissingID(err) {
			return missingIDMessage, nil
		}
		return "", errors.Wrap(err, "handle edit")
	}
	s.invalidateReports(userID)
	if !synced {
		return updatedLocalMessage, nil
	}
	return updatedMessage, nil
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string, userID int64) (string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return incorrectIDMessage, errors.Wrap(err, "handle delete")
	}

	if !hasExpense(s.store.Expenses(ctx, userID), id) {
		return unknownIDMessage, nil
	}

	synced := s.store.Delete(ctx, userID, id)
	s.invalidateReports(userID)
	if !synced {
		return deletedLocalMessage, nil
	}
	return deletedMessage, nil
}

func (s *HandlerService) handleCurrency(ctx context.Context, arg string, userID int64) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(arg))
	if !currency.Supported(code) {
		return unknownCurrencyMessage, nil
	}
	if code == s.store.SelectedCurrency(userID) {
		return fmt.Sprintf("Already displaying %s %s", code, currency.Symbol(code)), nil
	}

	converted := s.store.Convert(ctx, userID, code)
	if !converted {
		return fmt.Sprintf("Switched to %s %s, but conversion is unavailable right now",
			code, currency.Symbol(code)), nil
	}
	return fmt.Sprintf("Converted to %s %s", code, currency.Symbol(code)), nil
}

func (s *HandlerService) invalidateReports(userID int64) {
	currencies := []string{s.store.SelectedCurrency(userID), s.store.HomeCurrency()}
	if err := s.cache.InvalidateCache(userID, currencies); err != nil {
		logger.Warn("failed to invalidate report cache",
			zap.Int64("userID", userID), zap.Error(err))
	}
}

func hasExpense(records []expense.Record, id int64) bool {
	for i := range records {
		if records[i].ID == id {
			return true
		}
	}
	return false
}
