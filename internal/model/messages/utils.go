package messages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"max.ks1230/expense-dashboard/internal/entity/currency"
	"max.ks1230/expense-dashboard/internal/entity/expense"
	"max.ks1230/expense-dashboard/internal/model/analytics"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

// parseExpenseArg parses "amount;category;payment method[;date][;description]".
// Payment methods contain spaces, hence the semicolon separator. The date
// defaults to today; a fourth part that is not a date is the description.
func parseExpenseArg(arg string) (expense.Record, string, error) {
	parts := strings.Split(arg, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return expense.Record{}, incorrectAddUsageMessage, errors.New("too few parts")
	}

	amount, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || amount <= 0 {
		return expense.Record{}, incorrectAmountMessage, errors.Wrap(err, "parse amount")
	}

	category := parts[1]
	if !expense.ValidCategory(category) {
		return expense.Record{},
			fmt.Sprintf(unknownCategoryMessage, strings.Join(expense.Categories, ", ")),
			errors.New("unknown category")
	}

	method := parts[2]
	if !expense.ValidPaymentMethod(method) {
		return expense.Record{},
			fmt.Sprintf(unknownMethodMessage, strings.Join(expense.PaymentMethods, ", ")),
			errors.New("unknown payment method")
	}

	rec := expense.Record{
		Amount:        amount,
		Category:      category,
		PaymentMethod: method,
		Date:          time.Now().Format(expense.DateLayout),
	}

	rest := parts[3:]
	if len(rest) > 0 && rest[0] != "" {
		if _, dateErr := time.Parse(expense.DateLayout, rest[0]); dateErr == nil {
			rec.Date = rest[0]
			rest = rest[1:]
		} else if len(rest) > 1 {
			// an explicit date slot was given but does not parse
			return expense.Record{}, incorrectDateMessage, errors.Wrap(dateErr, "parse date")
		}
	}
	if len(rest) > 0 && rest[0] != "" {
		desc := strings.Join(rest, ";")
		rec.Description = &desc
	}

	return rec, "", nil
}

// parseFilterArg splits "/expenses category:Food lunch" into the free-text
// filter and the category filter.
func parseFilterArg(arg string) (text, category string) {
	fields := strings.Fields(arg)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, "category:") {
			category = strings.TrimPrefix(f, "category:")
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " "), category
}

func formatAmount(sym string, v float64) string {
	return fmt.Sprintf("%s%.2f", sym, v)
}

func formatPercent(change float64) string {
	if change > 0 {
		return fmt.Sprintf("+%.1f%%", change)
	}
	return fmt.Sprintf("%.1f%%", change)
}

func formatExpenseLine(rec *expense.Record, sym string) string {
	line := fmt.Sprintf("#%d  %s  %s  %s (%s)",
		rec.ID, rec.Date, formatAmount(sym, rec.DisplayAmount()), rec.Category, rec.PaymentMethod)
	if rec.Description != nil && *rec.Description != "" {
		line += "  " + *rec.Description
	}
	return line
}

func buildAnalyticsReport(records []expense.Record, curr string) string {
	sym := currency.Symbol(curr)

	res := make([]string, 0)
	res = append(res, fmt.Sprintf("📊 Analytics (%s)", curr), "")

	res = append(res, "By category:")
	for _, g := range analytics.ByCategory(records) {
		res = append(res, fmt.Sprintf("%s: %s", g.Name, formatAmount(sym, g.Amount)))
	}

	res = append(res, "", "By payment method:")
	for _, g := range analytics.ByPaymentMethod(records) {
		res = append(res, fmt.Sprintf("%s: %s", g.Name, formatAmount(sym, g.Amount)))
	}

	res = append(res, "", "By month:")
	for _, g := range analytics.ByMonth(records) {
		res = append(res, fmt.Sprintf("%s: %s", g.Name, formatAmount(sym, g.Amount)))
	}

	res = append(res, "", fmt.Sprintf("Total: %s", formatAmount(sym, analytics.Total(records))))
	return strings.Join(res, "\n")
}
