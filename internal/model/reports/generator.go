package reports

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-dashboard/internal/entity/currency"
	"max.ks1230/expense-dashboard/internal/entity/expense"
	"max.ks1230/expense-dashboard/internal/logger"
	"max.ks1230/expense-dashboard/internal/model/analytics"
)

const (
	noExpensesCaption  = "You have no expenses yet"
	cannotFetchCaption = "Can't build your analytics atm. Try later"
	tooFewPointsSuffix = "\n\nNot enough data to draw this chart yet"
)

type expensesProvider interface {
	List(ctx context.Context) ([]expense.Record, error)
	Convert(ctx context.Context, target string) ([]expense.Record, error)
}

type resultsProducer interface {
	ProduceMessage(message []byte) error
}

type config interface {
	HomeCurrency() string
}

// Generator is the reporter-side worker: it consumes chart requests,
// fetches the (optionally converted) collection from the expense service,
// renders the chart and publishes the result.
type Generator struct {
	api      expensesProvider
	producer resultsProducer
	home     string
}

func NewGenerator(cfg config, api expensesProvider, producer resultsProducer) *Generator {
	home := cfg.HomeCurrency()
	if home == "" {
		home = currency.Default
	}
	return &Generator{
		api:      api,
		producer: producer,
		home:     home,
	}
}

// HandlePayload implements the Kafka consumer handler for the requests
// topic. Every request gets an answer, even if only an apology caption.
func (g *Generator) HandlePayload(ctx context.Context, payload []byte) {
	var req ChartRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		logger.Error("cannot unmarshal chart request", zap.Error(err))
		return
	}

	result, err := g.GenerateChart(ctx, req)
	if err != nil {
		logger.Error("failed to generate chart",
			zap.Int64("userID", req.UserID), zap.Error(err))
	}
	if err = g.publish(result); err != nil {
		logger.Error("failed to publish chart result",
			zap.Int64("userID", req.UserID), zap.Error(err))
	}
}

func (g *Generator) GenerateChart(ctx context.Context, req ChartRequest) (ChartResult, error) {
	logger.Info("GenerateChart - start",
		zap.Int64("userID", req.UserID), zap.String("kind", req.Kind))
	defer logger.Info("GenerateChart - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "generateChart")
	defer span.Finish()
	span.SetTag("kind", req.Kind)

	result := ChartResult{UserID: req.UserID, Kind: req.Kind}

	curr := req.Currency
	if curr == "" {
		curr = g.home
	}

	records, err := g.fetch(ctx, curr)
	if err != nil {
		ext.Error.Set(span, true)
		result.Caption = cannotFetchCaption
		return result, errors.Wrap(err, "generate chart")
	}
	if len(records) == 0 {
		result.Caption = noExpensesCaption
		return result, nil
	}

	result.Caption = chartCaption(records, req.Kind, curr)

	png, err := g.render(records, req.Kind, curr)
	if err != nil {
		ext.Error.Set(span, true)
		result.Caption = cannotFetchCaption
		return result, errors.Wrap(err, "generate chart")
	}
	if png == nil {
		result.Caption += tooFewPointsSuffix
		return result, nil
	}

	result.PNG = png
	return result, nil
}

// fetch lists the expenses, converted when the user looks at a non-home
// currency. Conversion answers already carry converted_amount per record.
func (g *Generator) fetch(ctx context.Context, curr string) ([]expense.Record, error) {
	if curr == g.home {
		return g.api.List(ctx)
	}
	return g.api.Convert(ctx, curr)
}

func (g *Generator) render(records []expense.Record, kind, curr string) ([]byte, error) {
	switch kind {
	case KindCategory:
		return renderBreakdownPie(analytics.ByCategory(records), curr)
	case KindMethod:
		return renderBreakdownBars(analytics.ByPaymentMethod(records), curr)
	default:
		return renderTrend(analytics.DayTrend(records), curr)
	}
}

func (g *Generator) publish(result ChartResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "marshal chart result")
	}
	return g.producer.ProduceMessage(payload)
}

func chartCaption(records []expense.Record, kind, curr string) string {
	total := analytics.Total(records)
	sym := currency.Symbol(curr)

	switch kind {
	case KindCategory:
		top := analytics.TopCategory(records)
		return fmt.Sprintf("Spending by category. Top: %s (%.2f%s)", top.Name, top.Amount, sym)
	case KindMethod:
		return fmt.Sprintf("Spending by payment method. Total: %.2f%s", total, sym)
	default:
		return fmt.Sprintf("Expense trend over time. Total: %.2f%s", total, sym)
	}
}
