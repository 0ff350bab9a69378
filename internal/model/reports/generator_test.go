package reports

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-dashboard/internal/entity/expense"
)

type fakeProvider struct {
	listRecords    []expense.Record
	listErr        error
	convertRecords []expense.Record
	convertedTo    []string
}

func (f *fakeProvider) List(_ context.Context) ([]expense.Record, error) {
	return f.listRecords, f.listErr
}

func (f *fakeProvider) Convert(_ context.Context, target string) ([]expense.Record, error) {
	f.convertedTo = append(f.convertedTo, target)
	return f.convertRecords, nil
}

type fakeProducer struct {
	payloads [][]byte
}

func (f *fakeProducer) ProduceMessage(message []byte) error {
	f.payloads = append(f.payloads, message)
	return nil
}

type fakeConfig struct{ home string }

func (f fakeConfig) HomeCurrency() string { return f.home }

func someRecords() []expense.Record {
	return []expense.Record{
		{ID: 1, Amount: 45.5, Category: "Food", Date: "2026-02-01", PaymentMethod: "Credit Card"},
		{ID: 2, Amount: 120, Category: "Transport", Date: "2026-02-02", PaymentMethod: "Debit Card"},
		{ID: 3, Amount: 30, Category: "Food", Date: "2026-02-03", PaymentMethod: "Cash"},
	}
}

func Test_OnGenerateChart_WithoutExpenses_ShouldCaptionOnly(t *testing.T) {
	g := NewGenerator(fakeConfig{home: "INR"}, &fakeProvider{}, &fakeProducer{})

	result, err := g.GenerateChart(context.Background(), ChartRequest{
		UserID: 123, Kind: KindTrend, Currency: "INR",
	})

	require.NoError(t, err)
	assert.Equal(t, noExpensesCaption, result.Caption)
	assert.Empty(t, result.PNG)
}

func Test_OnGenerateChart_CategoryKind_ShouldRenderPie(t *testing.T) {
	g := NewGenerator(fakeConfig{home: "INR"}, &fakeProvider{listRecords: someRecords()}, &fakeProducer{})

	result, err := g.GenerateChart(context.Background(), ChartRequest{
		UserID: 123, Kind: KindCategory, Currency: "INR",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.PNG)
	assert.Contains(t, result.Caption, "Top: Transport")
}

func Test_OnGenerateChart_TrendWithSingleDay_ShouldFallBackToText(t *testing.T) {
	records := []expense.Record{
		{ID: 1, Amount: 45.5, Category: "Food", Date: "2026-02-01", PaymentMethod: "Cash"},
	}
	g := NewGenerator(fakeConfig{home: "INR"}, &fakeProvider{listRecords: records}, &fakeProducer{})

	result, err := g.GenerateChart(context.Background(), ChartRequest{
		UserID: 123, Kind: KindTrend, Currency: "INR",
	})

	require.NoError(t, err)
	assert.Empty(t, result.PNG)
	assert.Contains(t, result.Caption, "Not enough data")
}

func Test_OnGenerateChart_NonHomeCurrency_ShouldFetchConverted(t *testing.T) {
	converted := 12.0
	provider := &fakeProvider{convertRecords: []expense.Record{
		{ID: 1, Amount: 1000, Category: "Food", Date: "2026-02-01", PaymentMethod: "Cash",
			ConvertedAmount: &converted, TargetCurrency: "USD"},
		{ID: 2, Amount: 2000, Category: "Transport", Date: "2026-02-02", PaymentMethod: "Cash",
			ConvertedAmount: &converted, TargetCurrency: "USD"},
	}}
	g := NewGenerator(fakeConfig{home: "INR"}, provider, &fakeProducer{})

	result, err := g.GenerateChart(context.Background(), ChartRequest{
		UserID: 123, Kind: KindMethod, Currency: "USD",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"USD"}, provider.convertedTo)
	assert.Contains(t, result.Caption, "24.00$")
	assert.NotEmpty(t, result.PNG)
}

func Test_OnGenerateChart_FetchFailure_ShouldApologize(t *testing.T) {
	g := NewGenerator(fakeConfig{home: "INR"},
		&fakeProvider{listErr: errors.New("backend down")}, &fakeProducer{})

	result, err := g.GenerateChart(context.Background(), ChartRequest{
		UserID: 123, Kind: KindTrend, Currency: "INR",
	})

	assert.Error(t, err)
	assert.Equal(t, cannotFetchCaption, result.Caption)
	assert.Empty(t, result.PNG)
}

func Test_OnHandlePayload_ShouldPublishResult(t *testing.T) {
	producer := &fakeProducer{}
	g := NewGenerator(fakeConfig{home: "INR"}, &fakeProvider{listRecords: someRecords()}, producer)

	payload, err := json.Marshal(ChartRequest{UserID: 123, Kind: KindCategory, Currency: "INR"})
	require.NoError(t, err)

	g.HandlePayload(context.Background(), payload)

	require.Len(t, producer.payloads, 1)
	var result ChartResult
	require.NoError(t, json.Unmarshal(producer.payloads[0], &result))
	assert.Equal(t, int64(123), result.UserID)
	assert.Equal(t, KindCategory, result.Kind)
	assert.NotEmpty(t, result.PNG)
}
