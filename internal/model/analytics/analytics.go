// Package analytics derives every aggregate the dashboard shows from the
// working collection. All functions are pure and re-derived on each call.
// Sums are always taken over the display amount, so converted and original
// values never mix in one total.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"

	"max.ks1230/expense-dashboard/internal/entity/expense"
)

// GroupAmount is a named bucket with its summed display amount.
type GroupAmount struct {
	Name   string
	Amount float64
}

// TrendPoint is one day of spending for the trend chart.
type TrendPoint struct {
	Date   time.Time
	Label  string
	Amount float64
}

// Total sums the display amount over all records.
func Total(records []expense.Record) float64 {
	total := 0.0
	for i := range records {
		total += records[i].DisplayAmount()
	}
	return total
}

// ByCategory sums per category, sorted descending by total for ranking.
func ByCategory(records []expense.Record) []GroupAmount {
	return sortedDesc(groupBy(records, func(r *expense.Record) (string, bool) {
		return r.Category, true
	}))
}

// ByPaymentMethod sums per payment method, sorted descending by total.
func ByPaymentMethod(records []expense.Record) []GroupAmount {
	return sortedDesc(groupBy(records, func(r *expense.Record) (string, bool) {
		return r.PaymentMethod, true
	}))
}

// ByMonth sums per calendar-month label ("February 2026") in first-seen
// order. Records with unparsable dates are skipped.
func ByMonth(records []expense.Record) []GroupAmount {
	return groupBy(records, func(r *expense.Record) (string, bool) {
		d, err := r.SpendDate()
		if err != nil {
			return "", false
		}
		return d.Format("January 2006"), true
	})
}

// DayTrend sums per day label ("Feb 1") in chronological order.
func DayTrend(records []expense.Record) []TrendPoint {
	type dated struct {
		date   time.Time
		amount float64
	}
	byDay := make(map[string]*dated)
	order := make([]string, 0)

	for i := range records {
		d, err := records[i].SpendDate()
		if err != nil {
			continue
		}
		key := d.Format(expense.DateLayout)
		if _, ok := byDay[key]; !ok {
			byDay[key] = &dated{date: d}
			order = append(order, key)
		}
		byDay[key].amount += records[i].DisplayAmount()
	}

	sort.Strings(order)
	points := make([]TrendPoint, 0, len(order))
	for _, key := range order {
		day := byDay[key]
		points = append(points, TrendPoint{
			Date:   day.date,
			Label:  day.date.Format("Jan 2"),
			Amount: round2(day.amount),
		})
	}
	return points
}

// MonthSums returns the display-amount sums for the calendar month of ref
// and the month before it. January's "last month" is the prior December.
func MonthSums(records []expense.Record, ref time.Time) (thisMonth, lastMonth float64) {
	thisStart := now.New(ref).BeginningOfMonth()
	lastStart := thisStart.AddDate(0, -1, 0)

	for i := range records {
		d, err := records[i].SpendDate()
		if err != nil {
			continue
		}
		switch {
		case sameMonth(d, thisStart):
			thisMonth += records[i].DisplayAmount()
		case sameMonth(d, lastStart):
			lastMonth += records[i].DisplayAmount()
		}
	}
	return thisMonth, lastMonth
}

// PercentChange is (this-last)/last*100, and exactly 0 when last is 0.
func PercentChange(thisMonth, lastMonth float64) float64 {
	if lastMonth == 0 {
		return 0
	}
	return (thisMonth - lastMonth) / lastMonth * 100
}

// TopCategory returns the category with the strictly greatest sum. Ties go
// to the first-encountered category in reduction order. With no records the
// sentinel ("None", 0) is returned.
func TopCategory(records []expense.Record) GroupAmount {
	groups := groupBy(records, func(r *expense.Record) (string, bool) {
		return r.Category, true
	})

	top := GroupAmount{Name: "None", Amount: 0}
	for _, g := range groups {
		if g.Amount > top.Amount {
			top = g
		}
	}
	return top
}

// Average is total/count rounded to 2 decimal places, 0 when empty.
func Average(records []expense.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	return round2(Total(records) / float64(len(records)))
}

// Filter keeps records matching both the free-text filter (case-insensitive
// substring over description, category and payment method) and the category
// filter ("all" or empty passes everything).
func Filter(records []expense.Record, text, category string) []expense.Record {
	needle := strings.ToLower(strings.TrimSpace(text))

	res := make([]expense.Record, 0)
	for i := range records {
		r := records[i]
		if category != "" && category != "all" && r.Category != category {
			continue
		}
		if needle != "" && !matchesText(&r, needle) {
			continue
		}
		res = append(res, r)
	}
	return res
}

func matchesText(r *expense.Record, needle string) bool {
	if r.Description != nil && strings.Contains(strings.ToLower(*r.Description), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(r.Category), needle) ||
		strings.Contains(strings.ToLower(r.PaymentMethod), needle)
}

// groupBy accumulates display amounts per key, preserving first-seen key
// order (Go maps do not keep insertion order, so it is tracked explicitly).
func groupBy(records []expense.Record, key func(*expense.Record) (string, bool)) []GroupAmount {
	sums := make(map[string]float64)
	order := make([]string, 0)

	for i := range records {
		k, ok := key(&records[i])
		if !ok {
			continue
		}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += records[i].DisplayAmount()
	}

	groups := make([]GroupAmount, 0, len(order))
	for _, k := range order {
		groups = append(groups, GroupAmount{Name: k, Amount: sums[k]})
	}
	return groups
}

func sortedDesc(groups []GroupAmount) []GroupAmount {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount > groups[j].Amount
	})
	return groups
}

func sameMonth(d, ref time.Time) bool {
	return d.Year() == ref.Year() && d.Month() == ref.Month()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
