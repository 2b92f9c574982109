package report

import (
	"sort"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// MostSoldLimit caps the most-sold articles ranking.
const MostSoldLimit = 10

type bucket struct {
	revenue decimal.Decimal
	count   int
}

func addTo(buckets map[string]*bucket, key string, amount decimal.Decimal) {
	b, ok := buckets[key]
	if !ok {
		b = &bucket{revenue: decimal.Zero}
		buckets[key] = b
	}
	b.revenue = b.revenue.Add(amount)
	b.count++
}

// PaymentBreakdown buckets bills by effective payment method.
//
// Split bills contribute their cash and card components as separate
// transactions. Legacy split bills recorded without component amounts are
// assumed to be an even split: total/2 to Cash, the remainder to Card.
// Everything else buckets under its method, absent methods under Unknown.
// An empty window yields an empty (non-nil) slice.
func PaymentBreakdown(bills []entity.Bill) []PaymentBucket {
	buckets := make(map[string]*bucket)

	for i := range bills {
		bill := &bills[i]
		if bill.PaymentMethod == enum.PaymentMethodSplit {
			cash := decimal.Zero
			card := decimal.Zero
			if bill.SplitCashAmount != nil {
				cash = *bill.SplitCashAmount
			}
			if bill.SplitCardAmount != nil {
				card = *bill.SplitCardAmount
			}

			if cash.IsZero() && card.IsZero() {
				// No split detail recorded: assume an even split.
				half := bill.Total.Div(decimal.NewFromInt(2)).Round(2)
				addTo(buckets, enum.PaymentMethodCash.String(), half)
				addTo(buckets, enum.PaymentMethodCard.String(), bill.Total.Sub(half))
				continue
			}
			if cash.IsPositive() {
				addTo(buckets, enum.PaymentMethodCash.String(), cash)
			}
			if card.IsPositive() {
				addTo(buckets, enum.PaymentMethodCard.String(), card)
			}
			continue
		}

		addTo(buckets, bill.PaymentMethod.String(), bill.Total)
	}

	return orderedPaymentBuckets(buckets)
}

// orderedPaymentBuckets flattens the bucket map in a fixed method order so
// repeated runs over the same window produce identical output.
func orderedPaymentBuckets(buckets map[string]*bucket) []PaymentBucket {
	order := []string{
		enum.PaymentMethodCash.String(),
		enum.PaymentMethodCard.String(),
		enum.PaymentMethodSplit.String(),
		enum.PaymentMethodUnknown.String(),
	}

	out := make([]PaymentBucket, 0, len(buckets))
	for _, method := range order {
		if b, ok := buckets[method]; ok {
			out = append(out, PaymentBucket{
				Method:           method,
				TotalRevenue:     b.revenue,
				TransactionCount: b.count,
			})
		}
	}
	return out
}

// CategoryBreakdown expands Closed and Submitted orders to their line
// items and groups them by article category, summing discounted line
// totals and counting line items. Items whose article was not loaded are
// skipped. Output is sorted by category name.
func CategoryBreakdown(orders []entity.Order) []CategoryBucket {
	buckets := make(map[string]*bucket)

	for i := range orders {
		order := &orders[i]
		if order.Status != enum.OrderStatusClosed && order.Status != enum.OrderStatusSubmitted {
			continue
		}
		for j := range order.Items {
			item := &order.Items[j]
			if item.Article == nil {
				continue
			}
			addTo(buckets, item.Article.Category, item.LineTotal())
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]CategoryBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, CategoryBucket{
			Category:      k,
			TotalIncome:   buckets[k].revenue,
			LineItemCount: buckets[k].count,
		})
	}
	return out
}

// CustomerTypeBreakdown groups bills by the linked customer's type. Bills
// with no linked customer fall into the canonical "Final Customer" bucket.
// Output is sorted by type label.
func CustomerTypeBreakdown(bills []entity.Bill) []CustomerTypeBucket {
	buckets := make(map[string]*bucket)

	for i := range bills {
		bill := &bills[i]
		key := enum.FinalCustomerLabel
		if bill.Customer != nil {
			key = bill.Customer.CustomerType.String()
		}
		addTo(buckets, key, bill.Total)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]CustomerTypeBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, CustomerTypeBucket{
			CustomerType:     k,
			TotalRevenue:     buckets[k].revenue,
			TransactionCount: buckets[k].count,
		})
	}
	return out
}

// MostSold groups order items by article name, summing quantity and gross
// income (quantity x unit price), and returns the top `limit` by quantity
// sold. The sort is stable and descends on quantity only; ties keep their
// first-seen order.
func MostSold(items []entity.OrderItem, limit int) []ArticleSales {
	index := make(map[string]int)
	var ranking []ArticleSales

	for i := range items {
		item := &items[i]
		if item.Article == nil {
			continue
		}
		income := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

		pos, ok := index[item.Article.Name]
		if !ok {
			index[item.Article.Name] = len(ranking)
			ranking = append(ranking, ArticleSales{
				ArticleName:  item.Article.Name,
				QuantitySold: item.Quantity,
				TotalIncome:  income,
			})
			continue
		}
		ranking[pos].QuantitySold += item.Quantity
		ranking[pos].TotalIncome = ranking[pos].TotalIncome.Add(income)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].QuantitySold > ranking[j].QuantitySold
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	if ranking == nil {
		ranking = []ArticleSales{}
	}
	return ranking
}

// ShiftTotals sums the figures persisted on a daily report: income and
// discount over the orders' bills, order count and guest count.
func ShiftTotals(orders []entity.Order) (income, discount decimal.Decimal, orderCount, pax int) {
	income = decimal.Zero
	discount = decimal.Zero
	for i := range orders {
		order := &orders[i]
		orderCount++
		pax += order.PaxAmount
		if order.Bill != nil {
			income = income.Add(order.Bill.Total)
			discount = discount.Add(order.Bill.Discount)
		}
	}
	return income, discount, orderCount, pax
}

// SalesRange sums persisted daily reports over a date range. ok is false
// when no reports matched; callers map that to a not-found result.
func SalesRange(reports []entity.DailyReport) (totals SalesRangeReport, ok bool) {
	if len(reports) == 0 {
		return SalesRangeReport{}, false
	}

	totals.TotalIncome = decimal.Zero
	totals.TotalDiscount = decimal.Zero
	for i := range reports {
		r := &reports[i]
		totals.TotalIncome = totals.TotalIncome.Add(r.TotalIncome)
		totals.TotalDiscount = totals.TotalDiscount.Add(r.TotalDiscount)
		totals.TotalOrders += r.TotalOrders
		totals.TotalPax += r.TotalPax
	}
	return totals, true
}
