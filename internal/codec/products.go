// Package codec converts product lists to and from their text encodings.
//
// Both encodings are "name:price" segments. The store joins them with ", "
// and CSV files join them with ",". Decoding splits on "," and trims each
// segment, so it accepts either form.
package codec

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

const (
	StoreSeparator = ", "
	CSVSeparator   = ","
	priceSeparator = ":"
)

// EncodeStore renders products in the persisted order representation.
func EncodeStore(products []model.Product) string {
	return encode(products, StoreSeparator)
}

// EncodeCSV renders products in the CSV order file representation.
func EncodeCSV(products []model.Product) string {
	return encode(products, CSVSeparator)
}

func encode(products []model.Product, sep string) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, p.Name+priceSeparator+p.Price.String())
	}
	return strings.Join(parts, sep)
}

// Segment is one raw "name:price" entry split at the last colon.
type Segment struct {
	Name  string
	Price string
}

// Segments splits text into trimmed segments. Entries without a price
// separator or with an empty name are dropped and counted.
func Segments(text string) ([]Segment, int) {
	var (
		result  []Segment
		skipped int
	)
	for _, raw := range strings.Split(text, CSVSeparator) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		idx := strings.LastIndex(raw, priceSeparator)
		if idx < 0 {
			skipped++
			continue
		}
		name := strings.TrimSpace(raw[:idx])
		if name == "" {
			skipped++
			continue
		}
		result = append(result, Segment{Name: name, Price: strings.TrimSpace(raw[idx+1:])})
	}
	return result, skipped
}

// Decode parses text into products of the given category. Segments that do
// not parse, including bad or negative prices, are skipped and counted.
func Decode(text, category string) ([]model.Product, int) {
	segments, skipped := Segments(text)
	products := make([]model.Product, 0, len(segments))
	for _, s := range segments {
		price, err := decimal.NewFromString(s.Price)
		if err != nil {
			skipped++
			continue
		}
		p, err := model.NewProduct(s.Name, price, category)
		if err != nil {
			skipped++
			continue
		}
		products = append(products, p)
	}
	return products, skipped
}

// Names returns product names in encounter order, ignoring prices.
func Names(text string) []string {
	segments, _ := Segments(text)
	names := make([]string, 0, len(segments))
	for _, s := range segments {
		names = append(names, s.Name)
	}
	return names
}

// Total sums the prices of the segments of text that decode.
func Total(text string) decimal.Decimal {
	products, _ := Decode(text, "")
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}

// StoreToCSV re-encodes a persisted product list for CSV export.
func StoreToCSV(text string) string {
	products, _ := Decode(text, "")
	return EncodeCSV(products)
}
