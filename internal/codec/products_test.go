package codec

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

func products(t *testing.T) []model.Product {
	t.Helper()
	laptop, err := model.NewProduct("Laptop", decimal.NewFromInt(75000), "Electronics")
	if err != nil {
		t.Fatal(err)
	}
	mouse, err := model.NewProduct("Mouse", decimal.RequireFromString("1500.50"), "Electronics")
	if err != nil {
		t.Fatal(err)
	}
	return []model.Product{laptop, mouse}
}

func TestEncodeSeparators(t *testing.T) {
	items := products(t)
	if got := EncodeStore(items); got != "Laptop:75000, Mouse:1500.5" {
		t.Fatalf("unexpected store encoding %q", got)
	}
	if got := EncodeCSV(items); got != "Laptop:75000,Mouse:1500.5" {
		t.Fatalf("unexpected csv encoding %q", got)
	}
	if got := EncodeStore(nil); got != "" {
		t.Fatalf("expected empty encoding, got %q", got)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	items := products(t)
	for _, text := range []string{EncodeStore(items), EncodeCSV(items)} {
		decoded, skipped := Decode(text, model.DefaultCategory)
		if skipped != 0 {
			t.Fatalf("unexpected skipped count %d for %q", skipped, text)
		}
		if len(decoded) != len(items) {
			t.Fatalf("expected %d products, got %d", len(items), len(decoded))
		}
		for i := range items {
			if decoded[i].Name != items[i].Name || !decoded[i].Price.Equal(items[i].Price) {
				t.Fatalf("product %d mismatch: %+v vs %+v", i, decoded[i], items[i])
			}
			if decoded[i].Category != model.DefaultCategory {
				t.Fatalf("expected default category, got %q", decoded[i].Category)
			}
		}
	}
}

func TestDecodeSkipsMalformedSegments(t *testing.T) {
	decoded, skipped := Decode("Laptop:75000,Broken, Mouse:abc,:10,Cable:-5,Book:500", "")
	if skipped != 4 {
		t.Fatalf("expected four skipped segments, got %d", skipped)
	}
	if len(decoded) != 2 || decoded[0].Name != "Laptop" || decoded[1].Name != "Book" {
		t.Fatalf("unexpected products %+v", decoded)
	}
}

func TestNamesIgnoresPricesAndGarbage(t *testing.T) {
	names := Names("Laptop:75000, Mouse:1500, junk, , Book:oops")
	want := []string{"Laptop", "Mouse", "Book"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestNameWithColonSplitsAtLastSeparator(t *testing.T) {
	decoded, skipped := Decode("Cable 2:1:300", "")
	if skipped != 0 || len(decoded) != 1 {
		t.Fatalf("unexpected decode result %+v skipped=%d", decoded, skipped)
	}
	if decoded[0].Name != "Cable 2:1" || !decoded[0].Price.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected product %+v", decoded[0])
	}
}

func TestStoreToCSV(t *testing.T) {
	if got := StoreToCSV("Laptop:75000, Mouse:1500"); got != "Laptop:75000,Mouse:1500" {
		t.Fatalf("unexpected csv text %q", got)
	}
}

func TestTotalSumsDecodedPrices(t *testing.T) {
	if got := Total("Laptop:75000, Mouse:1500.50, Cable, Bad:abc"); !got.Equal(decimal.RequireFromString("76500.50")) {
		t.Fatalf("unexpected total %s", got)
	}
	if got := Total(""); !got.IsZero() {
		t.Fatalf("expected zero total, got %s", got)
	}
}
