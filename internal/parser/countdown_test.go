package parser

import (
	"testing"

	"github.com/kiwicart/backend/internal/domain"
)

func TestCountdownCanParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"store name present", "Countdown Auckland\nsome text", true},
		{"item-shaped line without store name", "MILK 2L  $4.50", true},
		{"item line without dollar sign", "BREAD WHITE  3.20", true},
		{"plain prose", "meeting notes from tuesday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countdownCanParse(tt.text); got != tt.want {
				t.Errorf("countdownCanParse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountdownParse(t *testing.T) {
	t.Run("full receipt", func(t *testing.T) {
		text := `Countdown Auckland
MILK 2L  $4.50
BREAD WHITE  $3.20
2 x CHOC BISCUITS $7.00
SUBTOTAL  $14.70
TOTAL  $14.70
15/03/2024
R123456789`

		r := countdownParse(text)

		if r.StoreName != StoreCountdown {
			t.Errorf("StoreName = %q, want %q", r.StoreName, StoreCountdown)
		}
		if r.Date != "2024-03-15" {
			t.Errorf("Date = %q, want 2024-03-15", r.Date)
		}
		if r.ReceiptNumber != "123456789" {
			t.Errorf("ReceiptNumber = %q, want 123456789", r.ReceiptNumber)
		}
		if r.Total != 14.70 {
			t.Errorf("Total = %v, want 14.70", r.Total)
		}
		if r.Subtotal != 14.70 {
			t.Errorf("Subtotal = %v, want 14.70", r.Subtotal)
		}
		if len(r.Items) != 3 {
			t.Fatalf("len(Items) = %d, want 3", len(r.Items))
		}

		milk := r.Items[0]
		if milk.Name != "MILK 2L" || milk.Price != 4.50 || milk.Quantity != 1 {
			t.Errorf("first item = %+v, want MILK 2L / 4.50 / qty 1", milk)
		}
		if milk.Category != "dairy" {
			t.Errorf("milk category = %q, want dairy", milk.Category)
		}

		// Quantity lines carry the line total; the stored price is per unit.
		biscuits := r.Items[2]
		if biscuits.Name != "CHOC BISCUITS" {
			t.Errorf("biscuits name = %q, want CHOC BISCUITS", biscuits.Name)
		}
		if biscuits.Quantity != 2 {
			t.Errorf("biscuits quantity = %d, want 2", biscuits.Quantity)
		}
		if biscuits.Price != 3.50 {
			t.Errorf("biscuits price = %v, want 3.50", biscuits.Price)
		}
	})

	t.Run("summary lines never become items", func(t *testing.T) {
		text := `Countdown
MILK 2L  $4.50
TOTAL  $4.50
EFTPOS  $4.50
CHANGE  $0.00`

		r := countdownParse(text)

		if len(r.Items) != 1 {
			t.Errorf("len(Items) = %d, want 1", len(r.Items))
		}
		if r.Total != 4.50 {
			t.Errorf("Total = %v, want 4.50", r.Total)
		}
	})

	t.Run("subtotal line is not mistaken for the total", func(t *testing.T) {
		text := `Countdown
MILK 2L  $4.50
SUBTOTAL  $4.50
TOTAL  $5.18`

		r := countdownParse(text)

		if r.Subtotal != 4.50 {
			t.Errorf("Subtotal = %v, want 4.50", r.Subtotal)
		}
		if r.Total != 5.18 {
			t.Errorf("Total = %v, want 5.18", r.Total)
		}
	})

	t.Run("missing total falls back to item sum", func(t *testing.T) {
		text := `Countdown
MILK 2L  $4.50
BREAD WHITE  $3.20`

		r := countdownParse(text)

		if r.Total != 7.70 {
			t.Errorf("Total = %v, want 7.70", r.Total)
		}
	})

	t.Run("missing date falls back to today", func(t *testing.T) {
		r := countdownParse("Countdown\nMILK 2L  $4.50")

		if r.Date != todayISO() {
			t.Errorf("Date = %q, want today", r.Date)
		}
	})

	t.Run("empty text yields empty items not nil", func(t *testing.T) {
		r := countdownParse("Countdown")

		if r.Items == nil {
			t.Error("Items = nil, want empty slice")
		}
		if len(r.Items) != 0 {
			t.Errorf("len(Items) = %d, want 0", len(r.Items))
		}
	})
}

func TestCountdownExtractItem(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *domain.ParsedItem
	}{
		{
			name: "plain item",
			line: "FROZEN PEAS 500G  $2.99",
			want: &domain.ParsedItem{Name: "FROZEN PEAS 500G", Price: 2.99, Quantity: 1, Category: "general"},
		},
		{
			name: "skip keyword line",
			line: "GST INCLUDED  $1.15",
			want: nil,
		},
		{
			name: "no price",
			line: "LOYALTY CARD SCANNED",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countdownExtractItem(tt.line)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("countdownExtractItem() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("countdownExtractItem() = nil, want item")
			}
			if *got != *tt.want {
				t.Errorf("countdownExtractItem() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
