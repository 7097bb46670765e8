package portfolio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
)

// ItemSpec is an item as typed by the user. Empty fields were not given.
type ItemSpec struct {
	Symbol   string
	Price    string
	Quantity string
	Date     string
	Currency string
}

// Item validates the spec and builds the item. With neither a price nor a
// quantity the result is a Watch; otherwise a Price whose missing price or
// quantity is zero.
func (s ItemSpec) Item() (Item, error) {
	sym := strings.TrimSpace(s.Symbol)
	if sym == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if s.Price == "" && s.Quantity == "" {
		if s.Date != "" {
			return nil, fmt.Errorf("purchase date requires a price or quantity")
		}
		return Watch{Sym: Symbol(sym)}, nil
	}

	code := s.Currency
	if code == "" {
		code = money.USD
	}
	cur, err := LookupCurrency(code)
	if err != nil {
		return nil, err
	}
	h := Holding{PurchasePrice: money.New(0, cur.Code)}
	if s.Price != "" {
		price, err := ParseMoney(s.Price, cur.Code)
		if err != nil {
			return nil, fmt.Errorf("invalid purchase price: %w", err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("invalid purchase price %q: must not be negative", s.Price)
		}
		h.PurchasePrice = price
	}
	if s.Quantity != "" {
		q, err := strconv.ParseUint(strings.TrimSpace(s.Quantity), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q: must be a non-negative integer", s.Quantity)
		}
		h.Quantity = uint32(q)
	}
	if s.Date != "" {
		d, err := time.Parse(DateLayout, strings.TrimSpace(s.Date))
		if err != nil {
			return nil, fmt.Errorf("invalid purchase date %q: expected YYYY-MM-DD", s.Date)
		}
		h.PurchaseDate = d
	}
	return Price{Sym: Symbol(sym), Holding: h}, nil
}
