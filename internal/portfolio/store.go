package portfolio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DateLayout is the purchase date format used in the file and on the command line.
const DateLayout = "2006-01-02"

// ErrNoFile is returned by Load when the portfolio file does not exist.
var ErrNoFile = errors.New("portfolio file not found")

// ParseError reports a portfolio file that exists but cannot be read as a portfolio.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed portfolio file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type fileMoney struct {
	Amount   string `yaml:"amount"`
	Currency string `yaml:"currency"`
}

type fileHolding struct {
	Symbol        string     `yaml:"symbol"`
	WatchOnly     bool       `yaml:"watch_only"`
	Quantity      *uint32    `yaml:"quantity,omitempty"`
	PurchasePrice *fileMoney `yaml:"purchase_price,omitempty"`
	PurchaseDate  string     `yaml:"purchase_date,omitempty"`
}

type filePortfolio struct {
	DefaultCurrency string        `yaml:"default_currency,omitempty"`
	Holdings        []fileHolding `yaml:"holdings"`
}

// File persists a portfolio as YAML at Path.
type File struct {
	Path string
	Log  zerolog.Logger
}

// NewFile returns a File store for path.
func NewFile(path string, log zerolog.Logger) *File {
	return &File{Path: path, Log: log.With().Str("component", "portfolio").Logger()}
}

// Load reads the portfolio. It returns ErrNoFile when the file is absent and
// a *ParseError when it is present but malformed.
func (f *File) Load() (Portfolio, error) {
	f.Log.Info().Str("path", f.Path).Msg("reading portfolio")

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Portfolio{}, ErrNoFile
		}
		return Portfolio{}, fmt.Errorf("failed to read portfolio: %w", err)
	}

	var raw filePortfolio
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Portfolio{}, &ParseError{Path: f.Path, Err: err}
	}
	p, err := decode(raw)
	if err != nil {
		return Portfolio{}, &ParseError{Path: f.Path, Err: err}
	}
	return p, nil
}

// Save writes the portfolio, creating parent directories as needed.
func (f *File) Save(p Portfolio) error {
	f.Log.Info().Str("path", f.Path).Int("items", len(p.Items)).Msg("writing portfolio")

	data, err := yaml.Marshal(encode(p))
	if err != nil {
		return fmt.Errorf("failed to encode portfolio: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0700); err != nil {
		return fmt.Errorf("failed to create portfolio directory: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write portfolio: %w", err)
	}
	return nil
}

// LoadOrCreate loads the portfolio, writing and returning the example
// portfolio when no file exists. created reports whether that happened.
func (f *File) LoadOrCreate() (p Portfolio, created bool, err error) {
	p, err = f.Load()
	if !errors.Is(err, ErrNoFile) {
		return p, false, err
	}
	p = Example()
	if err := f.Save(p); err != nil {
		return Portfolio{}, false, fmt.Errorf("failed to create example portfolio: %w", err)
	}
	return p, true, nil
}

func decode(raw filePortfolio) (Portfolio, error) {
	p := Portfolio{Items: make([]Item, 0, len(raw.Holdings))}
	if raw.DefaultCurrency != "" {
		cur, err := LookupCurrency(raw.DefaultCurrency)
		if err != nil {
			return Portfolio{}, fmt.Errorf("default_currency: %w", err)
		}
		p.DefaultCurrency = cur.Code
	}

	for i, h := range raw.Holdings {
		if h.Symbol == "" {
			return Portfolio{}, fmt.Errorf("holding %d: empty symbol", i+1)
		}
		sym := Symbol(h.Symbol)
		if h.WatchOnly {
			p.Items = append(p.Items, Watch{Sym: sym})
			continue
		}

		if h.PurchasePrice == nil {
			return Portfolio{}, fmt.Errorf("holding %s: missing purchase_price", sym)
		}
		if h.Quantity == nil {
			return Portfolio{}, fmt.Errorf("holding %s: missing quantity", sym)
		}
		price, err := ParseMoney(h.PurchasePrice.Amount, h.PurchasePrice.Currency)
		if err != nil {
			return Portfolio{}, fmt.Errorf("holding %s: %w", sym, err)
		}
		holding := Holding{Quantity: *h.Quantity, PurchasePrice: price}
		if h.PurchaseDate != "" {
			d, err := time.Parse(DateLayout, h.PurchaseDate)
			if err != nil {
				return Portfolio{}, fmt.Errorf("holding %s: invalid purchase_date %q", sym, h.PurchaseDate)
			}
			holding.PurchaseDate = d
		}
		p.Items = append(p.Items, Price{Sym: sym, Holding: holding})
	}
	return p, nil
}

func encode(p Portfolio) filePortfolio {
	raw := filePortfolio{
		DefaultCurrency: p.DefaultCurrency,
		Holdings:        make([]fileHolding, 0, len(p.Items)),
	}
	for _, it := range p.Items {
		switch it := it.(type) {
		case Watch:
			raw.Holdings = append(raw.Holdings, fileHolding{Symbol: string(it.Sym), WatchOnly: true})
		case Price:
			qty := it.Holding.Quantity
			fh := fileHolding{
				Symbol:        string(it.Sym),
				Quantity:      &qty,
				PurchasePrice: encodeMoney(it.Holding.PurchasePrice),
			}
			if it.Holding.HasPurchaseDate() {
				fh.PurchaseDate = it.Holding.PurchaseDate.Format(DateLayout)
			}
			raw.Holdings = append(raw.Holdings, fh)
		}
	}
	return raw
}

func encodeMoney(m *money.Money) *fileMoney {
	if m == nil {
		return &fileMoney{Amount: "0", Currency: money.USD}
	}
	return &fileMoney{Amount: DecimalString(m), Currency: m.Currency().Code}
}
