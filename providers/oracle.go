package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultQuote is the price of last resort, used when the oracle is
// unreachable, no hint was supplied and nothing is cached yet. Order
// placement must never fail on a missing price.
var DefaultQuote = decimal.NewFromInt(65000)

const defaultOracleTimeout = 3 * time.Second

// PriceQuote is a single oracle reading: the parsed price plus the raw
// response body for audit.
type PriceQuote struct {
	Price decimal.Decimal
	Raw   []byte
}

type oracleResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// PriceOracle fetches current asset prices over HTTP and keeps the
// last known quote per symbol as a fallback.
type PriceOracle struct {
	baseURL string
	client  *http.Client

	mu        sync.RWMutex
	lastKnown map[string]decimal.Decimal
}

// Oracle is the process-wide price oracle, re-initialized in main once
// the environment is loaded.
var Oracle = NewPriceOracle()

func InitOracle() {
	Oracle = NewPriceOracle()
	if Oracle.baseURL == "" {
		log.Println("⚠️  ORACLE_URL not set, using hint/default entry prices")
	}
}

func NewPriceOracle() *PriceOracle {
	timeout := defaultOracleTimeout
	if v := os.Getenv("ORACLE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}
	return &PriceOracle{
		baseURL:   os.Getenv("ORACLE_URL"),
		client:    &http.Client{Timeout: timeout},
		lastKnown: make(map[string]decimal.Decimal),
	}
}

// Quote returns the current price for an asset like "BTC/USDT". On
// oracle failure it falls back to the caller's hint, then the cached
// last-known quote, then DefaultQuote. It never returns an error.
func (o *PriceOracle) Quote(asset string, hint *decimal.Decimal) PriceQuote {
	if o.baseURL != "" {
		if q, err := o.fetch(asset); err == nil {
			o.mu.Lock()
			o.lastKnown[asset] = q.Price
			o.mu.Unlock()
			return q
		} else {
			log.Printf("⚠️  Oracle fetch failed for %s: %v", asset, err)
		}
	}

	if hint != nil && hint.IsPositive() {
		return PriceQuote{Price: *hint}
	}

	o.mu.RLock()
	cached, ok := o.lastKnown[asset]
	o.mu.RUnlock()
	if ok {
		return PriceQuote{Price: cached}
	}

	return PriceQuote{Price: DefaultQuote}
}

func (o *PriceOracle) fetch(asset string) (PriceQuote, error) {
	symbol := strings.ReplaceAll(asset, "/", "")
	url := fmt.Sprintf("%s?symbol=%s", o.baseURL, symbol)

	resp, err := o.client.Get(url)
	if err != nil {
		return PriceQuote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PriceQuote{}, fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return PriceQuote{}, err
	}

	var parsed oracleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return PriceQuote{}, err
	}

	price, err := decimal.NewFromString(parsed.Price)
	if err != nil || !price.IsPositive() {
		return PriceQuote{}, fmt.Errorf("oracle returned bad price %q", parsed.Price)
	}

	return PriceQuote{Price: price, Raw: body}, nil
}
