package e2e

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// RowsFunc produces the full row set one provider API answers for a request.
// Rows are field-keyed; the stub projects them into the caller's field order.
type RowsFunc func(params map[string]string) []map[string]any

// Failure is one scripted provider error, consumed FIFO per API. A non-zero
// Status short-circuits with that HTTP status; otherwise the stub answers a
// 200 envelope carrying Code and Msg.
type Failure struct {
	Status     int
	RetryAfter string
	Code       int
	Msg        string
}

type providerGate struct {
	entered chan struct{}
	release chan struct{}
}

// StubProvider is an httptest server speaking the upstream data vendor's
// POST protocol. Scenarios script per-API row sets, inject failures, and can
// hold requests open to observe in-flight cancellation.
type StubProvider struct {
	srv *httptest.Server

	mu       sync.Mutex
	token    string
	pageSize int
	scripts  map[string]RowsFunc
	failures map[string][]Failure
	gates    map[string]*providerGate
	calls    map[string]int
	params   map[string][]map[string]string
}

// NewStubProvider starts the stub. The server only accepts the given token.
func NewStubProvider(token string) *StubProvider {
	s := &StubProvider{
		token:    token,
		scripts:  make(map[string]RowsFunc),
		failures: make(map[string][]Failure),
		gates:    make(map[string]*providerGate),
		calls:    make(map[string]int),
		params:   make(map[string][]map[string]string),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// URL is the stub's base URL.
func (s *StubProvider) URL() string { return s.srv.URL }

// Close shuts the server down. Any armed gates must be released first or the
// close will wait on the held requests.
func (s *StubProvider) Close() { s.srv.Close() }

// Script registers the row producer for one API name.
func (s *StubProvider) Script(apiName string, rows RowsFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts[apiName] = rows
}

// SetPageSize caps rows per response so multi-page pagination is exercised.
// Zero serves everything in one page.
func (s *StubProvider) SetPageSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageSize = n
}

// FailNext queues a failure for the API's next request.
func (s *StubProvider) FailNext(apiName string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[apiName] = append(s.failures[apiName], f)
}

// Hold traps every request for the API until release is called. The entered
// channel receives one signal per trapped request.
func (s *StubProvider) Hold(apiName string) (entered <-chan struct{}, release func()) {
	g := &providerGate{
		entered: make(chan struct{}, 64),
		release: make(chan struct{}),
	}
	s.mu.Lock()
	s.gates[apiName] = g
	s.mu.Unlock()

	var once sync.Once
	return g.entered, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.gates, apiName)
			s.mu.Unlock()
			close(g.release)
		})
	}
}

// Calls reports how many requests the API has received.
func (s *StubProvider) Calls(apiName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[apiName]
}

// Params returns the request parameters seen by the API, in arrival order.
func (s *StubProvider) Params(apiName string) []map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]string, len(s.params[apiName]))
	for i, p := range s.params[apiName] {
		cp := make(map[string]string, len(p))
		for k, v := range p {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

type stubRequest struct {
	APIName string            `json:"api_name"`
	Token   string            `json:"token"`
	Params  map[string]string `json:"params"`
	Fields  string            `json:"fields"`
}

type stubData struct {
	Fields  []string `json:"fields"`
	Items   [][]any  `json:"items"`
	HasMore bool     `json:"has_more"`
}

type stubResponse struct {
	Code int       `json:"code"`
	Msg  string    `json:"msg"`
	Data *stubData `json:"data,omitempty"`
}

func (s *StubProvider) handle(w http.ResponseWriter, r *http.Request) {
	var req stubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.calls[req.APIName]++
	s.params[req.APIName] = append(s.params[req.APIName], req.Params)
	gate := s.gates[req.APIName]
	var fail *Failure
	if q := s.failures[req.APIName]; len(q) > 0 {
		fail = &q[0]
		s.failures[req.APIName] = q[1:]
	}
	script := s.scripts[req.APIName]
	pageSize := s.pageSize
	token := s.token
	s.mu.Unlock()

	if gate != nil {
		gate.entered <- struct{}{}
		select {
		case <-gate.release:
		case <-r.Context().Done():
			return
		}
	}

	if fail != nil {
		if fail.Status != 0 {
			if fail.RetryAfter != "" {
				w.Header().Set("Retry-After", fail.RetryAfter)
			}
			http.Error(w, fail.Msg, fail.Status)
			return
		}
		writeJSON(w, stubResponse{Code: fail.Code, Msg: fail.Msg})
		return
	}

	if req.Token != token {
		writeJSON(w, stubResponse{Code: 2002, Msg: "token invalid"})
		return
	}
	if script == nil {
		writeJSON(w, stubResponse{Code: 2001, Msg: fmt.Sprintf("unknown api %s", req.APIName)})
		return
	}

	rows := script(req.Params)
	offset, _ := strconv.Atoi(req.Params["offset"])
	if offset > len(rows) {
		offset = len(rows)
	}
	end := len(rows)
	if pageSize > 0 && offset+pageSize < end {
		end = offset + pageSize
	}
	page := rows[offset:end]

	fields := splitFields(req.Fields)
	if len(fields) == 0 && len(rows) > 0 {
		for k := range rows[0] {
			fields = append(fields, k)
		}
		sort.Strings(fields)
	}
	items := make([][]any, len(page))
	for i, row := range page {
		item := make([]any, len(fields))
		for j, f := range fields {
			item[j] = row[f]
		}
		items[i] = item
	}
	writeJSON(w, stubResponse{
		Msg:  "ok",
		Data: &stubData{Fields: fields, Items: items, HasMore: end < len(rows)},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CalendarRows scripts the trading calendar: every calendar day in
// [from, to] is present, weekdays open and weekends closed. Range params,
// when sent, narrow the answer.
func CalendarRows(from, to time.Time) RowsFunc {
	return func(params map[string]string) []map[string]any {
		exchange := params["exchange"]
		if exchange == "" {
			exchange = "SSE"
		}
		var rows []map[string]any
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			date := models.FormatTradeDate(d)
			if start := params["start_date"]; start != "" && date < start {
				continue
			}
			if end := params["end_date"]; end != "" && date > end {
				continue
			}
			isOpen := 1
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				isOpen = 0
			}
			rows = append(rows, map[string]any{
				"exchange": exchange,
				"cal_date": date,
				"is_open":  isOpen,
			})
		}
		return rows
	}
}

// QuoteRows scripts a per-date quote API for the given codes. Prices follow
// a deterministic gentle uptrend so indicator scoring has signal to work
// with; the same code and date always produce the same bar.
func QuoteRows(codes ...string) RowsFunc {
	return func(params map[string]string) []map[string]any {
		date := params["trade_date"]
		if date == "" {
			return nil
		}
		rows := make([]map[string]any, 0, len(codes))
		for _, code := range codes {
			rows = append(rows, synthQuote(code, date))
		}
		return rows
	}
}

// StockBasicRows scripts the listing reference for the given codes.
func StockBasicRows(codes ...string) RowsFunc {
	return func(map[string]string) []map[string]any {
		rows := make([]map[string]any, 0, len(codes))
		for i, code := range codes {
			rows = append(rows, map[string]any{
				"ts_code":   code,
				"symbol":    strings.SplitN(code, ".", 2)[0],
				"name":      fmt.Sprintf("Listed Co %d", i+1),
				"area":      "Shanghai",
				"industry":  "Banking",
				"market":    "Main Board",
				"list_date": "19991110",
			})
		}
		return rows
	}
}

var quoteEpoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// synthQuote builds the full field union for one code and date, so a single
// fixture serves the quote, factor, fundamentals, and moneyflow APIs.
func synthQuote(code, date string) map[string]any {
	d, err := models.ParseTradeDate(date)
	if err != nil {
		d = quoteEpoch
	}
	ord := float64(int(d.Sub(quoteEpoch).Hours() / 24))
	base := 80.0 + 7.5*float64(len(code)%3)
	for _, c := range code {
		base += float64(c%7) * 0.9
	}
	closeP := base + 0.08*ord + 1.5*math.Sin(ord/9)
	vol := 1_000_000 + 1000*ord
	return map[string]any{
		"ts_code":        code,
		"trade_date":     date,
		"open":           round2(closeP - 0.35),
		"high":           round2(closeP + 0.60),
		"low":            round2(closeP - 0.80),
		"close":          round2(closeP),
		"pre_close":      round2(closeP - 0.08),
		"pct_chg":        0.1,
		"vol":            vol,
		"amount":         round2(vol * closeP / 1000),
		"adj_factor":     round2(1.0 + ord/10000),
		"turnover_rate":  1.2,
		"volume_ratio":   0.9,
		"pe":             12.5,
		"pb":             1.4,
		"total_mv":       round2(closeP * 1_000_000),
		"circ_mv":        round2(closeP * 800_000),
		"buy_sm_amount":  round2(vol / 50),
		"sell_sm_amount": round2(vol / 60),
		"buy_lg_amount":  round2(vol / 20),
		"sell_lg_amount": round2(vol / 25),
		"net_mf_amount":  round2(vol / 100),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
