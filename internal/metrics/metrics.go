package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Process-wide counters.
var (
	Requests        Counter
	RateLimited     Counter
	OrdersCreated   Counter
	OrdersUpdated   Counter
	StockRejections Counter
)

type sample struct {
	name    string
	counter *Counter
}

func samples() []sample {
	return []sample{
		{"http_requests_total", &Requests},
		{"http_rate_limited_total", &RateLimited},
		{"orders_created_total", &OrdersCreated},
		{"orders_updated_total", &OrdersUpdated},
		{"orders_stock_rejected_total", &StockRejections},
	}
}

// Handler writes every counter as "name value" lines.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		for _, s := range samples() {
			fmt.Fprintf(w, "%s %d\n", s.name, s.counter.Load())
		}
	})
}
