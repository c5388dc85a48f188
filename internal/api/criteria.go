package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tonearm/tonearm/internal/view"
)

// criteriaFromQuery builds view filter criteria from list query parameters:
// q (term), status or genre (category), min_amount, max_amount, from, to.
func criteriaFromQuery(r *http.Request) (view.Criteria, error) {
	q := r.URL.Query()
	c := view.Criteria{Term: q.Get("q")}
	if s := q.Get("status"); s != "" {
		c.Category = s
	} else if g := q.Get("genre"); g != "" {
		c.Category = g
	}
	for name, dst := range map[string]**float64{"min_amount": &c.MinAmount, "max_amount": &c.MaxAmount} {
		if raw := q.Get(name); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return c, fmt.Errorf("invalid %s: %q", name, raw)
			}
			*dst = &v
		}
	}
	for name, dst := range map[string]**time.Time{"from": &c.From, "to": &c.To} {
		if raw := q.Get(name); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return c, fmt.Errorf("invalid %s: %q (want RFC 3339)", name, raw)
			}
			*dst = &t
		}
	}
	return c, nil
}
