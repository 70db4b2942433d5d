// Package feed owns the incremental listing state: the pagination cursor,
// the browse/keyword mode, the in-flight guard, and the exhaustion flag.
// The controller is a pure state machine; callers execute the fetch plans
// it hands out and feed the results back through Apply.
package feed

import (
	"strings"

	"github.com/taipei-trip/trip-cli/internal/models"
)

// Mode is the listing mode: unfiltered browsing or a keyword search.
// The two are mutually exclusive and share one cursor.
type Mode struct {
	Keyword string
}

// Browse is the unfiltered mode.
var Browse = Mode{}

// Browsing reports whether the mode carries no keyword.
func (m Mode) Browsing() bool {
	return m.Keyword == ""
}

// Plan describes one page fetch the caller should perform. Epoch tags the
// mode generation the plan was issued under; results from an abandoned
// generation are dropped instead of rendered.
type Plan struct {
	Page    int
	Keyword string
	Epoch   int
}

// Result carries a finished fetch back into the controller.
type Result struct {
	Epoch       int
	Attractions []models.Attraction
	NextPage    *int
	Err         error
}

// Outcome classifies what Apply did with a result.
type Outcome int

const (
	// OutcomeStale means the result belonged to an abandoned mode and was
	// discarded without touching any state.
	OutcomeStale Outcome = iota
	// OutcomeError means the fetch failed; state is unchanged except the
	// in-flight guard.
	OutcomeError
	// OutcomeExhausted means the page was empty; automatic fetching stops
	// until the next mode switch.
	OutcomeExhausted
	// OutcomeAppended means records were appended and the cursor advanced.
	OutcomeAppended
)

// Controller is the pagination/search state machine. Per mode generation it
// moves Idle → Fetching → {Idle | Exhausted}; Exhausted is terminal until
// SetMode restarts the cycle.
type Controller struct {
	cursor    int
	mode      Mode
	inFlight  bool
	exhausted bool
	epoch     int

	records []models.Attraction
	lastErr error
}

// NewController returns a controller in Browse mode at the start cursor.
func NewController() *Controller {
	return &Controller{}
}

// TriggerFetch requests the next page fetch. It returns false and does
// nothing when a fetch is already in flight (the trigger is silently
// dropped, never queued) or when the current mode is exhausted.
func (c *Controller) TriggerFetch() (Plan, bool) {
	if c.inFlight || c.exhausted {
		return Plan{}, false
	}
	c.inFlight = true
	return Plan{
		Page:    c.cursor,
		Keyword: c.mode.Keyword,
		Epoch:   c.epoch,
	}, true
}

// SetMode switches between browsing and keyword search. An empty or
// whitespace-only keyword is a reset to Browse. The switch always clears
// the rendered records, resets the cursor to the start, re-arms the fetch
// trigger, and issues the first fetch of the new generation. A response
// still in flight for the old mode keeps its old epoch and will be
// discarded by Apply.
func (c *Controller) SetMode(keyword string) Plan {
	c.mode = Mode{Keyword: strings.TrimSpace(keyword)}
	c.epoch++
	c.cursor = 0
	c.records = nil
	c.exhausted = false
	c.inFlight = false
	c.lastErr = nil

	plan, _ := c.TriggerFetch()
	return plan
}

// Apply finishes the fetch a Plan started. Whatever the outcome, the
// in-flight guard is released for the current generation so loading
// placeholders can be torn down.
func (c *Controller) Apply(res Result) Outcome {
	if res.Epoch != c.epoch {
		// A late response from an abandoned mode. The in-flight guard
		// belongs to the new generation, so it stays untouched.
		return OutcomeStale
	}

	c.inFlight = false

	if res.Err != nil {
		c.lastErr = res.Err
		return OutcomeError
	}

	if len(res.Attractions) == 0 {
		// Terminal for this mode; the cursor stays where it was.
		c.exhausted = true
		return OutcomeExhausted
	}

	// Server order is preserved and nothing is deduplicated: a server that
	// returns overlapping pages on cursor reuse will show duplicate cards.
	c.records = append(c.records, res.Attractions...)
	if res.NextPage != nil {
		c.cursor = *res.NextPage
	} else {
		c.cursor++
	}
	c.lastErr = nil
	return OutcomeAppended
}

// Records returns the accumulated attractions in arrival order.
func (c *Controller) Records() []models.Attraction {
	return c.records
}

// Mode returns the current listing mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Cursor returns the page the next fetch would request.
func (c *Controller) Cursor() int {
	return c.cursor
}

// InFlight reports whether a fetch is outstanding; while true, loading
// placeholders are shown and further triggers are dropped.
func (c *Controller) InFlight() bool {
	return c.inFlight
}

// Exhausted reports whether the current mode has run out of pages.
func (c *Controller) Exhausted() bool {
	return c.exhausted
}

// Epoch returns the current mode generation.
func (c *Controller) Epoch() int {
	return c.epoch
}

// Err returns the most recent fetch error for the current mode, or nil.
func (c *Controller) Err() error {
	return c.lastErr
}
