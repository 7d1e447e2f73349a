package smoke

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Case is one request of the suite and the status it must return.
type Case struct {
	Name     string
	Method   string
	Path     string
	Body     any
	Expected int
}

// Result is the outcome of one Case.
type Result struct {
	Case
	Status int
	Err    error
}

// Passed reports whether the case returned the expected status.
func (r Result) Passed() bool {
	return r.Err == nil && r.Status == r.Expected
}

// String renders the result as a single report line.
func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("✗ %s: ERROR (%v)", r.Name, r.Err)
	case r.Passed():
		return fmt.Sprintf("✓ %s: PASS (Status %d)", r.Name, r.Status)
	default:
		return fmt.Sprintf("✗ %s: FAIL (Expected %d, got %d)", r.Name, r.Expected, r.Status)
	}
}

// DefaultSuite is the documented request set. Every play case needs the
// matching audio file to be present on the server.
func DefaultSuite() []Case {
	cases := []Case{
		{Name: "Root endpoint", Method: fiber.MethodGet, Path: "/", Expected: fiber.StatusOK},
		{Name: "Health check", Method: fiber.MethodGet, Path: "/health", Expected: fiber.StatusOK},
		{Name: "Config endpoint", Method: fiber.MethodGet, Path: "/config", Expected: fiber.StatusOK},
	}
	for i := 1; i <= 8; i++ {
		cases = append(cases, Case{
			Name:     fmt.Sprintf("Play sound %d (GET)", i),
			Method:   fiber.MethodGet,
			Path:     fmt.Sprintf("/play/%d", i),
			Expected: fiber.StatusOK,
		})
	}
	return append(cases,
		Case{Name: "Play sound (POST)", Method: fiber.MethodPost, Path: "/play", Body: map[string]any{"button": 3}, Expected: fiber.StatusOK},
		Case{Name: "Invalid button 0", Method: fiber.MethodGet, Path: "/play/0", Expected: fiber.StatusBadRequest},
		Case{Name: "Invalid button 9", Method: fiber.MethodGet, Path: "/play/9", Expected: fiber.StatusBadRequest},
		Case{Name: "Invalid POST data", Method: fiber.MethodPost, Path: "/play", Body: map[string]any{"button": "invalid"}, Expected: fiber.StatusBadRequest},
	)
}

// Run executes cases in order against baseURL. It stops early, marking the
// remaining cases with ctx's error, if ctx is cancelled.
func Run(ctx context.Context, baseURL string, cases []Case, timeout time.Duration) []Result {
	baseURL = strings.TrimRight(baseURL, "/")
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Case: c, Err: err})
			continue
		}
		status, err := do(baseURL, c, timeout)
		results = append(results, Result{Case: c, Status: status, Err: err})
	}
	return results
}

// Passed counts passing results.
func Passed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Passed() {
			n++
		}
	}
	return n
}

func do(baseURL string, c Case, timeout time.Duration) (int, error) {
	var agent *fiber.Agent
	switch c.Method {
	case fiber.MethodGet:
		agent = fiber.Get(baseURL + c.Path)
	case fiber.MethodPost:
		agent = fiber.Post(baseURL + c.Path)
	default:
		return 0, fmt.Errorf("unsupported method %s", c.Method)
	}
	if c.Body != nil {
		agent.JSON(c.Body)
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}
	return code, nil
}
