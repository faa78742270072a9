// Package availability reports whether domain names for a brand are free.
package availability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/raphaelgruber/namesmith/internal/metrics"
	"github.com/raphaelgruber/namesmith/internal/models"
	"golang.org/x/sync/errgroup"
)

// DefaultTLDs are checked when no TLDs are requested.
var DefaultTLDs = []string{"com", "io", "co", "ai", "net", "app"}

// ErrInvalidName indicates a name with no characters usable in a domain label.
var ErrInvalidName = errors.New("name has no valid domain characters")

// How a verdict was reached.
const (
	VerdictNoDelegation = "no_delegation"
	VerdictDelegated    = "delegated"
	VerdictLookupError  = "lookup_error"
)

// DomainResult is the availability of one domain.
type DomainResult struct {
	TLD       string `json:"tld"`
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Verdict   string `json:"verdict"`
}

// Result groups domain checks for one name.
type Result struct {
	Name    string         `json:"name"`
	Domains []DomainResult `json:"domains"`
}

// AnyAvailable reports whether at least one domain is free.
func (r Result) AnyAvailable() bool {
	for _, d := range r.Domains {
		if d.Available {
			return true
		}
	}
	return false
}

// AvailableTLDs lists the free TLDs in check order.
func (r Result) AvailableTLDs() []string {
	var out []string
	for _, d := range r.Domains {
		if d.Available {
			out = append(out, d.TLD)
		}
	}
	return out
}

// Resolver is the subset of *net.Resolver used for lookups.
type Resolver interface {
	LookupNS(ctx context.Context, name string) ([]*net.NS, error)
}

// Option configures a DNSChecker.
type Option func(*DNSChecker)

// WithResolver replaces net.DefaultResolver.
func WithResolver(r Resolver) Option {
	return func(c *DNSChecker) { c.resolver = r }
}

// WithTimeout bounds each lookup.
func WithTimeout(d time.Duration) Option {
	return func(c *DNSChecker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithConcurrency bounds parallel lookups.
func WithConcurrency(n int) Option {
	return func(c *DNSChecker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithDefaultTLDs sets the TLDs used when a check passes none.
func WithDefaultTLDs(tlds []string) Option {
	return func(c *DNSChecker) {
		if len(tlds) > 0 {
			c.tlds = tlds
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *DNSChecker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCollector records lookup timings.
func WithCollector(m *metrics.Collector) Option {
	return func(c *DNSChecker) { c.collector = m }
}

// DNSChecker treats a domain as available when the registry has no name
// server delegation for it. Lookup failures other than "not found" are
// reported as unavailable so a flaky resolver never produces false positives.
type DNSChecker struct {
	resolver    Resolver
	tlds        []string
	timeout     time.Duration
	concurrency int
	logger      *slog.Logger
	collector   *metrics.Collector
}

// NewDNSChecker creates a checker using net.DefaultResolver.
func NewDNSChecker(opts ...Option) *DNSChecker {
	c := &DNSChecker{
		resolver:    net.DefaultResolver,
		tlds:        DefaultTLDs,
		timeout:     3 * time.Second,
		concurrency: 8,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check looks up name under each TLD. Empty tlds uses the checker defaults.
// Domains keep the TLD order.
func (c *DNSChecker) Check(ctx context.Context, name string, tlds []string) (Result, error) {
	label := models.NameKey(name)
	if strings.Trim(label, "-") == "" {
		return Result{Name: name}, ErrInvalidName
	}
	tlds = NormalizeTLDs(tlds)
	if len(tlds) == 0 {
		tlds = c.tlds
	}

	start := time.Now()
	domains := make([]DomainResult, len(tlds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, tld := range tlds {
		g.Go(func() error {
			domains[i] = c.lookup(gctx, label, tld)
			return nil
		})
	}
	_ = g.Wait()

	c.collector.RecordTiming(metrics.OpAvailability, time.Since(start))
	if err := ctx.Err(); err != nil {
		return Result{Name: name, Domains: domains}, err
	}
	return Result{Name: name, Domains: domains}, nil
}

// Checker looks up one name. DNSChecker is the production implementation.
type Checker interface {
	Check(ctx context.Context, name string, tlds []string) (Result, error)
}

// CheckMany runs c over names with at most limit checks in flight and keeps
// input order. Names with no valid label come back without domains.
func CheckMany(ctx context.Context, c Checker, names []string, tlds []string, limit int) ([]Result, error) {
	results := make([]Result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, name := range names {
		g.Go(func() error {
			r, err := c.Check(gctx, name, tlds)
			switch {
			case errors.Is(err, ErrInvalidName):
				results[i] = Result{Name: name}
				return nil
			case err != nil:
				return fmt.Errorf("check %s: %w", name, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (c *DNSChecker) lookup(ctx context.Context, label, tld string) DomainResult {
	domain := label + "." + tld
	res := DomainResult{TLD: tld, Domain: domain}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	records, err := c.resolver.LookupNS(ctx, domain)
	switch {
	case err == nil && len(records) > 0:
		res.Verdict = VerdictDelegated
	case isNotFound(err) || (err == nil && len(records) == 0):
		res.Available = true
		res.Verdict = VerdictNoDelegation
	default:
		res.Verdict = VerdictLookupError
		c.logger.Debug("domain lookup failed", "domain", domain, "error", err)
	}
	return res
}

func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}

// NormalizeTLDs lowercases TLDs, strips leading dots and drops blanks and
// duplicates.
func NormalizeTLDs(tlds []string) []string {
	seen := make(map[string]bool, len(tlds))
	out := make([]string, 0, len(tlds))
	for _, tld := range tlds {
		tld = strings.ToLower(strings.TrimLeft(strings.TrimSpace(tld), "."))
		if tld == "" || seen[tld] {
			continue
		}
		seen[tld] = true
		out = append(out, tld)
	}
	return out
}
