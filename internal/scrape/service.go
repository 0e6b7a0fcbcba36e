// Package scrape ties fetching and extraction together. It validates
// caller input, fetches the gear and enchant guides concurrently and
// composes the import string.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/meur/bisforge/internal/fetch"
	"github.com/meur/bisforge/internal/importstring"
	"github.com/meur/bisforge/internal/metrics"
	"github.com/meur/bisforge/internal/models"
	"github.com/meur/bisforge/internal/wowhead"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMissingURL     = errors.New("no url provided")
	ErrUnsupportedURL = errors.New("unsupported url")
	ErrInvalidRole    = errors.New("invalid role")
	ErrNoGear         = errors.New("no gear items found")
	ErrNothingFound   = errors.New("no gear or enchants found")
)

// DefaultDomain is the only site the extractors understand
const DefaultDomain = "wowhead.com"

// Options configures a Service
type Options struct {
	AllowedDomain string
}

// Service runs scrapes. It holds no per-request state.
type Service struct {
	fetcher fetch.Fetcher
	log     *zap.Logger
	metrics *metrics.Metrics
	domain  string
}

// New creates a Service. A nil logger or metrics disables them.
func New(f fetch.Fetcher, log *zap.Logger, m *metrics.Metrics, opts Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.AllowedDomain == "" {
		opts.AllowedDomain = DefaultDomain
	}
	return &Service{fetcher: f, log: log, metrics: m, domain: opts.AllowedDomain}
}

// ValidateURL decodes a guide URL and checks that it belongs to the
// allowed domain.
func (s *Service) ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingURL
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, u.Scheme)
	}
	if !fetch.HostAllowed(u.Hostname(), s.domain) {
		return "", fmt.Errorf("%w: %s is not on %s", ErrUnsupportedURL, u.Host, s.domain)
	}
	return raw, nil
}

// Gear scrapes only the gear guide
func (s *Service) Gear(ctx context.Context, rawURL string) (*models.GearResult, error) {
	gearURL, err := s.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	ex := s.scrapeGear(ctx, gearURL)
	result := &models.GearResult{
		Success:   len(ex.Entries) > 0,
		Count:     len(ex.Entries),
		Items:     ex.Entries,
		SourceURL: gearURL,
		Reason:    ex.Reason,
	}
	if result.Items == nil {
		result.Items = []models.GearEntry{}
	}
	if !result.Success {
		return result, fmt.Errorf("%w (%s)", ErrNoGear, ex.Reason)
	}
	return result, nil
}

// Full scrapes a gear guide and the enchant guide derived from it for the
// named role. An empty role means dps.
func (s *Service) Full(ctx context.Context, rawURL, roleName string) (*models.ScrapeResult, error) {
	role, ok := models.ParseRole(roleName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, roleName)
	}
	return s.FullForRole(ctx, rawURL, role)
}

// FullForRole is Full with an already validated role
func (s *Service) FullForRole(ctx context.Context, rawURL string, role models.Role) (*models.ScrapeResult, error) {
	gearURL, err := s.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	enchantURL, hasEnchantURL := wowhead.EnchantGuideURL(gearURL, role)

	var gear wowhead.GearExtraction
	enchants := wowhead.EnchantExtraction{Reason: models.ReasonNoEnchantURL}

	// Neither half cancels the other, each returns its own empty result.
	var g errgroup.Group
	g.Go(func() error {
		gear = s.scrapeGear(ctx, gearURL)
		return nil
	})
	if hasEnchantURL {
		g.Go(func() error {
			enchants = s.scrapeEnchants(ctx, enchantURL)
			return nil
		})
	}
	_ = g.Wait()

	result := compose(gear, enchants)
	result.GearURL = gearURL
	result.Role = role
	if hasEnchantURL {
		result.EnchantURL = &enchantURL
	}

	if len(gear.Entries) == 0 {
		return result, fmt.Errorf("%w (%s)", ErrNoGear, gear.Reason)
	}
	return result, nil
}

// Both scrapes a gear guide and an explicitly given enchant guide. The
// enchant URL is optional and ignored unless it is on the allowed domain.
func (s *Service) Both(ctx context.Context, rawGearURL, rawEnchantURL string) (*models.ScrapeResult, error) {
	gearURL, err := s.ValidateURL(rawGearURL)
	if err != nil {
		return nil, err
	}
	enchantURL, err := s.ValidateURL(rawEnchantURL)
	hasEnchantURL := err == nil

	var gear wowhead.GearExtraction
	enchants := wowhead.EnchantExtraction{Reason: models.ReasonNoEnchantURL}

	var g errgroup.Group
	g.Go(func() error {
		gear = s.scrapeGear(ctx, gearURL)
		return nil
	})
	if hasEnchantURL {
		g.Go(func() error {
			enchants = s.scrapeEnchants(ctx, enchantURL)
			return nil
		})
	}
	_ = g.Wait()

	result := compose(gear, enchants)
	result.GearURL = gearURL
	if hasEnchantURL {
		result.EnchantURL = &enchantURL
	}

	if len(gear.Entries) == 0 && len(enchants.Groups) == 0 {
		result.Success = false
		return result, ErrNothingFound
	}
	result.Success = true
	return result, nil
}

func compose(gear wowhead.GearExtraction, enchants wowhead.EnchantExtraction) *models.ScrapeResult {
	result := &models.ScrapeResult{
		Success:       len(gear.Entries) > 0,
		GearCount:     len(gear.Entries),
		EnchantCount:  len(enchants.Groups),
		GearItems:     gear.Entries,
		Enchants:      enchants.Groups,
		ImportString:  importstring.Encode(gear.Entries, enchants.Groups),
		GearReason:    gear.Reason,
		EnchantReason: enchants.Reason,
	}
	if result.GearItems == nil {
		result.GearItems = []models.GearEntry{}
	}
	if result.Enchants == nil {
		result.Enchants = []models.EnchantSlotGroup{}
	}
	return result
}

func (s *Service) fetch(ctx context.Context, kind, pageURL string) (*fetch.Page, error) {
	start := time.Now()
	page, err := s.fetcher.Fetch(ctx, pageURL)
	s.metrics.ObserveFetch(kind, err, time.Since(start))
	if err != nil {
		s.log.Warn("fetch failed", zap.String("kind", kind), zap.String("url", pageURL), zap.Error(err))
		return nil, err
	}
	s.log.Debug("fetched",
		zap.String("kind", kind),
		zap.String("url", page.URL),
		zap.String("final_url", page.FinalURL),
		zap.Int("status", page.Status),
		zap.Duration("elapsed", page.Elapsed),
		zap.Bool("redirected", page.FinalURL != "" && page.FinalURL != page.URL),
	)
	return page, nil
}

func (s *Service) scrapeGear(ctx context.Context, gearURL string) wowhead.GearExtraction {
	page, err := s.fetch(ctx, metrics.KindGear, gearURL)
	if err != nil {
		ex := wowhead.GearExtraction{Reason: models.ReasonFetchFailed}
		s.metrics.ObserveExtraction(metrics.KindGear, ex.Reason)
		return ex
	}

	ex := wowhead.ExtractGear(page.Body, gearURL)
	s.metrics.ObserveExtraction(metrics.KindGear, ex.Reason)
	s.log.Debug("gear extracted",
		zap.String("url", gearURL),
		zap.Bool("markup_found", ex.MarkupFound),
		zap.String("variant", string(ex.Variant)),
		zap.Int("tables", ex.Table.Count),
		zap.Int("table_index", ex.Table.Index),
		zap.Int("rows", ex.RowsMatched),
		zap.String("reason", string(ex.Reason)),
	)
	return ex
}

func (s *Service) scrapeEnchants(ctx context.Context, enchantURL string) wowhead.EnchantExtraction {
	page, err := s.fetch(ctx, metrics.KindEnchant, enchantURL)
	if err != nil {
		ex := wowhead.EnchantExtraction{Reason: models.ReasonFetchFailed}
		s.metrics.ObserveExtraction(metrics.KindEnchant, ex.Reason)
		return ex
	}

	ex := wowhead.ParseEnchants(page.Body)
	s.metrics.ObserveExtraction(metrics.KindEnchant, ex.Reason)
	s.log.Debug("enchants extracted",
		zap.String("url", enchantURL),
		zap.Int("tables", ex.Tables),
		zap.Int("groups", len(ex.Groups)),
		zap.String("reason", string(ex.Reason)),
	)
	return ex
}
