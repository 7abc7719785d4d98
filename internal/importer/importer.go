package importer

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"staffhub/internal/config"
	"staffhub/internal/domain/skill"
	"staffhub/internal/repository"

	"github.com/gocolly/colly/v2"
)

// Importer crawls a skill taxonomy page and upserts (name, category)
// pairs into the catalog. Rows already present are left untouched, so
// re-runs are harmless.
type Importer struct {
	skills      repository.SkillRepository
	cfg         config.ImporterConfig
	allowedHost string
	logger      *log.Logger
}

type Stats struct {
	Scanned  int
	Imported int
	Skipped  int
}

func New(skills repository.SkillRepository, cfg config.ImporterConfig, logger *log.Logger) (*Importer, error) {
	if logger == nil {
		logger = log.Default()
	}

	src := strings.TrimSpace(cfg.SourceURL)
	if src == "" {
		return nil, fmt.Errorf("importer: empty source URL")
	}
	host := hostFromURL(src)
	if host == "" {
		return nil, fmt.Errorf("importer: cannot resolve host from %q", src)
	}

	if strings.TrimSpace(cfg.RowSelector) == "" {
		cfg.RowSelector = "table tr"
	}
	if strings.TrimSpace(cfg.NameSelector) == "" {
		cfg.NameSelector = "td:nth-of-type(1)"
	}
	if strings.TrimSpace(cfg.CategorySelector) == "" {
		cfg.CategorySelector = "td:nth-of-type(2)"
	}

	return &Importer{skills: skills, cfg: cfg, allowedHost: host, logger: logger}, nil
}

type row struct {
	name     string
	category string
}

func (i *Importer) Run(ctx context.Context) (Stats, error) {
	rows, err := i.crawl(ctx)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		st.Scanned++

		if _, dup := seen[r.name]; dup {
			st.Skipped++
			continue
		}
		seen[r.name] = struct{}{}

		if !skill.ValidCategory(r.category) {
			i.logger.Printf("Importer skip | name=%q category=%q reason=unknown_category", r.name, r.category)
			st.Skipped++
			continue
		}

		_, created, err := i.skills.UpsertByName(ctx, r.name, r.category)
		if err != nil {
			return st, fmt.Errorf("importer: upsert %q: %w", r.name, err)
		}
		if created {
			st.Imported++
		} else {
			st.Skipped++
		}
	}
	return st, nil
}

func (i *Importer) crawl(ctx context.Context) ([]row, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(i.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{
		DomainGlob:  "*" + i.allowedHost + "*",
		Parallelism: 2,
		Delay:       300 * time.Millisecond,
		RandomDelay: 500 * time.Millisecond,
	})

	rows := make([]row, 0)

	c.OnHTML(i.cfg.RowSelector, func(e *colly.HTMLElement) {
		name := strings.TrimSpace(e.ChildText(i.cfg.NameSelector))
		category := strings.TrimSpace(e.ChildText(i.cfg.CategorySelector))
		if name == "" || category == "" {
			return
		}
		rows = append(rows, row{name: name, category: category})
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(i.cfg.SourceURL); err != nil {
		return nil, err
	}
	c.Wait()

	if reqErr != nil {
		return nil, reqErr
	}
	return rows, nil
}

// hostFromURL strips any port: colly matches AllowedDomains against
// the bare hostname.
func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Hostname()
}
