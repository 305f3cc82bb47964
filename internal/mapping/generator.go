package mapping

import (
	"context"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"hanscan/internal/cache"
	"hanscan/internal/translate"
)

// PendingMark fills every slot when translation is switched off, leaving a
// grep-able marker for a later pass.
const PendingMark = "[TODO]"

const placeholderPrefix = "todo_"

// Placeholder derives a deterministic fallback value from the phrase text:
// Han runes become a filler letter, whitespace becomes underscores, and the
// rest is lowercased.
func Placeholder(phrase string) string {
	var b strings.Builder
	b.WriteString(placeholderPrefix)
	for _, r := range phrase {
		switch {
		case unicode.Is(unicode.Han, r):
			b.WriteRune('x')
		case unicode.IsSpace(r):
			b.WriteRune('_')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Stats counts where each mapping value came from.
type Stats struct {
	Pending     int
	FromMemory  int
	Translated  int
	Dictionary  int
	Retried     int
	Placeholder int
}

// Total returns the number of mapping entries the stats account for.
func (s Stats) Total() int {
	return s.Pending + s.FromMemory + s.Translated + s.Dictionary + s.Retried + s.Placeholder
}

// Generator turns deduplicated phrases into a mapping, consulting the
// translation memory before the provider and falling back per phrase when
// the provider comes up short.
type Generator struct {
	svc    translate.Service
	memory *cache.TranslationMemory
}

func NewGenerator(svc translate.Service, memory *cache.TranslationMemory) *Generator {
	return &Generator{svc: svc, memory: memory}
}

// Generate produces one mapping entry per phrase, preserving input order.
// It never fails: a phrase that defeats every source still gets a
// deterministic placeholder.
func (g *Generator) Generate(ctx context.Context, phrases []string, translateOn bool) (*Mapping, Stats) {
	m := New()
	var stats Stats

	if !translateOn {
		for _, p := range phrases {
			m.Set(p, PendingMark)
		}
		stats.Pending = m.Len()
		return m, stats
	}

	missing := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if _, seen := m.Get(p); seen {
			continue
		}
		m.Set(p, PendingMark)
		if g.memory != nil {
			if tr, ok := g.memory.Get(ctx, p); ok {
				m.Set(p, tr)
				stats.FromMemory++
				continue
			}
		}
		missing = append(missing, p)
	}

	results := map[string]string{}
	if len(missing) > 0 && g.svc != nil {
		batch, err := g.svc.BatchTranslate(ctx, missing)
		if err != nil {
			log.Warn().Err(err).Str("provider", g.svc.Name()).
				Msg("Batch translation failed, falling back per phrase")
		} else {
			results = batch
		}
	}

	for _, p := range missing {
		if tr := results[p]; tr != "" {
			m.Set(p, tr)
			stats.Translated++
			g.remember(ctx, p, tr)
			continue
		}
		m.Set(p, g.fallback(ctx, p, &stats))
	}

	return m, stats
}

// fallback resolves a single phrase the batch call could not: built-in
// dictionary first, then one more provider attempt, then a placeholder.
func (g *Generator) fallback(ctx context.Context, phrase string, stats *Stats) string {
	if tr, ok := translate.LookupDictionary(phrase); ok {
		stats.Dictionary++
		g.remember(ctx, phrase, tr)
		return tr
	}

	if g.svc != nil {
		retry, err := g.svc.BatchTranslate(ctx, []string{phrase})
		if err == nil {
			if tr := retry[phrase]; tr != "" {
				stats.Retried++
				g.remember(ctx, phrase, tr)
				return tr
			}
		} else {
			log.Debug().Err(err).Str("phrase", phrase).Msg("Secondary translation attempt failed")
		}
	}

	stats.Placeholder++
	return Placeholder(phrase)
}

func (g *Generator) remember(ctx context.Context, phrase, translated string) {
	if g.memory == nil {
		return
	}
	if err := g.memory.Set(ctx, phrase, translated); err != nil {
		log.Debug().Err(err).Msg("Translation memory write failed")
	}
}
