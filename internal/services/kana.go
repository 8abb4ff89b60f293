package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/ports"
)

// KanaService looks up the katakana transliteration of an English word via
// the external dictionary API. Lookups are cached without expiry.
type KanaService struct {
	Source ports.WordSource
	Cache  ports.CacheStore
	Log    zerolog.Logger
}

type kanaEntry struct {
	Japanese []struct {
		Word    string `json:"word"`
		Reading string `json:"reading"`
	} `json:"japanese"`
	Senses []struct {
		PartsOfSpeech      []string `json:"parts_of_speech"`
		EnglishDefinitions []string `json:"english_definitions"`
	} `json:"senses"`
}

// Pagination thresholds are empirical; the API serves 20 entries per page.
const (
	fullFirstPage        = 20 // fewer first-page entries means no second page exists
	minHighPriorityCount = 5  // fetch page 2 below this many katakana-only entries
	longReadingRunes     = 4  // readings this long count as transliterations
)

// Lookup resolves a word to its katakana readings.
func (s *KanaService) Lookup(ctx context.Context, word string) domain.Feedback {
	entries, err := s.fetchPage(ctx, word, 1)
	if err != nil {
		return domain.Feedback{Items: []domain.Item{domain.NewItem(
			"Lookup failed",
			diagnosticOf(err),
			"",
			"lookup-error",
			false,
		)}}
	}
	if len(entries) == 0 {
		return domain.Feedback{Items: []domain.Item{domain.NewItem(
			"Not Found",
			fmt.Sprintf("No results for '%s'", word),
			"",
			"not-found",
			false,
		)}}
	}

	exact := hasExactMatch(entries, word)
	if shouldFetchNextPage(entries, exact) {
		s.Log.Debug().Str("word", word).Msg("fetching second result page")
		if next, err := s.fetchPage(ctx, word, 2); err == nil {
			entries = append(entries, next...)
		}
	}

	items := kanaItems(entries, word)
	if len(items) == 0 {
		items = []domain.Item{domain.NewItem(
			"No Katakana Found",
			fmt.Sprintf("Could not find a Katakana reading for '%s'", word),
			"",
			"no-katakana",
			false,
		)}
	}
	return domain.Feedback{Items: items}
}

func (s *KanaService) fetchPage(ctx context.Context, word string, page int) ([]kanaEntry, error) {
	key := hashKey(word)
	if page > 1 {
		key = hashKey(fmt.Sprintf("%s_page_%d", word, page))
	}
	payload, _, err := s.Cache.Fetch(key, 0, func() ([]byte, error) {
		return s.Source.Search(ctx, word, page)
	})
	if err != nil {
		return nil, err
	}
	var entries []kanaEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, &domain.InvocationError{Err: fmt.Errorf("decode dictionary payload: %w", err)}
	}
	return entries, nil
}

// isKatakanaReading reports whether at least 80% of a reading's characters
// (ignoring the middle dot and spaces) fall in the katakana block.
func isKatakanaReading(reading string) bool {
	katakana, total := 0, 0
	for _, r := range reading {
		if r == '・' || unicode.IsSpace(r) {
			continue
		}
		total++
		if (r >= 0x30A1 && r <= 0x30FA) || (r >= 0x30FC && r <= 0x30FF) {
			katakana++
		}
	}
	if total == 0 {
		return false
	}
	return float64(katakana)/float64(total) >= 0.8
}

// hasExactMatch detects a direct transliteration on the first page: the
// query equals a definition of a katakana-only entry, and either that entry
// has a single definition or its reading is long enough to be a loanword.
func hasExactMatch(entries []kanaEntry, query string) bool {
	for _, entry := range entries {
		if len(entry.Japanese) == 0 || len(entry.Senses) == 0 {
			continue
		}
		japanese := entry.Japanese[0]
		if japanese.Word != "" || !isKatakanaReading(japanese.Reading) {
			continue
		}
		definitions := entry.Senses[0].EnglishDefinitions
		for _, definition := range definitions {
			if !strings.EqualFold(query, definition) {
				continue
			}
			if len(definitions) == 1 {
				return true
			}
			if len([]rune(japanese.Reading)) >= longReadingRunes {
				return true
			}
		}
	}
	return false
}

// shouldFetchNextPage decides whether page 2 is worth loading. An exact
// match on page 1 suppresses it outright.
func shouldFetchNextPage(entries []kanaEntry, exactMatch bool) bool {
	if exactMatch {
		return false
	}
	if len(entries) < fullFirstPage {
		return false
	}
	highPriority := 0
	for _, entry := range entries {
		if len(entry.Japanese) == 0 {
			continue
		}
		japanese := entry.Japanese[0]
		if japanese.Reading != "" && japanese.Word == "" && isKatakanaReading(japanese.Reading) {
			highPriority++
		}
	}
	return highPriority < minHighPriorityCount
}

// kanaItems keeps katakana-only readings, exact matches first, deduplicated
// by reading in encounter order.
func kanaItems(entries []kanaEntry, query string) []domain.Item {
	sorted := make([]kanaEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return entryPriority(sorted[i], query) && !entryPriority(sorted[j], query)
	})

	seen := make(map[string]bool)
	var items []domain.Item
	for _, entry := range sorted {
		if len(entry.Japanese) == 0 {
			continue
		}
		japanese := entry.Japanese[0]
		if japanese.Word != "" || !isKatakanaReading(japanese.Reading) {
			continue
		}
		if seen[japanese.Reading] {
			continue
		}
		seen[japanese.Reading] = true

		item := domain.NewItem(japanese.Reading, entrySubtitle(entry), japanese.Reading, japanese.Reading, true)
		item.Text = &domain.Text{Copy: japanese.Reading, LargeType: japanese.Reading}
		items = append(items, item)
	}
	return items
}

func entryPriority(entry kanaEntry, query string) bool {
	if len(entry.Japanese) == 0 || len(entry.Senses) == 0 {
		return false
	}
	japanese := entry.Japanese[0]
	if japanese.Word != "" || !isKatakanaReading(japanese.Reading) {
		return false
	}
	for _, definition := range entry.Senses[0].EnglishDefinitions {
		if strings.EqualFold(query, definition) ||
			strings.HasPrefix(strings.ToLower(definition), strings.ToLower(query)) {
			return true
		}
	}
	return false
}

func entrySubtitle(entry kanaEntry) string {
	if len(entry.Senses) == 0 {
		return ""
	}
	sense := entry.Senses[0]
	var parts []string
	if len(sense.PartsOfSpeech) > 0 {
		parts = append(parts, "["+strings.Join(sense.PartsOfSpeech, ", ")+"]")
	}
	if len(sense.EnglishDefinitions) > 0 {
		parts = append(parts, strings.Join(sense.EnglishDefinitions, "; "))
	}
	return strings.Join(parts, " ")
}
