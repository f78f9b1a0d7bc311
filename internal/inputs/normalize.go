package inputs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

// Alias tables for loosely-keyed input records. Candidates are tried in
// order; the first key holding a usable value wins.
var (
	companyNameKeys  = []string{"name", "Name", "Website", "website", "website_url"}
	companyDescKeys  = []string{"Description", "description", "desc", "about"}
	companySubsKeys  = []string{"Subreddits", "subreddits", "subreddit"}
	companyCountKeys = []string{"Number of posts per week", "number_of_posts_per_week", "num_posts", "num_posts_per_week"}

	personaUserKeys = []string{"username", "Username", "user", "handle"}
	personaBackKeys = []string{"background", "Background", "Info", "info", "bio", "description"}

	keywordIDKeys   = []string{"id", "keyword_id"}
	keywordTextKeys = []string{"text", "keyword", "label"}
)

// NormalizeCompany converts an arbitrary decoded record into a canonical
// Company. It never fails; malformed shapes fall back to defaults.
func NormalizeCompany(raw any) models.Company {
	rec, ok := raw.(map[string]any)
	if !ok || len(rec) == 0 {
		return DefaultCompany()
	}

	c := models.Company{}

	if name, ok := firstValue(rec, companyNameKeys); ok {
		c.Name = asString(name)
	}
	if c.Name == "" {
		c.Name = "Company"
	}

	if desc, ok := firstValue(rec, companyDescKeys); ok {
		c.Description = asString(desc)
	}

	c.Subreddits = []string{}
	if subs, ok := firstValue(rec, companySubsKeys); ok {
		c.Subreddits = splitList(subs)
	}

	c.NumPostsPerWeek = coercePostCount(rec)

	return c
}

func coercePostCount(rec map[string]any) int {
	raw, ok := firstValue(rec, companyCountKeys)
	if !ok {
		return 3
	}

	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case float64:
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 3
		}
		n = parsed
	default:
		return 3
	}

	if n < 1 {
		return 1
	}
	return n
}

// NormalizePersonas accepts a single record, a list of records, or a list of
// plain username strings.
func NormalizePersonas(raw any) []models.Persona {
	if raw == nil {
		return nil
	}

	var items []any
	switch v := raw.(type) {
	case map[string]any:
		items = []any{v}
	case []any:
		items = v
	default:
		return nil
	}

	var out []models.Persona
	for idx, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, models.Persona{Username: strings.TrimSpace(s)})
			continue
		}

		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}

		username := ""
		if v, ok := firstValue(rec, personaUserKeys); ok {
			username = strings.TrimSpace(asString(v))
		}
		if username == "" {
			username = firstShortString(rec, personaUserKeys)
		}
		if username == "" {
			username = fmt.Sprintf("user_%d", idx+1)
		}

		background := ""
		if v, ok := firstValue(rec, personaBackKeys); ok {
			background = strings.TrimSpace(asString(v))
		}

		out = append(out, models.Persona{Username: username, Background: background})
	}

	return out
}

// firstShortString scans the remaining fields for something username-shaped:
// a string of at most 30 characters that is not an email address. Keys are
// visited in sorted order so the result is stable.
func firstShortString(rec map[string]any, consumed []string) string {
	skip := make(map[string]bool, len(consumed))
	for _, k := range consumed {
		skip[k] = true
	}

	keys := make([]string, 0, len(rec))
	for k := range rec {
		if !skip[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		s, ok := rec[k].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" && len(s) <= 30 && !strings.Contains(s, "@") {
			return s
		}
	}
	return ""
}

// NormalizeSubreddits accepts a list of strings or a single string split on
// commas and newlines.
func NormalizeSubreddits(raw any) []string {
	if raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case []any, string:
		return splitList(v)
	}
	return nil
}

// NormalizeKeywords accepts a list of strings, a list of records, a single
// mapping (values become keyword texts), or a bare scalar.
func NormalizeKeywords(raw any) []models.Keyword {
	if raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		var out []models.Keyword
		for idx, item := range v {
			switch it := item.(type) {
			case string:
				out = append(out, models.Keyword{ID: fmt.Sprintf("K%d", idx+1), Text: it})
			case map[string]any:
				kw := models.Keyword{ID: fmt.Sprintf("K%d", idx+1)}
				if id, ok := firstValue(it, keywordIDKeys); ok {
					kw.ID = asString(id)
				}
				if text, ok := firstValue(it, keywordTextKeys); ok {
					kw.Text = asString(text)
				}
				out = append(out, kw)
			default:
				out = append(out, models.Keyword{ID: fmt.Sprintf("K%d", idx+1), Text: asString(item)})
			}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var out []models.Keyword
		for idx, k := range keys {
			out = append(out, models.Keyword{ID: fmt.Sprintf("K%d", idx+1), Text: asString(v[k])})
		}
		return out
	}

	return []models.Keyword{{ID: "K1", Text: asString(raw)}}
}

func firstValue(rec map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func splitList(raw any) []string {
	var parts []string
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	case string:
		parts = strings.Split(strings.ReplaceAll(v, ",", "\n"), "\n")
	}

	out := []string{}
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
