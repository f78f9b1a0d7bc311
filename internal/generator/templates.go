package generator

import (
	"sort"
	"strings"
)

// TemplateSet holds the title/body templates and comment style for one
// community. Templates may reference {company} and {kw} placeholders;
// templates without placeholders are used verbatim.
type TemplateSet struct {
	Titles       []string
	Bodies       []string
	CommentStyle string
}

type Registry struct {
	entries map[string]TemplateSet
	keys    []string
}

var genericTemplates = TemplateSet{
	Titles: []string{
		"Anyone tried {company} for {kw}?",
		"{company} vs alternatives for {kw}",
		"Best tools for {kw}?",
		"How do people handle {kw}?",
	},
	Bodies: []string{
		"I'm evaluating tools for {kw}. Any experiences with {company}?",
		"Trying to handle {kw} more efficiently. Would {company} help?",
		"Working on projects that require {kw}. Is {company} a good fit?",
	},
	CommentStyle: "neutral",
}

func NewRegistry() *Registry {
	entries := map[string]TemplateSet{
		"r/PowerPoint": {
			Titles: []string{
				"Best AI Presentation Maker?",
				"Slide tools for polished PowerPoint decks?",
				"Anyone automated PowerPoint slide design?",
			},
			Bodies: []string{
				"Just like it says in the title, what is the best AI tool for producing editable PowerPoint slides? Looking for high-quality output I can tweak.",
				"Trying to speed up producing PowerPoint decks — any tools that generate slides I can edit afterwards?",
				"What do people use to generate PowerPoint slides quickly while keeping control over layout?",
			},
			CommentStyle: "practical",
		},
		"r/Canva": {
			Titles: []string{
				"{company} vs Canva for slides?",
				"How do you automate layouts in Canva?",
				"Can an AI generate Canva-ready slides?",
			},
			Bodies: []string{
				"I love Canva but spend ages adjusting templates. Anyone tried tools that give a decent Canva import?",
				"Trying to combine AI + Canva for quick visual decks — what's your workflow?",
				"Looking for tools that output something I can drop into Canva and polish.",
			},
			CommentStyle: "designer",
		},
		"r/ClaudeAI": {
			Titles: []string{
				"Claude vs {company} for slide creation?",
				"Using Claude to generate slides — any tips?",
			},
			Bodies: []string{
				"Using Claude for brainstorming is great, but the slide outputs need a lot of cleanup. Does anyone have good workflows?",
				"Trying to pair Claude with a slide generator — recommendations?",
			},
			CommentStyle: "tech",
		},
		"r/GoogleSlides": {
			Titles: []string{
				"Slide outputs — how well do they import to Google Slides?",
				"Generating Google Slides automatically — what works?",
			},
			Bodies: []string{
				"I export generated decks into Google Slides and adjust spacing. Any tips to reduce manual fixes?",
				"Which slide generators give the most reliable Google Slides output?",
			},
			CommentStyle: "practical",
		},
		"r/AItools": {
			Titles: []string{
				"Which AI slide maker actually saves time?",
				"Best AI slide tool for business decks?",
			},
			Bodies: []string{
				"Testing new AI slide makers — which one saves the most time without making terrible layouts?",
				"Looking for AI tools that produce business-friendly decks. Experiences?",
			},
			CommentStyle: "tech",
		},
		"r/presentations": {
			Titles: []string{
				"How do you automate presentation design?",
				"Tips for faster slide creation?",
			},
			Bodies: []string{
				"Trying to improve our presentation workflow — any tools or tips that cut design time?",
				"Looking for techniques to speed up making client-ready slides.",
			},
			CommentStyle: "professional",
		},
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Registry{entries: entries, keys: keys}
}

// Lookup resolves a community to its template set: exact key match first,
// then case-insensitive substring match on the key's name portion, else the
// generic fallback.
func (r *Registry) Lookup(subreddit string) TemplateSet {
	if ts, ok := r.entries[subreddit]; ok {
		return ts
	}

	lower := strings.ToLower(subreddit)
	for _, key := range r.keys {
		if strings.Contains(lower, strings.ToLower(namePortion(key))) {
			return r.entries[key]
		}
	}

	return genericTemplates
}

func namePortion(key string) string {
	if i := strings.Index(key, "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}

func renderTemplate(tmpl, company, keyword string) string {
	out := strings.ReplaceAll(tmpl, "{company}", company)
	return strings.ReplaceAll(out, "{kw}", keyword)
}

func hasPlaceholder(tmpl string) bool {
	return strings.Contains(tmpl, "{company}") || strings.Contains(tmpl, "{kw}")
}
