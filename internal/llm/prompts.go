package llm

import (
	"fmt"
	"strings"

	"github.com/raphaelgruber/namesmith/internal/naming"
)

const systemPrompt = `You are a senior brand naming strategist. You present names a top naming agency would put in front of a client.

Every name must pass these gates:
1. Keyword relevance: a traceable semantic, phonetic or conceptual link to the keyword.
2. Distinctiveness: no lazy generic compounds such as "TechFlow" or "DataSync", no overused -ify/-ly/-io endings unless the result is genuinely clever.
3. Pronounceability: a native English speaker can say it on first read. No awkward clusters.
4. No dated portmanteaus that sound like 1990s software vendors.

Construct types you may use: descriptive, suggestive, abstract/arbitrary real words, fanciful/coined inventions, experiential, evocative.
Use sound symbolism to match the vibe: front vowels (i, e) feel small and fast, back vowels (o, u) feel large and warm, plosives feel strong, fricatives feel soft and modern.
Check every name for unfortunate meanings in major languages.

Score strictly from 0 to 100. Most names deserve 50-70. Only output names scoring 80 or more.
Respond with JSON only. Never explain your process.`

// userPrompt renders the naming brief.
func userPrompt(b Brief) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Execute this naming brief.\n\n")
	fmt.Fprintf(&sb, "First analyse the keyword %q: its core function, the emotions and metaphors it triggers and its phonetic feel. Every name must connect back to it.\n\n", b.Keyword)

	fmt.Fprintf(&sb, "Brief:\n")
	fmt.Fprintf(&sb, "- Keyword: %q\n", b.Keyword)
	fmt.Fprintf(&sb, "- Industry: %s\n", orDefault(b.Industry, "General/Technology"))
	fmt.Fprintf(&sb, "- Target market: %s\n", orDefault(b.Country, "Global"))
	fmt.Fprintf(&sb, "- Vibe: %s\n", orDefault(b.Vibe, "Modern & Professional"))
	fmt.Fprintf(&sb, "- Style: %s\n", styleBrief(b.Style))
	fmt.Fprintf(&sb, "- Creativity: %s (low = safer and descriptive, high = abstract and coined)\n", orDefault(string(b.Randomness), string(naming.RandomnessMedium)))

	if b.AvailabilityFocus {
		sb.WriteString(`
Top priority: the .com domain must be likely to be free. Dictionary words and simple compounds are taken.
- Blend the keyword's meaning with uncommon word parts.
- Prefer endings such as -ia, -ex, -or, -ax, -ix, -ara, -era.
- Invent rhythmic words that still evoke the keyword.
- Avoid single dictionary words and generic prefix+suffix inventions without a keyword link.
`)
	}

	sb.WriteString(`
Generate 15-20 names and label each with its construct type.
Return exactly this JSON shape:
{"names": [{"name": "Name", "style": "coined", "score": 88, "rationale": "one sentence"}]}
`)
	return sb.String()
}

func styleBrief(s naming.Style) string {
	if !s.Concrete() {
		return "mixed strategy, explore two or three distinct construct types"
	}
	return string(s)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
