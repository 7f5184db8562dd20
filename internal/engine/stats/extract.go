package stats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

// SourceEffectText is the source recorded on modifiers read from effect text
const SourceEffectText = "effet"

// Free-text grammar, matched case-insensitively:
//
//	signed      := SIGN INT [UNIT] [CONNECTIVE] PHRASE
//	SIGN        := "+" | "-" | "−"   (at the start of the text or after a non-alphanumeric)
//	UNIT        := "%" | "point" | "points" | "pt" | "pts"
//	CONNECTIVE  := "de" | "du" | "des" | "en" | "à" | "au" | "aux" | "of" | "to" | "d'"
//	PHRASE      := WORD { BLANK WORD }
//
//	directional := SUBJECT ("est" | "sont") VERB "de" INT [UNIT]
//	VERB        := réduit... | diminu... | baiss...        (penalty)
//	             | augment... | accr... | amélior... | renforc... (bonus)
//	SUBJECT     := up to five words
//
// The directional form is only tried when no signed form is found.
// PHRASE is cut at the first duration or range word (see clauseWords) and
// loses leading articles and trailing connectives. A "N tour(s)" clause in
// the cut tail becomes DurationTurns.
const phraseWord = `[\p{L}\p{N}'’]+(?:-[\p{L}\p{N}'’]+)*`

var (
	signedPattern = regexp.MustCompile(
		`(?i)(?:^|[^\p{L}\p{N}])([+\-−])[ \t]*(\d+)[ \t]*(%|points?\b|pts?\b)?[ \t]*` +
			`(?:(?:de|du|des|en|à|au|aux|of|to)[ \t]+|d['’][ \t]*)?` +
			`(` + phraseWord + `(?:[ \t]+` + phraseWord + `)*)`)

	directionalPattern = regexp.MustCompile(
		`(?i)(?:^|[^\p{L}'’])((?:[\p{L}'’]+[ \t]+){0,4}[\p{L}'’]+)[ \t]+(?:est|sont)[ \t]+` +
			`(r[ée]dui\p{L}*|diminu\p{L}*|baiss\p{L}*|augment\p{L}*|accr\p{L}*|am[ée]lior\p{L}*|renforc\p{L}*)` +
			`[ \t]+de[ \t]+(\d+)[ \t]*(%|points?\b|pts?\b)?`)

	durationPattern = regexp.MustCompile(`(?i)(\d+)[ \t]*(?:tours?|turns?)\b`)
	trailingClause  = regexp.MustCompile(`(?i)^[ \t,]*(?:pendant|durant|during|for)[ \t]+(\d+)[ \t]*(?:tours?|turns?)\b`)
)

// clauseWords start a duration or range clause; the phrase ends before them
var clauseWords = map[string]bool{
	"pendant": true, "durant": true, "duree": true, "tour": true, "tours": true,
	"recharge": true, "rayon": true, "during": true, "turn": true, "turns": true,
	"cooldown": true, "radius": true,
}

var leadingWords = map[string]bool{
	"la": true, "le": true, "les": true, "the": true,
	"point": true, "points": true, "pt": true, "pts": true,
	"de": true, "du": true, "des": true, "en": true, "of": true, "to": true,
	"a": true, "au": true, "aux": true,
}

var trailingWords = map[string]bool{
	"et": true, "and": true, "de": true, "du": true, "des": true, "pour": true,
	"sur": true, "en": true, "a": true, "au": true, "aux": true, "avec": true,
	"of": true, "to": true, "la": true, "le": true, "les": true,
}

var articles = map[string]bool{"la": true, "le": true, "les": true}

// ExtractModifiers scans free-form effect text for stat bonuses
func ExtractModifiers(effect string) []inventory.CanonicalModifier {
	mods := extractSigned(effect)
	if len(mods) == 0 {
		mods = extractDirectional(effect)
	}
	return mods
}

func extractSigned(text string) []inventory.CanonicalModifier {
	mods := []inventory.CanonicalModifier{}

	for _, m := range signedPattern.FindAllStringSubmatch(text, -1) {
		value, ok := signedValue(m[1], m[2])
		if !ok {
			continue
		}

		stat, tail := splitPhrase(m[4])
		if stat == "" {
			continue
		}

		mods = append(mods, inventory.CanonicalModifier{
			Stat:          stat,
			Value:         value,
			Type:          unitType(m[3]),
			Source:        SourceEffectText,
			DurationTurns: durationIn(tail),
		})
	}

	return mods
}

func extractDirectional(text string) []inventory.CanonicalModifier {
	mods := []inventory.CanonicalModifier{}

	for _, loc := range directionalPattern.FindAllStringSubmatchIndex(text, -1) {
		subject := text[loc[2]:loc[3]]
		verb := text[loc[4]:loc[5]]
		amount := text[loc[6]:loc[7]]
		unit := ""
		if loc[8] >= 0 {
			unit = text[loc[8]:loc[9]]
		}

		sign := "+"
		if isPenaltyVerb(verb) {
			sign = "-"
		}
		value, ok := signedValue(sign, amount)
		if !ok {
			continue
		}

		stat := subjectPhrase(subject)
		if stat == "" {
			continue
		}

		var duration *int
		if d := trailingClause.FindStringSubmatch(text[loc[1]:]); d != nil {
			duration = atoiPtr(d[1])
		}

		mods = append(mods, inventory.CanonicalModifier{
			Stat:          stat,
			Value:         value,
			Type:          unitType(unit),
			Source:        SourceEffectText,
			DurationTurns: duration,
		})
	}

	return mods
}

// splitPhrase separates the stat name from a trailing duration/range clause
func splitPhrase(phrase string) (stat, tail string) {
	words := strings.Fields(phrase)

	cut := len(words)
	for i, w := range words {
		n := Normalize(w)
		if !clauseWords[n] {
			continue
		}
		cut = i
		// "2 tours": the count belongs to the clause
		if i > 0 && (n == "tour" || n == "tours" || n == "turn" || n == "turns") && isDigits(words[i-1]) {
			cut = i - 1
		}
		break
	}

	tail = strings.Join(words[cut:], " ")
	return joinTrimmed(words[:cut]), tail
}

// subjectPhrase turns the words before a copula into a stat name.
// Words before the first article are dropped along with the article.
func subjectPhrase(subject string) string {
	words := strings.Fields(subject)
	for i, w := range words {
		lower := strings.ToLower(w)
		if articles[Normalize(w)] || strings.HasPrefix(lower, "l'") || strings.HasPrefix(lower, "l’") {
			words = words[i:]
			break
		}
	}
	return joinTrimmed(words)
}

func joinTrimmed(words []string) string {
	for len(words) > 0 && leadingWords[Normalize(words[0])] {
		words = words[1:]
	}
	if len(words) > 0 {
		words[0] = stripElision(words[0])
	}
	for len(words) > 0 && trailingWords[Normalize(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	return strings.Trim(strings.Join(words, " "), " '’-")
}

// stripElision removes a leading "l'" or "d'"
func stripElision(word string) string {
	lower := strings.ToLower(word)
	for _, prefix := range []string{"l'", "l’", "d'", "d’"} {
		if strings.HasPrefix(lower, prefix) && len(word) > len(prefix) {
			return word[len(prefix):]
		}
	}
	return word
}

func signedValue(sign, digits string) (float64, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n == 0 {
		return 0, false
	}
	if sign == "-" || sign == "−" {
		n = -n
	}
	return float64(n), true
}

func unitType(unit string) inventory.ModifierType {
	if unit == "%" {
		return inventory.ModifierTypePercent
	}
	return inventory.ModifierTypeFlat
}

func isPenaltyVerb(verb string) bool {
	n := Normalize(verb)
	return strings.HasPrefix(n, "redui") || strings.HasPrefix(n, "diminu") || strings.HasPrefix(n, "baiss")
}

func durationIn(tail string) *int {
	m := durationPattern.FindStringSubmatch(tail)
	if m == nil {
		return nil
	}
	return atoiPtr(m[1])
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
