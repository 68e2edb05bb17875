package corpus

import "strings"

// Category classifies a post by its dominant subject. Exactly one per post.
type Category string

const (
	CategoryEducational Category = "educational"
	CategorySeasonal    Category = "seasonal"
	CategoryFragrance   Category = "fragrance"
	CategoryDecor       Category = "decor"
	CategoryCommercial  Category = "commercial"
	CategoryProcess     Category = "process"
	CategoryGeneral     Category = "general"
)

// Season tags posts tied to a time of year. Empty means no seasonal signal.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonNone   Season = ""
)

// Metadata is derived from a post text by Tag. Category, topics and season
// come from keyword rule tables; the rest are simple text properties.
type Metadata struct {
	Category    Category
	Topics      []string
	Season      Season
	LengthChars int
	HasEmoji    bool
	HasHashtag  bool
}

// categoryRules are evaluated top to bottom; the first rule whose keyword set
// intersects the lowercased text wins. The order is part of the tagging
// contract: a post mentioning both "факт" and "цена" is educational, not
// commercial. Matching is plain substring containment, so a keyword inside a
// longer word still counts.
var categoryRules = []struct {
	category Category
	keywords []string
}{
	{CategoryEducational, []string{"интересн", "факт"}},
	{CategorySeasonal, []string{"новогод", "рождеств", "8 марта", "весн"}},
	{CategoryFragrance, []string{"аромат", "запах", "парфюм"}},
	{CategoryDecor, []string{"декор", "сухоцвет", "камн"}},
	{CategoryCommercial, []string{"заказ", "подарок", "цена"}},
	{CategoryProcess, []string{"процесс", "создан", "изготовл"}},
}

// topicRules are not mutually exclusive: every matching topic is collected,
// in this fixed order.
var topicRules = []struct {
	topic    string
	keywords []string
}{
	{"ароматы", []string{"аромат", "запах", "парфюм", "отдушк"}},
	{"декор", []string{"декор", "сухоцвет", "камн", "украшен"}},
	{"процесс", []string{"процесс", "создан", "изготовл", "ручн"}},
	{"материалы", []string{"воск", "кокосов", "натуральн", "качеств"}},
	{"праздники", []string{"новогод", "рождеств", "8 марта", "праздник"}},
	{"подарки", []string{"подарок", "подар", "заказ", "сюрприз"}},
}

// seasonRules follow the same first-match-wins policy as categories.
var seasonRules = []struct {
	season   Season
	keywords []string
}{
	{SeasonWinter, []string{"новогод", "рождеств", "зим"}},
	{SeasonSpring, []string{"весн", "8 марта"}},
	{SeasonSummer, []string{"лет"}},
	{SeasonAutumn, []string{"осен"}},
}

// Tag derives metadata from a post text. Pure and deterministic: the same
// text always yields the same metadata, independent of corpus order.
func Tag(text string) Metadata {
	lower := strings.ToLower(text)

	md := Metadata{
		Category:    CategoryGeneral,
		Season:      SeasonNone,
		LengthChars: len([]rune(text)),
		HasEmoji:    hasEmoji(text),
		HasHashtag:  strings.Contains(text, "#"),
	}

	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			md.Category = rule.category
			break
		}
	}

	for _, rule := range topicRules {
		if containsAny(lower, rule.keywords) {
			md.Topics = append(md.Topics, rule.topic)
		}
	}

	for _, rule := range seasonRules {
		if containsAny(lower, rule.keywords) {
			md.Season = rule.season
			break
		}
	}

	return md
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// hasEmoji reports whether the text contains a rune from the common
// pictographic blocks (Misc Symbols and Pictographs, Emoticons,
// Transport and Map Symbols).
func hasEmoji(text string) bool {
	for _, r := range text {
		switch {
		case r >= 0x1F300 && r <= 0x1F5FF:
			return true
		case r >= 0x1F600 && r <= 0x1F64F:
			return true
		case r >= 0x1F680 && r <= 0x1F6FF:
			return true
		}
	}
	return false
}
