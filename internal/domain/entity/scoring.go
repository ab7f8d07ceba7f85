package entity

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	SpamThreshold  = 50
	spamLinkBonus  = 20
	spamLinkCutoff = 3
)

var spamPhrases = []string{
	"viagra", "cialis", "casino", "lottery", "winner", "bitcoin", "crypto",
	"forex", "loan", "porn", "xxx", "seo services", "backlinks", "click here",
	"buy now", "free money", "make money", "earn cash", "work from home",
	"guaranteed", "no credit check", "weight loss", "cheap", "discount",
	"limited time", "act now", "unsubscribe", "100% free",
}

var spamTokens = buildSpamTokens()

var linkPattern = regexp.MustCompile(`(?i)https?://|www\.`)

// buildSpamTokens splits each phrase into tokens, longest phrases first so a
// longer match wins over a shorter one sharing its first word.
func buildSpamTokens() [][]string {
	out := make([][]string, 0, len(spamPhrases))
	for _, phrase := range spamPhrases {
		out = append(out, tokenize(phrase))
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '%'
	})
}

// spamHits counts tokens covered by a spam phrase. Every word of a matched
// multi-word phrase counts.
func spamHits(tokens []string) int {
	hits := 0
	for i := 0; i < len(tokens); {
		matched := 0
		for _, phrase := range spamTokens {
			if hasPrefixTokens(tokens[i:], phrase) {
				matched = len(phrase)
				break
			}
		}
		if matched > 0 {
			hits += matched
			i += matched
			continue
		}
		i++
	}
	return hits
}

func hasPrefixTokens(tokens, prefix []string) bool {
	if len(prefix) == 0 || len(prefix) > len(tokens) {
		return false
	}
	for i, p := range prefix {
		if tokens[i] != p {
			return false
		}
	}
	return true
}

// SpamScore returns the share of spam-keyword tokens in the message as a
// whole percentage. Spam words in the subject add hits without growing the
// denominator, and many links in the message add a bonus.
func SpamScore(subject, message string) int {
	tokens := tokenize(message)
	if len(tokens) == 0 {
		return 0
	}

	hits := spamHits(tokens) + spamHits(tokenize(subject))
	score := hits * 100 / len(tokens)

	if len(linkPattern.FindAllStringIndex(message, -1)) > spamLinkCutoff {
		score += spamLinkBonus
	}
	return clampScore(score)
}

var (
	industryScores = map[LeadIndustry]int{
		IndustryHealthcare:    20,
		IndustryHospital:      20,
		IndustryImagingCenter: 20,
		IndustryTelemedicine:  15,
		IndustryUrgentCare:    12,
		IndustryClinic:        12,
		IndustryOther:         5,
	}
	companySizeScores = map[CompanySize]int{
		CompanySizeEnterprise: 15,
		CompanySizeLarge:      12,
		CompanySizeMedium:     8,
		CompanySizeSmall:      5,
	}
	budgetScores = map[LeadBudget]int{
		BudgetOver1M:     20,
		Budget500kTo1M:   18,
		Budget100kTo500k: 15,
		Budget50kTo100k:  10,
		BudgetUnder50k:   5,
	}
	timelineScores = map[LeadTimeline]int{
		TimelineImmediate:     15,
		TimelineWithin3Months: 12,
		TimelineWithin6Months: 8,
		TimelineWithin1Year:   5,
		TimelineExploring:     2,
	}
	sourceScores = map[LeadSource]int{
		SourceReferral:     10,
		SourceTradeShow:    8,
		SourceWebsite:      7,
		SourceLinkedIn:     6,
		SourceColdOutreach: 3,
		SourceOther:        2,
	}
)

// LeadScore rates a lead from its firmographics. Unknown values add nothing.
func LeadScore(l *SalesLead) int {
	score := industryScores[l.Industry] +
		companySizeScores[l.CompanySize] +
		budgetScores[l.Budget] +
		timelineScores[l.Timeline] +
		sourceScores[l.Source]
	if strings.TrimSpace(l.Phone) != "" {
		score += 5
	}
	if strings.TrimSpace(l.Website) != "" {
		score += 5
	}
	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
