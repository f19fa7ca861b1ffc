package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"aarav/internal/models/trip_models"
)

// Profile fields in the fixed prompt order.
const (
	FieldTimeDays    = "time_days"
	FieldGroup       = "group"
	FieldBudget      = "budget"
	FieldComfort     = "comfort"
	FieldPreferences = "preferences"
)

var profileFieldOrder = []string{FieldTimeDays, FieldGroup, FieldBudget, FieldComfort, FieldPreferences}

// TextClassifierInterface is the pluggable heuristic layer: deterministic
// profile-field extractors plus intent detection. The keyword implementation
// can be swapped for a model-backed one without touching the state machine.
type TextClassifierInterface interface {
	ParseTimeDays(message string) (int, bool)
	ParseGroup(message string) (*trip_models.Group, bool)
	ParseBudget(message string) (value *float64, unknown *bool)
	ParseComfort(message string) (trip_models.ComfortTier, bool)
	ParsePreferences(message string) []string
	ApplyMessage(profile *trip_models.TripProfile, message string)
	NextProfileField(t *trip_models.TripState) string

	ExtractStayArea(message string) (string, bool)
	IsAffirmative(message string) bool
	IsNegative(message string) bool
	IsOffTopic(message string) bool
	IsTooBroad(message string) bool
	AsksExactPrices(message string) bool
	IsChangeOfMind(message string) bool
	IsVagueOrConfused(message string) bool
	WantsRouteBuild(message string) bool
	MentionsOtherCity(message string) bool
}

type keywordClassifier struct{}

func NewTextClassifier() TextClassifierInterface {
	return &keywordClassifier{}
}

var (
	timeDaysRe  = regexp.MustCompile(`\b(\d{1,2})\s*(day|days|week|weeks)\b`)
	groupWeRe   = regexp.MustCompile(`\bwe\s+are\s+(\d{1,2})\b`)
	groupNounRe = regexp.MustCompile(`\b(\d{1,2})\s*(people|persons|friends|travelers|travellers)\b`)
	budgetUSDRe = regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)`)
	budgetDolRe = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(usd|dollars|dollar)\b`)
	wordRe      = regexp.MustCompile(`[a-zA-Z']+`)
	trailPunct  = regexp.MustCompile(`[\.!\?]+$`)

	stayAreaRes = []*regexp.Regexp{
		regexp.MustCompile(`^i\s*'?m\s+staying\s+(?:in|near)\s+(.+)$`),
		regexp.MustCompile(`^i\s+am\s+staying\s+(?:in|near)\s+(.+)$`),
		regexp.MustCompile(`^staying\s+(?:in|near)\s+(.+)$`),
		regexp.MustCompile(`^my\s+hotel\s+is\s+(?:in|near)\s+(.+)$`),
	}

	// Word boundaries matter here: "family" must not trip on "ai".
	offTopicRes = []*regexp.Regexp{
		regexp.MustCompile(`\bai\b`),
		regexp.MustCompile(`\bllm\b`),
		regexp.MustCompile(`\bmodel\b`),
		regexp.MustCompile(`\bollama\b`),
		regexp.MustCompile(`\bprompt\b`),
		regexp.MustCompile(`\btoken\b`),
		regexp.MustCompile(`\bfine\s*tune\b`),
		regexp.MustCompile(`\bapi\b`),
		regexp.MustCompile(`\bopenai\b`),
	}
)

var otherCities = map[string]struct{}{
	"pokhara": {}, "chitwan": {}, "lumbini": {}, "butwal": {}, "biratnagar": {},
	"bharatpur": {}, "hetauda": {}, "dharan": {}, "janakpur": {}, "nepalgunj": {},
}

var preferenceBuckets = []struct {
	label string
	keys  []string
}{
	{"history", []string{"history", "historical", "heritage", "old city", "durbar"}},
	{"religious", []string{"religious", "spiritual", "temple", "stupa", "monastery", "hindu", "buddhist"}},
	{"architecture", []string{"architecture", "unique building", "tower", "dharahara", "design"}},
	{"food", []string{"food", "momo", "cafes", "coffee", "street food"}},
	{"markets", []string{"market", "shopping", "bazaar", "souvenir"}},
	{"walking", []string{"walk", "walking", "stroll", "on foot"}},
	{"calm", []string{"quiet", "calm", "slow", "peaceful", "courtyard"}},
	{"viewpoints", []string{"view", "viewpoint", "sunrise", "sunset", "hill", "hike"}},
}

func normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

func containsAny(m string, keys ...string) bool {
	for _, k := range keys {
		if strings.Contains(m, k) {
			return true
		}
	}
	return false
}

func (kc *keywordClassifier) ParseTimeDays(message string) (int, bool) {
	mm := timeDaysRe.FindStringSubmatch(normalize(message))
	if mm == nil {
		return 0, false
	}
	n, err := strconv.Atoi(mm[1])
	if err != nil {
		return 0, false
	}
	if strings.HasPrefix(mm[2], "week") {
		n *= 7
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}

func (kc *keywordClassifier) ParseGroup(message string) (*trip_models.Group, bool) {
	m := normalize(message)

	if containsAny(m, "solo", "alone", "by myself", "just me") {
		return &trip_models.Group{Label: "one", Count: 1}, true
	}
	if containsAny(m, "couple", "duo", "two of us", "we two") {
		return &trip_models.Group{Label: "duo", Count: 2}, true
	}

	mm := groupWeRe.FindStringSubmatch(m)
	if mm == nil {
		mm = groupNounRe.FindStringSubmatch(m)
	}
	if mm == nil {
		return nil, false
	}

	n, err := strconv.Atoi(mm[1])
	if err != nil || n <= 0 {
		return nil, false
	}
	label := "one"
	switch {
	case n >= 3:
		label = "many"
	case n == 2:
		label = "duo"
	}
	return &trip_models.Group{Label: label, Count: n}, true
}

func (kc *keywordClassifier) ParseBudget(message string) (*float64, *bool) {
	m := normalize(message)

	if containsAny(m, "don't know", "dont know", "not sure", "no idea", "haven't decided") {
		unknown := true
		return nil, &unknown
	}

	mm := budgetUSDRe.FindStringSubmatch(m)
	if mm == nil {
		mm = budgetDolRe.FindStringSubmatch(m)
	}
	if mm != nil {
		if v, err := strconv.ParseFloat(mm[1], 64); err == nil {
			known := false
			return &v, &known
		}
	}

	return nil, nil
}

// ParseComfort checks buckets in fixed priority order: budget cues win over
// mid cues, mid over comfortable. Note "comfortable" alone is a mid cue; the
// top tier needs luxury wording.
func (kc *keywordClassifier) ParseComfort(message string) (trip_models.ComfortTier, bool) {
	m := normalize(message)
	if containsAny(m, "budget", "cheap", "backpacker", "hostel", "basic") {
		return trip_models.ComfortBudget, true
	}
	if containsAny(m, "mid", "mid-range", "midrange", "comfortable", "standard", "3 star", "3-star") {
		return trip_models.ComfortMid, true
	}
	if containsAny(m, "luxury", "premium", "5 star", "5-star", "high-end") {
		return trip_models.ComfortComfortable, true
	}
	return "", false
}

func (kc *keywordClassifier) ParsePreferences(message string) []string {
	m := normalize(message)
	var prefs []string
	for _, bucket := range preferenceBuckets {
		if containsAny(m, bucket.keys...) {
			prefs = append(prefs, bucket.label)
		}
	}
	prefs = lo.Uniq(prefs)
	sort.Strings(prefs)
	return prefs
}

// ApplyMessage merges extracted values into the profile: first parsed value
// wins for every field, preferences accumulate.
func (kc *keywordClassifier) ApplyMessage(profile *trip_models.TripProfile, message string) {
	if strings.TrimSpace(message) == "" {
		return
	}

	if td, ok := kc.ParseTimeDays(message); ok && profile.TimeDays == 0 {
		profile.TimeDays = td
	}

	if g, ok := kc.ParseGroup(message); ok && profile.Group == nil {
		profile.Group = g
	}

	value, unknown := kc.ParseBudget(message)
	if value != nil && profile.Budget == nil {
		profile.Budget = value
		known := false
		profile.BudgetUnknown = &known
	}
	if unknown != nil && *unknown && profile.BudgetUnknown == nil && profile.Budget == nil {
		profile.BudgetUnknown = unknown
	}

	if c, ok := kc.ParseComfort(message); ok && profile.Comfort == "" {
		profile.Comfort = c
	}

	if prefs := kc.ParsePreferences(message); len(prefs) > 0 {
		merged := lo.Uniq(append(profile.Preferences, prefs...))
		sort.Strings(merged)
		profile.Preferences = merged
	}
}

// NextProfileField returns the first field, in prompt order, that is both
// unset and not yet asked this session. Asked-but-unanswered fields are
// skipped so the loop never re-prompts.
func (kc *keywordClassifier) NextProfileField(t *trip_models.TripState) string {
	p := &t.Profile
	missing := map[string]bool{
		FieldTimeDays:    p.TimeDays == 0,
		FieldGroup:       p.Group == nil,
		FieldBudget:      !p.BudgetAnswered(),
		FieldComfort:     p.Comfort == "",
		FieldPreferences: len(p.Preferences) == 0,
	}

	for _, f := range profileFieldOrder {
		if missing[f] && !t.FieldAsked(f) {
			return f
		}
	}
	return ""
}

func (kc *keywordClassifier) ExtractStayArea(message string) (string, bool) {
	m := normalize(message)
	for _, re := range stayAreaRes {
		if mm := re.FindStringSubmatch(m); mm != nil {
			area := strings.TrimSpace(trailPunct.ReplaceAllString(strings.TrimSpace(mm[1]), ""))
			if area != "" {
				return area, true
			}
		}
	}
	return "", false
}

func (kc *keywordClassifier) IsAffirmative(message string) bool {
	m := normalize(message)
	switch m {
	case "yes", "yeah", "yep", "sure", "ok", "okay", "yes please", "please do":
		return true
	}
	return strings.HasPrefix(m, "yes,") || strings.HasPrefix(m, "yes ") ||
		containsAny(m, "sounds good", "let's do it", "lets do it", "go ahead")
}

func (kc *keywordClassifier) IsNegative(message string) bool {
	m := normalize(message)
	switch m {
	case "no", "nope", "no thanks", "not now", "not yet":
		return true
	}
	return strings.HasPrefix(m, "no,") || strings.HasPrefix(m, "no ") ||
		containsAny(m, "maybe later", "not really")
}

func (kc *keywordClassifier) IsOffTopic(message string) bool {
	m := normalize(message)
	for _, re := range offTopicRes {
		if re.MatchString(m) {
			return true
		}
	}
	return false
}

func (kc *keywordClassifier) IsTooBroad(message string) bool {
	return containsAny(normalize(message),
		"tell me everything", "everything", "all places", "all the places", "everything to do")
}

func (kc *keywordClassifier) AsksExactPrices(message string) bool {
	m := normalize(message)
	return containsAny(m, "exact price", "exactly how much", "exact cost", "exactly", "fixed price") &&
		containsAny(m, "price", "cost", "fee", "budget", "rupees", "rs", "usd", "$", "dollar")
}

func (kc *keywordClassifier) IsChangeOfMind(message string) bool {
	return containsAny(normalize(message),
		"never mind", "nevermind", "actually", "change of plan", "instead")
}

func (kc *keywordClassifier) IsVagueOrConfused(message string) bool {
	m := normalize(message)
	switch m {
	case "help", "hi", "hello", "hey":
		return true
	}
	return containsAny(m, "not sure", "i don't know", "dont know", "confused", "whatever", "anything is fine")
}

func (kc *keywordClassifier) WantsRouteBuild(message string) bool {
	return containsAny(normalize(message),
		"build route", "create route", "make a route", "plan my route", "route for me", "build a simple route")
}

func (kc *keywordClassifier) MentionsOtherCity(message string) bool {
	for _, tok := range wordRe.FindAllString(strings.ToLower(message), -1) {
		if _, ok := otherCities[tok]; ok {
			return true
		}
	}
	return false
}
