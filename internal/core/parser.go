package core

import (
	"regexp"
	"strconv"
	"strings"
)

// AnalysisResult is the structured view derived from a free-text model
// answer. Analysis always holds the unmodified answer; every other field is
// a best-effort extraction.
type AnalysisResult struct {
	Analysis           string
	DiseaseDetected    *string
	ConfidenceScore    *float64
	RecommendedActions []string
	LocalRemedies      []string
}

// diseaseTerms is the closed vocabulary of disease and pest indicators common
// for Karnataka crops. Order is the match priority, not frequency: the first
// term found anywhere in the answer wins, regardless of position.
var diseaseTerms = []string{
	"blight", "wilt", "rust", "mildew", "mosaic", "rot", "canker",
	"anthracnose", "leaf spot", "powdery mildew", "downy mildew",
	"bacterial", "fungal", "viral", "aphid", "thrips", "whitefly",
}

// confidencePatterns are tried in order; the first pattern that matches
// anywhere in the text supplies the score. Later patterns are never
// consulted once an earlier one matches, even if they would bind a more
// specific phrasing elsewhere in the text. Known limitation, kept as the
// documented contract.
var confidencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)confidence[:\s]*(\d+)%`),
	regexp.MustCompile(`(?i)(\d+)%\s*confidence`),
	regexp.MustCompile(`(?i)confidence[:\s]*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*percent`),
}

// actionVerbs mark a line as an instruction to the farmer.
var actionVerbs = []string{
	"spray", "apply", "use", "treat", "remove", "cut", "water",
	"fertilize", "prune", "harvest", "isolate",
}

// remedyTerms mark an instruction as a local or organic remedy rather than a
// general action.
var remedyTerms = []string{
	"neem", "organic", "local", "traditional", "natural",
	"turmeric", "garlic", "soap", "ash",
}

// numberedRemedyTerms is the reduced indicator set used for numbered lines
// that carry no action verb.
var numberedRemedyTerms = []string{"neem", "organic", "local"}

var numberedLine = regexp.MustCompile(`^\d+\.`)

// ParseAnalysis derives structured fields from a model's free-text answer.
// Extraction is best-effort and never fails: whatever happens, the raw text
// is preserved in the result so the caller always has something to display.
func ParseAnalysis(text string) (result AnalysisResult) {
	result = AnalysisResult{
		Analysis:           text,
		RecommendedActions: []string{},
		LocalRemedies:      []string{},
	}

	// Degrade to the raw-text-only result if any extraction step panics.
	defer func() {
		if r := recover(); r != nil {
			result = AnalysisResult{
				Analysis:           text,
				RecommendedActions: []string{},
				LocalRemedies:      []string{},
			}
		}
	}()

	lower := strings.ToLower(text)

	for _, term := range diseaseTerms {
		if strings.Contains(lower, term) {
			name := titleCase(term)
			result.DiseaseDetected = &name
			break
		}
	}

	for _, pattern := range confidencePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				score := float64(v) / 100
				result.ConfidenceScore = &score
			}
			break
		}
	}

	actions, remedies := classifyLines(text)
	result.RecommendedActions = actions
	result.LocalRemedies = remedies
	return result
}

// classifyLines splits the answer into lines and sorts each into actions or
// remedies. A line with an action verb is a remedy when it also names a
// remedy indicator, otherwise an action; numbered lines longer than ten
// characters count as actions unless they name neem/organic/local. Order is
// preserved; output is capped at five actions and three remedies.
func classifyLines(text string) (actions, remedies []string) {
	actions = []string{}
	remedies = []string{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case containsAny(lower, actionVerbs):
			if containsAny(lower, remedyTerms) {
				remedies = append(remedies, line)
			} else {
				actions = append(actions, line)
			}
		case numberedLine.MatchString(line) && len(line) > 10:
			if containsAny(lower, numberedRemedyTerms) {
				remedies = append(remedies, line)
			} else {
				actions = append(actions, line)
			}
		}
	}

	if len(actions) > 5 {
		actions = actions[:5]
	}
	if len(remedies) > 3 {
		remedies = remedies[:3]
	}
	return actions, remedies
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// titleCase capitalizes the first letter of every space-separated word, so
// "leaf spot" is stored as "Leaf Spot".
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
