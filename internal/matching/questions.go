package matching

import "github.com/jonathan/talent-engine/internal/types"

// maxInterviewQuestions caps the suggested question list.
const maxInterviewQuestions = 5

// categoryQuestions maps each category to a probing question used when
// that category is among the candidate's weakest.
var categoryQuestions = map[string]string{
	"technical":        "Walk me through a recent project where you used the core technologies this role requires.",
	"experience":       "Which of your past roles comes closest to this one, and what did you own there?",
	"education":        "How have you compensated for formal training gaps in your field?",
	"soft_skills":      "Tell me about a time you had to resolve a disagreement within your team.",
	"cultural_fit":     "What kind of working environment lets you do your best work?",
	"growth_potential": "What skill are you currently investing in, and why?",
}

// genericClosers pad the list after the weakest categories are covered.
var genericClosers = []string{
	"What attracts you to this position in particular?",
	"Where do you see yourself in three years?",
	"What would you need from us in your first 90 days to succeed?",
}

// buildInterviewQuestions proposes up to five questions, prioritized
// toward the weakest category scores first, then generic closers. The
// order is deterministic for identical inputs.
func buildInterviewQuestions(score *types.PredictiveScore) []string {
	questions := make([]string, 0, maxInterviewQuestions)

	for _, category := range score.WeakestCategories() {
		if len(questions) == 3 {
			break // leave room for closers
		}
		if q, ok := categoryQuestions[category]; ok {
			questions = append(questions, q)
		}
	}

	for _, q := range genericClosers {
		if len(questions) == maxInterviewQuestions {
			break
		}
		questions = append(questions, q)
	}

	return questions
}
