package progress

import "fmt"

// Subject is a top-level content domain of the question bank.
type Subject string

const (
	SubjectMathematics Subject = "mathematics"
	SubjectFinance     Subject = "finance"
	SubjectAgriculture Subject = "agriculture"
)

// Subjects lists every subject in canonical order. Iteration over subjects
// always follows this order so tie-breaks are deterministic.
var Subjects = []Subject{SubjectMathematics, SubjectFinance, SubjectAgriculture}

// ParseSubject converts a question-bank subject name to a Subject.
func ParseSubject(s string) (Subject, error) {
	for _, sub := range Subjects {
		if string(sub) == s {
			return sub, nil
		}
	}
	return "", fmt.Errorf("unknown subject %q", s)
}

// Difficulty is a question difficulty level.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists every level from easiest to hardest.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// ParseDifficulty converts a question-bank difficulty name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Easier returns the level one step below d. Beginner has no lower level.
func (d Difficulty) Easier() Difficulty {
	switch d {
	case Advanced:
		return Intermediate
	default:
		return Beginner
	}
}

// Harder returns the level one step above d. Advanced has no higher level.
func (d Difficulty) Harder() Difficulty {
	switch d {
	case Beginner:
		return Intermediate
	default:
		return Advanced
	}
}

// QuestionType is the shape of a question in the question bank.
type QuestionType string

const (
	QuestionMCQ        QuestionType = "mcq"
	QuestionConceptual QuestionType = "conceptual"
	QuestionNumerical  QuestionType = "numerical"
)

// QuestionTypes lists every question type.
var QuestionTypes = []QuestionType{QuestionMCQ, QuestionConceptual, QuestionNumerical}

// percent returns correct/attempts as a 0-100 rate, or 0 with no attempts.
func percent(correct, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return float64(correct) / float64(attempts) * 100
}
