package signals

// Weights is the per-signal scoring policy. The numeric values are tunable;
// the relative ordering is not: an explicit favorite outweighs a re-read,
// a re-read outweighs a first completion, and the personality-quiz prior is
// the weakest contribution of all.
type Weights struct {
	Favorite     float64 // explicit favorite/bookmark, strongest per-occurrence signal
	Reread       float64 // second and later completions of the same book
	Completed    float64 // first completion of a book
	QuizScore    float64 // quiz attempt with a strong score
	Session      float64 // repeated long reading sessions on one book
	HighProgress float64 // unfinished book read past the high-progress threshold
	QuizBase     float64 // personality-quiz dominant traits, a prior not evidence
}

func DefaultWeights() Weights {
	return Weights{
		Favorite:     3.0,
		Reread:       2.5,
		Completed:    2.0,
		QuizScore:    2.0,
		Session:      1.5,
		HighProgress: 1.5,
		QuizBase:     1.0,
	}
}

const (
	// HighProgressRatio is the page ratio at which an unfinished book still
	// counts as an engagement signal.
	HighProgressRatio = 0.70

	// StrongQuizRatio is the score ratio treated as comprehension success.
	StrongQuizRatio = 0.80

	// LongSessionSeconds is the duration that makes a session "long".
	LongSessionSeconds = 1800

	// LongSessionsRequired is how many long sessions a single book needs
	// before its traits score the session weight.
	LongSessionsRequired = 2

	// TopTraitCount caps the ranked output of one aggregation run.
	TopTraitCount = 5
)
