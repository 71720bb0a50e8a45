// Package session runs one drill: it owns the sampled verbs, the cursor,
// the score and the mistakes, and moves through SETUP, ACTIVE and SUMMARY.
package session

import (
	"errors"
	"math"

	"github.com/verte-zerg/verbdrill/internal/generator"
	"github.com/verte-zerg/verbdrill/internal/grade"
	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

// State is the drill lifecycle state.
type State int

const (
	StateSetup State = iota
	StateActive
	StateSummary
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateActive:
		return "active"
	case StateSummary:
		return "summary"
	default:
		return "unknown"
	}
}

const choicesPerRound = 4

var (
	ErrEmptyCatalog     = errors.New("no verbs match filter")
	ErrInvalidOptions   = errors.New("invalid drill options")
	ErrNotActive        = errors.New("drill is not active")
	ErrNotFinished      = errors.New("drill is not finished")
	ErrNotGradable      = errors.New("operation not available in this mode")
	ErrAlreadySubmitted = errors.New("item already answered")
	ErrInvalidChoice    = errors.New("choice out of range")
)

// Round is one multiple-choice question of a meanings drill.
type Round struct {
	Direction Direction
	Prompt    string
	Choices   []string
	Correct   int
}

// ChoiceResult is the outcome of answering a Round.
type ChoiceResult struct {
	Correct bool
	Chosen  int
	Answer  string
}

// Summary reports a finished drill.
type Summary struct {
	Mode       Mode
	Tense      verbs.Tense
	Items      int
	Score      int
	Total      int
	Percentage int
	Mistakes   []model.Mistake
}

// Controller holds the state of a single drill.
type Controller struct {
	gen   *generator.Generator
	state State
	opts  Options

	items []verbs.Verb

	// others is the whole catalog; meanings distractors ignore the type filter.
	others []verbs.Verb

	cursor   int
	score    int
	mistakes []model.Mistake
	answered bool
	round    Round
}

// New returns a controller in the SETUP state.
func New(gen *generator.Generator) *Controller {
	return &Controller{gen: gen, state: StateSetup}
}

// Start samples the drill items and enters ACTIVE. On error the
// controller is left unchanged.
func (c *Controller) Start(catalog *verbs.Catalog, opts Options) error {
	if opts.Type == "" {
		opts.Type = verbs.TypeAll
	}
	if err := opts.validate(); err != nil {
		return err
	}
	pool := catalog.Filter(opts.Type)
	if len(pool) == 0 {
		return ErrEmptyCatalog
	}

	n := len(pool)
	if opts.SampleSize > 0 && opts.SampleSize < n {
		n = opts.SampleSize
	}
	items := make([]verbs.Verb, 0, n)
	for _, idx := range c.gen.Permutation(len(pool))[:n] {
		items = append(items, pool[idx])
	}

	c.opts = opts
	c.others = catalog.All()
	c.items = items
	c.cursor = 0
	c.score = 0
	c.mistakes = nil
	c.answered = false
	c.state = StateActive
	c.prepareItem()
	return nil
}

// Reset discards the drill and returns to SETUP.
func (c *Controller) Reset() {
	*c = Controller{gen: c.gen, state: StateSetup}
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Options returns the options of the current drill.
func (c *Controller) Options() Options {
	return c.opts
}

// Current returns the verb under the cursor while ACTIVE.
func (c *Controller) Current() (verbs.Verb, bool) {
	if c.state != StateActive {
		return verbs.Verb{}, false
	}
	return c.items[c.cursor], true
}

// Progress returns the 1-based position and the number of items.
func (c *Controller) Progress() (int, int) {
	pos := c.cursor + 1
	if pos > len(c.items) {
		pos = len(c.items)
	}
	return pos, len(c.items)
}

// Score returns the running score.
func (c *Controller) Score() int {
	return c.score
}

// Answered reports whether the current item has been graded.
func (c *Controller) Answered() bool {
	return c.answered
}

// Submit grades a practice answer for the current item.
func (c *Controller) Submit(sub grade.Submission) (grade.Verdict, error) {
	if c.state != StateActive {
		return grade.Verdict{}, ErrNotActive
	}
	if c.opts.Mode != ModePractice {
		return grade.Verdict{}, ErrNotGradable
	}
	if c.answered {
		return grade.Verdict{}, ErrAlreadySubmitted
	}
	verdict := grade.Evaluate(c.items[c.cursor], c.opts.Tense, c.opts.Subject, sub)
	c.score += verdict.Points
	if verdict.Mistake != nil {
		c.mistakes = append(c.mistakes, *verdict.Mistake)
	}
	c.answered = true
	return verdict, nil
}

// Round returns the multiple-choice question for the current item.
func (c *Controller) Round() (Round, error) {
	if c.state != StateActive {
		return Round{}, ErrNotActive
	}
	if c.opts.Mode != ModeMeanings {
		return Round{}, ErrNotGradable
	}
	return c.round, nil
}

// Choose grades the choice at index for the current meanings round.
func (c *Controller) Choose(index int) (ChoiceResult, error) {
	if c.state != StateActive {
		return ChoiceResult{}, ErrNotActive
	}
	if c.opts.Mode != ModeMeanings {
		return ChoiceResult{}, ErrNotGradable
	}
	if c.answered {
		return ChoiceResult{}, ErrAlreadySubmitted
	}
	if index < 0 || index >= len(c.round.Choices) {
		return ChoiceResult{}, ErrInvalidChoice
	}
	res := ChoiceResult{
		Correct: index == c.round.Correct,
		Chosen:  index,
		Answer:  c.round.Choices[c.round.Correct],
	}
	if res.Correct {
		c.score++
	} else {
		verb := c.items[c.cursor]
		c.mistakes = append(c.mistakes, model.Mistake{
			Infinitive:  verb.Infinitive,
			Translation: verb.Translation,
			Direction:   c.round.Direction.Label(),
			Fields: []model.FieldResult{{
				Field:    model.FieldMeaning,
				Expected: res.Answer,
				Given:    c.round.Choices[index],
			}},
		})
	}
	c.answered = true
	return res, nil
}

// Advance moves to the next item, entering SUMMARY after the last one.
// Advancing an unanswered item skips it.
func (c *Controller) Advance() error {
	if c.state != StateActive {
		return ErrNotActive
	}
	c.cursor++
	c.answered = false
	if c.cursor >= len(c.items) {
		c.state = StateSummary
		c.round = Round{}
		return nil
	}
	c.prepareItem()
	return nil
}

// Summary reports the finished drill.
func (c *Controller) Summary() (Summary, error) {
	if c.state != StateSummary {
		return Summary{}, ErrNotFinished
	}
	s := Summary{
		Mode:     c.opts.Mode,
		Tense:    c.opts.Tense,
		Items:    len(c.items),
		Score:    c.score,
		Mistakes: append([]model.Mistake(nil), c.mistakes...),
	}
	switch c.opts.Mode {
	case ModePractice:
		s.Total = len(c.items) * len(c.opts.Tense.Fields())
	case ModeMeanings:
		s.Total = len(c.items)
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(100 * float64(s.Score) / float64(s.Total)))
	}
	return s, nil
}

func (c *Controller) prepareItem() {
	if c.opts.Mode != ModeMeanings {
		return
	}
	c.round = c.buildRound(c.items[c.cursor])
}

func (c *Controller) buildRound(verb verbs.Verb) Round {
	dir := c.opts.Direction
	if dir == DirectionMixed {
		if c.gen.CoinFlip() {
			dir = DirectionDeEn
		} else {
			dir = DirectionEnDe
		}
	}

	prompt, correct := verb.Infinitive, verb.Translation
	if dir == DirectionEnDe {
		prompt, correct = verb.Translation, verb.Infinitive
	}
	pool := make([]string, 0, len(c.others))
	for _, other := range c.others {
		if other.Infinitive == verb.Infinitive {
			continue
		}
		if dir == DirectionEnDe {
			pool = append(pool, other.Infinitive)
		} else {
			pool = append(pool, other.Translation)
		}
	}

	options := append(c.gen.Pick(pool, correct, choicesPerRound-1), correct)
	r := Round{Direction: dir, Prompt: prompt, Choices: make([]string, len(options))}
	for i, idx := range c.gen.Permutation(len(options)) {
		r.Choices[i] = options[idx]
		if idx == len(options)-1 {
			r.Correct = i
		}
	}
	return r
}
