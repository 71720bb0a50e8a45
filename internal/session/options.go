package session

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/verbdrill/internal/verbs"
)

// Mode selects the kind of drill.
type Mode string

const (
	ModePractice Mode = "practice"
	ModeMemorize Mode = "memorize"
	ModeMeanings Mode = "meanings"
)

// Direction selects the translation direction of a meanings drill.
type Direction string

const (
	DirectionDeEn  Direction = "de-en"
	DirectionEnDe  Direction = "en-de"
	DirectionMixed Direction = "mixed"
)

// Label returns the short display label of a concrete direction.
func (d Direction) Label() string {
	switch d {
	case DirectionDeEn:
		return "DE → EN"
	case DirectionEnDe:
		return "EN → DE"
	default:
		return "mixed"
	}
}

// ParseMode parses a drill mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePractice, "":
		return ModePractice, nil
	case ModeMemorize:
		return ModeMemorize, nil
	case ModeMeanings:
		return ModeMeanings, nil
	default:
		return "", fmt.Errorf("unknown mode %q (use practice, memorize or meanings)", s)
	}
}

// ParseDirection parses a meanings direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionDeEn:
		return DirectionDeEn, nil
	case DirectionEnDe:
		return DirectionEnDe, nil
	case DirectionMixed, "":
		return DirectionMixed, nil
	default:
		return "", fmt.Errorf("unknown direction %q (use de-en, en-de or mixed)", s)
	}
}

// Options configures a drill. SampleSize <= 0 means the whole filtered
// catalog.
type Options struct {
	Mode       Mode
	Tense      verbs.Tense
	Subject    verbs.Subject
	Direction  Direction
	Type       verbs.TypeFilter
	SampleSize int
}

func (o Options) validate() error {
	switch o.Mode {
	case ModePractice, ModeMemorize:
		if len(o.Tense.Fields()) == 0 {
			return fmt.Errorf("%w: unknown tense %q", ErrInvalidOptions, o.Tense)
		}
		if !o.Subject.Valid() {
			return fmt.Errorf("%w: unknown subject %q", ErrInvalidOptions, o.Subject)
		}
	case ModeMeanings:
		switch o.Direction {
		case DirectionDeEn, DirectionEnDe, DirectionMixed:
		default:
			return fmt.Errorf("%w: unknown direction %q", ErrInvalidOptions, o.Direction)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidOptions, o.Mode)
	}
	switch o.Type {
	case verbs.TypeAll, verbs.TypeIrregular, verbs.TypeRegular, "":
	default:
		return fmt.Errorf("%w: unknown verb type %q", ErrInvalidOptions, o.Type)
	}
	return nil
}
