package poker

type Stage string

const (
	StageBase         Stage = "base"
	StageRank         Stage = "rank"
	StageScoredCard   Stage = "scored card"
	StageHeldCard     Stage = "held card"
	StageJoker        Stage = "joker"
	StageJokerEdition Stage = "joker edition"
)

// Step is one change to the running score.
type Step struct {
	Stage  Stage
	Source string // the card or joker responsible
	Effect string
	Before ScoreState
	After  ScoreState
}

// Ledger keeps the score history of a round for --explain.
// A nil *Ledger records nothing.
type Ledger struct {
	Steps []Step
}

// Record appends a step if the state changed.
func (l *Ledger) Record(stage Stage, source, effect string, before, after ScoreState) {
	if l == nil || before == after {
		return
	}
	l.Steps = append(l.Steps, Step{
		Stage:  stage,
		Source: source,
		Effect: effect,
		Before: before,
		After:  after,
	})
}

// Final is the state after the last step, or the zero state for an empty ledger.
func (l *Ledger) Final() ScoreState {
	if l == nil || len(l.Steps) == 0 {
		return ScoreState{}
	}
	return l.Steps[len(l.Steps)-1].After
}
