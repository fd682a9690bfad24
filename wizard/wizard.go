// Package wizard drives the evaluator→team→round→score judging flow. The
// state machine enforces the selection rules (judges score only as
// themselves, unassigned teams are not scorable, only active rounds are
// offerable) and decides between creating and overwriting an evaluation by
// looking up the existing record for the selected triple.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/services"
)

var (
	ErrNotLoggedIn        = errors.New("no user is logged in")
	ErrWrongStep          = errors.New("operation not allowed at the current step")
	ErrEvaluatorLocked    = errors.New("judges may only score as their own evaluator")
	ErrEvaluatorUnknown   = errors.New("selected evaluator does not exist")
	ErrTeamUnknown        = errors.New("selected team does not exist")
	ErrTeamUnassigned     = errors.New("team has no problem statement assigned")
	ErrRoundNotOfferable  = errors.New("round is not active")
	ErrParameterUnknown   = errors.New("parameter does not belong to the selected round")
	ErrScoreOutOfRange    = errors.New("score is outside the parameter's allowed range")
	ErrNoEvaluationHeld   = errors.New("no existing evaluation to delete")
	ErrDeleteNotRequested = errors.New("delete has not been requested")
)

// Step is one stage of the linear judging flow.
type Step int

const (
	StepEvaluator Step = iota
	StepTeam
	StepRound
	StepScore
)

func (s Step) String() string {
	switch s {
	case StepEvaluator:
		return "evaluator"
	case StepTeam:
		return "team"
	case StepRound:
		return "round"
	case StepScore:
		return "score"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Directory provides the reference data the flow selects from.
type Directory interface {
	ListEvaluators(ctx context.Context) ([]models.Evaluator, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListRounds(ctx context.Context) ([]models.Round, error)
	ListParameters(ctx context.Context, roundID *int) ([]models.Parameter, error)
}

// EvaluationStore is the slice of the evaluation service the wizard needs:
// the existing-record lookup, the keyed submit, and the delete.
// services.EvaluationService satisfies it.
type EvaluationStore interface {
	GetForTriple(ctx context.Context, teamID, roundID, evaluatorID int) (*models.Evaluation, error)
	Submit(ctx context.Context, input services.SubmitEvaluationInput) (*models.Evaluation, error)
	Delete(ctx context.Context, id int) error
}

type Wizard struct {
	session *Session
	dir     Directory
	store   EvaluationStore

	step      Step
	evaluator *models.Evaluator
	team      *models.Team
	round     *models.Round
	params    []models.Parameter
	existing  *models.Evaluation
	scores    models.ScoreMap
	feedback  string

	deleteRequested bool
}

func New(session *Session, dir Directory, store EvaluationStore) *Wizard {
	return &Wizard{
		session: session,
		dir:     dir,
		store:   store,
		step:    StepEvaluator,
		scores:  models.ScoreMap{},
	}
}

func (w *Wizard) Step() Step { return w.step }

// Editing reports whether the score step holds an existing evaluation as its
// baseline, i.e. a submit would overwrite rather than create.
func (w *Wizard) Editing() bool { return w.existing != nil }

// SelectEvaluator moves evaluator→team. A judge whose own evaluator differs
// from the selection is rejected without any state change.
func (w *Wizard) SelectEvaluator(ctx context.Context, evaluatorID int) error {
	if w.step != StepEvaluator {
		return ErrWrongStep
	}
	if !w.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if !w.session.MaySelectEvaluator(evaluatorID) {
		return ErrEvaluatorLocked
	}

	evaluators, err := w.dir.ListEvaluators(ctx)
	if err != nil {
		return fmt.Errorf("failed to list evaluators: %w", err)
	}
	for i := range evaluators {
		if evaluators[i].ID == evaluatorID {
			w.evaluator = &evaluators[i]
			w.step = StepTeam
			return nil
		}
	}
	return ErrEvaluatorUnknown
}

// CandidateTeams splits the team list into scorable teams and teams that are
// surfaced as unassigned because they have no problem statement yet.
func (w *Wizard) CandidateTeams(ctx context.Context) (assigned, unassigned []models.Team, err error) {
	teams, err := w.dir.ListTeams(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list teams: %w", err)
	}
	for _, team := range teams {
		if team.Assigned() {
			assigned = append(assigned, team)
		} else {
			unassigned = append(unassigned, team)
		}
	}
	return assigned, unassigned, nil
}

// SelectTeam moves team→round. Teams without a problem statement block the
// flow.
func (w *Wizard) SelectTeam(ctx context.Context, teamID int) error {
	if w.step != StepTeam {
		return ErrWrongStep
	}

	teams, err := w.dir.ListTeams(ctx)
	if err != nil {
		return fmt.Errorf("failed to list teams: %w", err)
	}
	for i := range teams {
		if teams[i].ID != teamID {
			continue
		}
		if !teams[i].Assigned() {
			return ErrTeamUnassigned
		}
		w.team = &teams[i]
		w.step = StepRound
		return nil
	}
	return ErrTeamUnknown
}

// OfferableRounds returns only the rounds currently open for judging.
func (w *Wizard) OfferableRounds(ctx context.Context) ([]models.Round, error) {
	rounds, err := w.dir.ListRounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	offerable := make([]models.Round, 0, len(rounds))
	for _, round := range rounds {
		if round.IsActive {
			offerable = append(offerable, round)
		}
	}
	return offerable, nil
}

// SelectRound moves round→score. It loads the round's rubric and, when an
// evaluation already exists for the (team, round, evaluator) triple, its
// score map and feedback as the editing baseline.
func (w *Wizard) SelectRound(ctx context.Context, roundID int) error {
	if w.step != StepRound {
		return ErrWrongStep
	}

	rounds, err := w.dir.ListRounds(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rounds: %w", err)
	}
	var selected *models.Round
	for i := range rounds {
		if rounds[i].ID == roundID {
			selected = &rounds[i]
			break
		}
	}
	if selected == nil || !selected.IsActive {
		return ErrRoundNotOfferable
	}

	params, err := w.dir.ListParameters(ctx, &roundID)
	if err != nil {
		return fmt.Errorf("failed to list parameters: %w", err)
	}

	existing, err := w.store.GetForTriple(ctx, w.team.ID, roundID, w.evaluator.ID)
	switch {
	case err == nil:
		w.existing = existing
		w.scores = existing.Scores.Clone()
		w.feedback = existing.Feedback
	case errors.Is(err, services.ErrEvaluationNotFound):
		w.existing = nil
		w.scores = models.ScoreMap{}
		w.feedback = ""
	default:
		return fmt.Errorf("failed to look up existing evaluation: %w", err)
	}

	w.round = selected
	w.params = params
	w.step = StepScore
	return nil
}

// Parameters returns the rubric of the selected round.
func (w *Wizard) Parameters() []models.Parameter { return w.params }

// SetScore records one parameter's score, rejecting values outside
// [0, max_score].
func (w *Wizard) SetScore(paramID models.ParameterID, score float64) error {
	if w.step != StepScore {
		return ErrWrongStep
	}

	var param *models.Parameter
	for i := range w.params {
		if models.ParameterID(w.params[i].ID) == paramID {
			param = &w.params[i]
			break
		}
	}
	if param == nil {
		return ErrParameterUnknown
	}
	if score < 0 || score > float64(param.MaxScore) {
		return ErrScoreOutOfRange
	}

	w.scores[paramID] = score
	return nil
}

func (w *Wizard) SetFeedback(feedback string) {
	w.feedback = feedback
}

// Scores returns a copy of the working score map.
func (w *Wizard) Scores() models.ScoreMap { return w.scores.Clone() }

// Total is the running sum of the working score map, recomputed on demand.
func (w *Wizard) Total() float64 { return w.scores.Total() }

// MaxTotal is the sum of every parameter's maximum score.
func (w *Wizard) MaxTotal() int {
	var max int
	for _, param := range w.params {
		max += param.MaxScore
	}
	return max
}

// Back steps the flow one stage backwards, discarding the state entered at
// the abandoned stage.
func (w *Wizard) Back() error {
	switch w.step {
	case StepScore:
		w.round = nil
		w.params = nil
		w.existing = nil
		w.scores = models.ScoreMap{}
		w.feedback = ""
		w.deleteRequested = false
		w.step = StepRound
	case StepRound:
		w.team = nil
		w.step = StepTeam
	case StepTeam:
		w.evaluator = nil
		w.step = StepEvaluator
	default:
		return ErrWrongStep
	}
	return nil
}

// Submit stores the working scores for the selected triple. The total is
// computed from the score map at submit time; the keyed submit overwrites an
// existing row or creates a new one. On success the flow resets to the team
// step with the evaluator kept.
func (w *Wizard) Submit(ctx context.Context) (*models.Evaluation, error) {
	if w.step != StepScore {
		return nil, ErrWrongStep
	}

	input := services.SubmitEvaluationInput{
		TeamID:             w.team.ID,
		RoundID:            w.round.ID,
		EvaluatorID:        w.evaluator.ID,
		ProblemStatementID: w.team.ProblemStatementID,
		Scores:             w.scores.Clone(),
		Feedback:           w.feedback,
		TotalScore:         w.scores.Total(),
	}

	evaluation, err := w.store.Submit(ctx, input)
	if err != nil {
		return nil, err
	}

	w.resetToTeamStep()
	return evaluation, nil
}

// RequestDelete arms the delete confirmation. Only offered when the score
// step holds an existing evaluation.
func (w *Wizard) RequestDelete() error {
	if w.step != StepScore {
		return ErrWrongStep
	}
	if w.existing == nil {
		return ErrNoEvaluationHeld
	}
	w.deleteRequested = true
	return nil
}

// CancelDelete disarms a pending delete request.
func (w *Wizard) CancelDelete() {
	w.deleteRequested = false
}

// ConfirmDelete deletes the held evaluation. It refuses to act unless
// RequestDelete armed it first. On success the flow resets like a submit.
func (w *Wizard) ConfirmDelete(ctx context.Context) error {
	if w.step != StepScore {
		return ErrWrongStep
	}
	if !w.deleteRequested {
		return ErrDeleteNotRequested
	}

	if err := w.store.Delete(ctx, w.existing.ID); err != nil {
		return err
	}

	w.resetToTeamStep()
	return nil
}

func (w *Wizard) resetToTeamStep() {
	w.team = nil
	w.round = nil
	w.params = nil
	w.existing = nil
	w.scores = models.ScoreMap{}
	w.feedback = ""
	w.deleteRequested = false
	w.step = StepTeam
}
