package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/services"
)

func intPtr(v int) *int { return &v }

type fakeDirectory struct {
	evaluators []models.Evaluator
	teams      []models.Team
	rounds     []models.Round
	params     []models.Parameter
}

func (d *fakeDirectory) ListEvaluators(ctx context.Context) ([]models.Evaluator, error) {
	return d.evaluators, nil
}

func (d *fakeDirectory) ListTeams(ctx context.Context) ([]models.Team, error) {
	return d.teams, nil
}

func (d *fakeDirectory) ListRounds(ctx context.Context) ([]models.Round, error) {
	return d.rounds, nil
}

func (d *fakeDirectory) ListParameters(ctx context.Context, roundID *int) ([]models.Parameter, error) {
	if roundID == nil {
		return d.params, nil
	}
	var out []models.Parameter
	for _, p := range d.params {
		if p.RoundID == *roundID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeStore struct {
	existing   *models.Evaluation
	submitted  []services.SubmitEvaluationInput
	deletedIDs []int
	nextID     int
}

func (s *fakeStore) GetForTriple(ctx context.Context, teamID, roundID, evaluatorID int) (*models.Evaluation, error) {
	if s.existing != nil && s.existing.TeamID == teamID &&
		s.existing.RoundID == roundID && s.existing.EvaluatorID == evaluatorID {
		return s.existing, nil
	}
	return nil, services.ErrEvaluationNotFound
}

func (s *fakeStore) Submit(ctx context.Context, input services.SubmitEvaluationInput) (*models.Evaluation, error) {
	s.submitted = append(s.submitted, input)
	id := s.nextID
	if id == 0 {
		id = 1
	}
	if s.existing != nil && s.existing.TeamID == input.TeamID &&
		s.existing.RoundID == input.RoundID && s.existing.EvaluatorID == input.EvaluatorID {
		id = s.existing.ID
	}
	ev := &models.Evaluation{
		ID:          id,
		TeamID:      input.TeamID,
		RoundID:     input.RoundID,
		EvaluatorID: input.EvaluatorID,
		Scores:      input.Scores,
		Feedback:    input.Feedback,
		TotalScore:  input.TotalScore,
	}
	s.existing = ev
	return ev, nil
}

func (s *fakeStore) Delete(ctx context.Context, id int) error {
	s.deletedIDs = append(s.deletedIDs, id)
	s.existing = nil
	return nil
}

func testDirectory() *fakeDirectory {
	return &fakeDirectory{
		evaluators: []models.Evaluator{{ID: 1, Name: "Rishabh"}, {ID: 2, Name: "Srijan"}},
		teams: []models.Team{
			{ID: 10, Name: "Codestorm", ProblemStatementID: intPtr(3)},
			{ID: 11, Name: "Hexabyte"},
		},
		rounds: []models.Round{
			{ID: 1, Name: "Round 1", Sequence: 1, IsActive: true},
			{ID: 2, Name: "Round 2", Sequence: 2},
		},
		params: []models.Parameter{
			{ID: 1, RoundID: 1, Name: "Innovation", MaxScore: 10},
			{ID: 2, RoundID: 1, Name: "Feasibility", MaxScore: 5},
			{ID: 3, RoundID: 1, Name: "Technical Depth", MaxScore: 10},
			{ID: 4, RoundID: 1, Name: "Presentation", MaxScore: 5},
			{ID: 5, RoundID: 2, Name: "Progress", MaxScore: 10},
		},
	}
}

func adminSession() *Session {
	s := NewSession()
	s.Login(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	return s
}

func judgeSession(evaluatorID int) *Session {
	s := NewSession()
	s.Login(&models.User{ID: 2, Username: "judge", Role: models.RoleJudge, EvaluatorID: &evaluatorID})
	return s
}

func advanceToScoreStep(t *testing.T, w *Wizard) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, w.SelectEvaluator(ctx, 1))
	require.NoError(t, w.SelectTeam(ctx, 10))
	require.NoError(t, w.SelectRound(ctx, 1))
}

func TestSelectEvaluatorRequiresLogin(t *testing.T) {
	w := New(NewSession(), testDirectory(), &fakeStore{})

	err := w.SelectEvaluator(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotLoggedIn)
	require.Equal(t, StepEvaluator, w.Step())
}

func TestJudgeCannotSelectAnotherEvaluator(t *testing.T) {
	w := New(judgeSession(1), testDirectory(), &fakeStore{})

	err := w.SelectEvaluator(context.Background(), 2)
	require.ErrorIs(t, err, ErrEvaluatorLocked)
	require.Equal(t, StepEvaluator, w.Step())

	require.NoError(t, w.SelectEvaluator(context.Background(), 1))
	require.Equal(t, StepTeam, w.Step())
}

func TestAdminMaySelectAnyEvaluator(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})

	require.NoError(t, w.SelectEvaluator(context.Background(), 2))
	require.Equal(t, StepTeam, w.Step())
}

func TestSelectEvaluatorUnknown(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})

	err := w.SelectEvaluator(context.Background(), 99)
	require.ErrorIs(t, err, ErrEvaluatorUnknown)
	require.Equal(t, StepEvaluator, w.Step())
}

func TestCandidateTeamsSplitsByAssignment(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})

	assigned, unassigned, err := w.CandidateTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	require.Equal(t, "Codestorm", assigned[0].Name)
	require.Len(t, unassigned, 1)
	require.Equal(t, "Hexabyte", unassigned[0].Name)
}

func TestSelectTeamRejectsUnassigned(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})
	require.NoError(t, w.SelectEvaluator(context.Background(), 1))

	err := w.SelectTeam(context.Background(), 11)
	require.ErrorIs(t, err, ErrTeamUnassigned)
	require.Equal(t, StepTeam, w.Step())
}

func TestOfferableRoundsOnlyActive(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})

	rounds, err := w.OfferableRounds(context.Background())
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	require.Equal(t, 1, rounds[0].ID)
}

func TestSelectRoundRejectsInactive(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})
	require.NoError(t, w.SelectEvaluator(context.Background(), 1))
	require.NoError(t, w.SelectTeam(context.Background(), 10))

	err := w.SelectRound(context.Background(), 2)
	require.ErrorIs(t, err, ErrRoundNotOfferable)
	require.Equal(t, StepRound, w.Step())
}

func TestSelectRoundLoadsExistingBaseline(t *testing.T) {
	store := &fakeStore{existing: &models.Evaluation{
		ID: 7, TeamID: 10, RoundID: 1, EvaluatorID: 1,
		Scores: models.ScoreMap{1: 8, 2: 4}, Feedback: "solid demo",
	}}
	w := New(adminSession(), testDirectory(), store)
	advanceToScoreStep(t, w)

	require.True(t, w.Editing())
	require.Equal(t, models.ScoreMap{1: 8, 2: 4}, w.Scores())
	require.Equal(t, 12.0, w.Total())
}

func TestSelectRoundFreshTriple(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})
	advanceToScoreStep(t, w)

	require.False(t, w.Editing())
	require.Empty(t, w.Scores())
	require.Len(t, w.Parameters(), 4)
	require.Equal(t, 30, w.MaxTotal())
}

func TestSetScoreBounds(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})
	advanceToScoreStep(t, w)

	require.ErrorIs(t, w.SetScore(2, 6), ErrScoreOutOfRange)
	require.ErrorIs(t, w.SetScore(2, -1), ErrScoreOutOfRange)
	require.ErrorIs(t, w.SetScore(5, 3), ErrParameterUnknown)

	require.NoError(t, w.SetScore(2, 5))
	require.NoError(t, w.SetScore(2, 0))
}

func TestTotalTracksScores(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})
	advanceToScoreStep(t, w)

	require.NoError(t, w.SetScore(1, 10))
	require.NoError(t, w.SetScore(2, 5))
	require.NoError(t, w.SetScore(3, 10))
	require.NoError(t, w.SetScore(4, 5))
	require.Equal(t, 30.0, w.Total())

	require.NoError(t, w.SetScore(4, 2))
	require.Equal(t, 27.0, w.Total())
}

func TestSubmitComputesTotalAndResets(t *testing.T) {
	store := &fakeStore{}
	w := New(adminSession(), testDirectory(), store)
	advanceToScoreStep(t, w)

	require.NoError(t, w.SetScore(1, 10))
	require.NoError(t, w.SetScore(2, 5))
	w.SetFeedback("great pitch")

	ev, err := w.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 15.0, ev.TotalScore)

	require.Len(t, store.submitted, 1)
	input := store.submitted[0]
	require.Equal(t, 10, input.TeamID)
	require.Equal(t, 1, input.RoundID)
	require.Equal(t, 1, input.EvaluatorID)
	require.Equal(t, intPtr(3), input.ProblemStatementID)
	require.Equal(t, "great pitch", input.Feedback)
	require.Equal(t, input.Scores.Total(), input.TotalScore)

	require.Equal(t, StepTeam, w.Step())
	require.False(t, w.Editing())
	require.Empty(t, w.Scores())
}

func TestResubmitOverwritesSameRecord(t *testing.T) {
	store := &fakeStore{}
	w := New(adminSession(), testDirectory(), store)

	advanceToScoreStep(t, w)
	require.NoError(t, w.SetScore(1, 6))
	first, err := w.Submit(context.Background())
	require.NoError(t, err)

	// Same triple again: the baseline loads and the submit keeps the id.
	require.NoError(t, w.SelectTeam(context.Background(), 10))
	require.NoError(t, w.SelectRound(context.Background(), 1))
	require.True(t, w.Editing())
	require.NoError(t, w.SetScore(1, 9))
	second, err := w.Submit(context.Background())
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 9.0, second.TotalScore)
}

func TestBackDiscardsAbandonedState(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})
	advanceToScoreStep(t, w)
	require.NoError(t, w.SetScore(1, 7))

	require.NoError(t, w.Back())
	require.Equal(t, StepRound, w.Step())

	require.NoError(t, w.SelectRound(context.Background(), 1))
	require.Empty(t, w.Scores())
}

func TestBackAtFirstStep(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})
	require.ErrorIs(t, w.Back(), ErrWrongStep)
}

func TestDeleteRequiresExistingEvaluation(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})
	advanceToScoreStep(t, w)

	require.ErrorIs(t, w.RequestDelete(), ErrNoEvaluationHeld)
}

func TestDeleteIsTwoPhase(t *testing.T) {
	store := &fakeStore{existing: &models.Evaluation{
		ID: 7, TeamID: 10, RoundID: 1, EvaluatorID: 1, Scores: models.ScoreMap{1: 8},
	}}
	w := New(adminSession(), testDirectory(), store)
	advanceToScoreStep(t, w)

	require.ErrorIs(t, w.ConfirmDelete(context.Background()), ErrDeleteNotRequested)
	require.Empty(t, store.deletedIDs)

	require.NoError(t, w.RequestDelete())
	w.CancelDelete()
	require.ErrorIs(t, w.ConfirmDelete(context.Background()), ErrDeleteNotRequested)

	require.NoError(t, w.RequestDelete())
	require.NoError(t, w.ConfirmDelete(context.Background()))
	require.Equal(t, []int{7}, store.deletedIDs)
	require.Equal(t, StepTeam, w.Step())
}

func TestWrongStepGuards(t *testing.T) {
	w := New(adminSession(), testDirectory(), &fakeStore{})

	require.ErrorIs(t, w.SelectTeam(context.Background(), 10), ErrWrongStep)
	require.ErrorIs(t, w.SelectRound(context.Background(), 1), ErrWrongStep)
	require.ErrorIs(t, w.SetScore(1, 5), ErrWrongStep)
	_, err := w.Submit(context.Background())
	require.ErrorIs(t, err, ErrWrongStep)
	require.ErrorIs(t, w.RequestDelete(), ErrWrongStep)
}
