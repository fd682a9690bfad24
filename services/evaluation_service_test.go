package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/repositories"
)

type fakeEvaluationRepo struct {
	byID      map[int]*models.Evaluation
	upserted  []*models.Evaluation
	updated   bool
	deletedID int
	deleteN   int64
}

func (r *fakeEvaluationRepo) List(ctx context.Context) ([]models.Evaluation, error) {
	var out []models.Evaluation
	for _, ev := range r.byID {
		out = append(out, *ev)
	}
	return out, nil
}

func (r *fakeEvaluationRepo) GetByID(ctx context.Context, id int) (*models.Evaluation, error) {
	if ev, ok := r.byID[id]; ok {
		return ev, nil
	}
	return nil, repositories.ErrEvaluationNotFound
}

func (r *fakeEvaluationRepo) GetByTriple(ctx context.Context, teamID, roundID, evaluatorID int) (*models.Evaluation, error) {
	for _, ev := range r.byID {
		if ev.TeamID == teamID && ev.RoundID == roundID && ev.EvaluatorID == evaluatorID {
			return ev, nil
		}
	}
	return nil, repositories.ErrEvaluationNotFound
}

func (r *fakeEvaluationRepo) Create(ctx context.Context, evaluation *models.Evaluation) error {
	return nil
}

func (r *fakeEvaluationRepo) Update(ctx context.Context, id int, scores models.ScoreMap, feedback string, totalScore float64) error {
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrEvaluationNotFound
	}
	r.byID[id].Scores = scores
	r.byID[id].Feedback = feedback
	r.byID[id].TotalScore = totalScore
	r.updated = true
	return nil
}

func (r *fakeEvaluationRepo) Upsert(ctx context.Context, evaluation *models.Evaluation) error {
	evaluation.ID = len(r.upserted) + 1
	r.upserted = append(r.upserted, evaluation)
	return nil
}

func (r *fakeEvaluationRepo) Delete(ctx context.Context, id int) (int64, error) {
	r.deletedID = id
	return r.deleteN, nil
}

type fakeParameterRepo struct {
	params []models.Parameter
}

func (r *fakeParameterRepo) List(ctx context.Context, roundID *int) ([]models.Parameter, error) {
	if roundID == nil {
		return r.params, nil
	}
	var out []models.Parameter
	for _, p := range r.params {
		if p.RoundID == *roundID {
			out = append(out, p)
		}
	}
	return out, nil
}

type countingNotifier struct {
	calls int
}

func (n *countingNotifier) EvaluationsChanged() { n.calls++ }

func round1Params() *fakeParameterRepo {
	return &fakeParameterRepo{params: []models.Parameter{
		{ID: 1, RoundID: 1, Name: "Innovation", MaxScore: 10},
		{ID: 2, RoundID: 1, Name: "Feasibility", MaxScore: 5},
		{ID: 3, RoundID: 1, Name: "Technical Depth", MaxScore: 10},
		{ID: 4, RoundID: 1, Name: "Presentation", MaxScore: 5},
	}}
}

func TestSubmitRecomputesTotal(t *testing.T) {
	repo := &fakeEvaluationRepo{byID: map[int]*models.Evaluation{}}
	notifier := &countingNotifier{}
	svc := NewEvaluationService(repo, round1Params(), notifier)

	ev, err := svc.Submit(context.Background(), SubmitEvaluationInput{
		TeamID:      1,
		RoundID:     1,
		EvaluatorID: 1,
		Scores:      models.ScoreMap{1: 10, 2: 5, 3: 10, 4: 5},
		Feedback:    "  clean build  ",
		// A lying client total must not survive.
		TotalScore: 99,
	})
	require.NoError(t, err)
	require.Equal(t, 30.0, ev.TotalScore)
	require.Equal(t, "clean build", ev.Feedback)
	require.Len(t, repo.upserted, 1)
	require.Equal(t, 1, notifier.calls)
}

func TestSubmitRejectsUnknownParameter(t *testing.T) {
	repo := &fakeEvaluationRepo{byID: map[int]*models.Evaluation{}}
	svc := NewEvaluationService(repo, round1Params(), nil)

	_, err := svc.Submit(context.Background(), SubmitEvaluationInput{
		TeamID: 1, RoundID: 1, EvaluatorID: 1,
		Scores: models.ScoreMap{99: 3},
	})
	require.ErrorIs(t, err, ErrParameterUnknown)
	require.Empty(t, repo.upserted)
}

func TestSubmitRejectsScoreOutOfRange(t *testing.T) {
	repo := &fakeEvaluationRepo{byID: map[int]*models.Evaluation{}}
	svc := NewEvaluationService(repo, round1Params(), nil)

	_, err := svc.Submit(context.Background(), SubmitEvaluationInput{
		TeamID: 1, RoundID: 1, EvaluatorID: 1,
		Scores: models.ScoreMap{2: 6},
	})
	require.ErrorIs(t, err, ErrScoreOutOfRange)

	_, err = svc.Submit(context.Background(), SubmitEvaluationInput{
		TeamID: 1, RoundID: 1, EvaluatorID: 1,
		Scores: models.ScoreMap{2: -0.5},
	})
	require.ErrorIs(t, err, ErrScoreOutOfRange)
}

func TestSubmitNilScoresStoresEmptyMap(t *testing.T) {
	repo := &fakeEvaluationRepo{byID: map[int]*models.Evaluation{}}
	svc := NewEvaluationService(repo, round1Params(), nil)

	ev, err := svc.Submit(context.Background(), SubmitEvaluationInput{
		TeamID: 1, RoundID: 1, EvaluatorID: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, ev.Scores)
	require.Zero(t, ev.TotalScore)
}

func TestUpdateValidatesAgainstExistingRound(t *testing.T) {
	repo := &fakeEvaluationRepo{byID: map[int]*models.Evaluation{
		7: {ID: 7, TeamID: 1, RoundID: 1, EvaluatorID: 1, Scores: models.ScoreMap{1: 4}},
	}}
	notifier := &countingNotifier{}
	svc := NewEvaluationService(repo, round1Params(), notifier)

	err := svc.Update(context.Background(), 7, UpdateEvaluationInput{
		Scores: models.ScoreMap{1: 9, 2: 3},
	})
	require.NoError(t, err)
	require.True(t, repo.updated)
	require.Equal(t, 12.0, repo.byID[7].TotalScore)
	require.Equal(t, 1, notifier.calls)

	err = svc.Update(context.Background(), 7, UpdateEvaluationInput{
		Scores: models.ScoreMap{99: 1},
	})
	require.ErrorIs(t, err, ErrParameterUnknown)
}

func TestUpdateMissingEvaluation(t *testing.T) {
	repo := &fakeEvaluationRepo{byID: map[int]*models.Evaluation{}}
	svc := NewEvaluationService(repo, round1Params(), nil)

	err := svc.Update(context.Background(), 404, UpdateEvaluationInput{})
	require.ErrorIs(t, err, ErrEvaluationNotFound)
}

func TestDeleteDistinguishesNotFound(t *testing.T) {
	repo := &fakeEvaluationRepo{byID: map[int]*models.Evaluation{}, deleteN: 0}
	notifier := &countingNotifier{}
	svc := NewEvaluationService(repo, round1Params(), notifier)

	err := svc.Delete(context.Background(), 999999)
	require.ErrorIs(t, err, ErrEvaluationNotFound)
	require.Zero(t, notifier.calls)

	repo.deleteN = 1
	require.NoError(t, svc.Delete(context.Background(), 7))
	require.Equal(t, 7, repo.deletedID)
	require.Equal(t, 1, notifier.calls)
}
