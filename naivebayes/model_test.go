package naivebayes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostblooded/party-recogniser-naive-bayes/votes"
)

// two records, two roll calls: the smallest training set with signal
var tinyTraining = []votes.Record{
	{Party: votes.Republican, Votes: []votes.Vote{votes.Yes, votes.No}},
	{Party: votes.Democrat, Votes: []votes.Vote{votes.No, votes.Yes}},
}

// Train on {(republican, [y n]), (democrat, [n y])}. With two records
// the increment is 1/2, so each prior is 0.5, an observed cell is
// 0.5 (floor) + 0.5 (count) = 1.0, and an unobserved cell stays at the
// 0.5 floor. All of these are exact binary fractions.
func TestTrainTinyScenario(t *testing.T) {
	m, err := Train(tinyTraining)
	if err != nil {
		t.Fatal(err)
	}

	if m.Priors[votes.Republican] != 0.5 || m.Priors[votes.Democrat] != 0.5 {
		t.Errorf("expected priors 0.5/0.5, got %v", m.Priors)
	}

	if got := m.Likelihoods[votes.Republican][0][votes.Yes]; got != 1.0 {
		t.Errorf("expected observed likelihood 1.0, got %f", got)
	}
	if got := m.Likelihoods[votes.Republican][0][votes.No]; got != 0.5 {
		t.Errorf("expected floor likelihood 0.5, got %f", got)
	}
	if got := m.Likelihoods[votes.Republican][0][votes.Unknown]; got != 0.5 {
		t.Errorf("expected floor likelihood 0.5, got %f", got)
	}
	if got := m.Likelihoods[votes.Democrat][1][votes.Yes]; got != 1.0 {
		t.Errorf("expected observed likelihood 1.0, got %f", got)
	}
}

// The likelihood denominator is the full training-set size, not the
// per-party subset size. With two republican records and one democrat,
// democrat cells still move in steps of 1/3.
func TestTrainSharedDenominator(t *testing.T) {
	m, err := Train([]votes.Record{
		{Party: votes.Republican, Votes: []votes.Vote{votes.Yes}},
		{Party: votes.Republican, Votes: []votes.Vote{votes.Yes}},
		{Party: votes.Democrat, Votes: []votes.Vote{votes.No}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(m.Priors[votes.Republican]-2.0/3.0) > 1e-12 {
		t.Errorf("expected republican prior 2/3, got %f", m.Priors[votes.Republican])
	}
	// floor 1/3 plus one observation worth 1/3, not (1+1)/1
	if math.Abs(m.Likelihoods[votes.Democrat][0][votes.No]-2.0/3.0) > 1e-12 {
		t.Errorf("expected democrat likelihood 2/3, got %f", m.Likelihoods[votes.Democrat][0][votes.No])
	}
	if got := m.Likelihoods[votes.Republican][0][votes.Yes]; got != 1.0 {
		t.Errorf("expected republican likelihood 1/3+2/3 = 1.0, got %f", got)
	}
}

func TestTrainNoZeroLikelihoods(t *testing.T) {
	// no record contains Unknown, yet every Unknown cell must stay positive
	m, err := Train(tinyTraining)
	require.NoError(t, err)

	for p := range m.Likelihoods {
		for i := range m.Likelihoods[p] {
			for v := range m.Likelihoods[p][i] {
				assert.Greater(t, m.Likelihoods[p][i][v], 0.0,
					"likelihood for party %d, roll call %d, vote %d", p, i, v)
			}
		}
	}
}

func TestTrainEmpty(t *testing.T) {
	_, err := Train(nil)
	assert.Error(t, err)
	_, err = Train([]votes.Record{})
	assert.Error(t, err)
}

func TestTrainRaggedRecords(t *testing.T) {
	_, err := Train([]votes.Record{
		{Party: votes.Republican, Votes: []votes.Vote{votes.Yes, votes.No}},
		{Party: votes.Democrat, Votes: []votes.Vote{votes.No}},
	})
	assert.Error(t, err)
}

func TestPredictTinyScenario(t *testing.T) {
	m, err := Train(tinyTraining)
	require.NoError(t, err)

	republican := votes.Record{Party: votes.Republican, Votes: []votes.Vote{votes.Yes, votes.No}}
	democrat := votes.Record{Party: votes.Democrat, Votes: []votes.Vote{votes.No, votes.Yes}}

	assert.Equal(t, votes.Republican, m.Predict(republican))
	assert.Equal(t, votes.Democrat, m.Predict(democrat))

	// the republican pattern must strictly outscore democrat on its own record
	assert.Greater(t,
		m.LogScore(republican, votes.Republican),
		m.LogScore(republican, votes.Democrat))
}

// With perfectly symmetric training data both parties score the same on
// a symmetric record; the strict comparison keeps the lowest ordinal.
func TestPredictTieBreak(t *testing.T) {
	m, err := Train([]votes.Record{
		{Party: votes.Republican, Votes: []votes.Vote{votes.Yes}},
		{Party: votes.Democrat, Votes: []votes.Vote{votes.Yes}},
	})
	require.NoError(t, err)

	r := votes.Record{Party: votes.Democrat, Votes: []votes.Vote{votes.Yes}}
	require.Equal(t, m.LogScore(r, votes.Republican), m.LogScore(r, votes.Democrat))
	assert.Equal(t, votes.Republican, m.Predict(r))
}

func TestLogScoreWrongLength(t *testing.T) {
	m, err := Train(tinyTraining)
	require.NoError(t, err)

	assert.Panics(t, func() {
		m.LogScore(votes.Record{Party: votes.Republican, Votes: []votes.Vote{votes.Yes}}, votes.Republican)
	})
}

// Fitting the same training set twice must produce identical tables and
// identical predictions: there is no hidden randomness in the model.
func TestTrainDeterministic(t *testing.T) {
	m1, err := Train(tinyTraining)
	require.NoError(t, err)
	m2, err := Train(tinyTraining)
	require.NoError(t, err)

	require.Equal(t, m1, m2)

	acc1, err := m1.Evaluate(tinyTraining)
	require.NoError(t, err)
	acc2, err := m2.Evaluate(tinyTraining)
	require.NoError(t, err)
	assert.Equal(t, acc1, acc2)
}
