// Package naivebayes fits and applies a categorical naive Bayes
// classifier over voting records. Probabilities live in dense arrays
// indexed by party and vote ordinals, so every (party, roll call, vote)
// combination has an entry by construction; scoring runs in the log10
// domain to avoid underflow when multiplying many small likelihoods.
package naivebayes

import (
	"math"

	"github.com/frostblooded/party-recogniser-naive-bayes/errors"
	"github.com/frostblooded/party-recogniser-naive-bayes/votes"
)

// Model holds the probability estimates fitted from one training set.
// A Model is read-only after Train; build a fresh one per training set.
type Model struct {
	// Priors[p] estimates the probability of party p, unsmoothed.
	Priors [votes.NumParties]float64
	// Likelihoods[p][i][v] estimates the probability of vote v at roll
	// call i given party p. Every entry is strictly positive: cells
	// start at the smoothing floor 1/|training| before counting, so a
	// combination never seen in training still scores.
	Likelihoods [votes.NumParties][][votes.NumVotes]float64
	// Attributes is the number of roll calls per record.
	Attributes int
}

// Train fits a Model on the given records. All estimates share the
// full training-set size as denominator, including the per-party vote
// likelihoods, so a party's likelihood row does not sum to 1. Scores
// depend on this; see Model for the smoothing floor.
func Train(training []votes.Record) (*Model, error) {
	if len(training) == 0 {
		return nil, errors.Errorf("cannot train on an empty record set")
	}

	attrs := len(training[0].Votes)
	inc := 1 / float64(len(training))

	m := &Model{Attributes: attrs}
	for p := range m.Likelihoods {
		m.Likelihoods[p] = make([][votes.NumVotes]float64, attrs)
		for i := range m.Likelihoods[p] {
			for v := range m.Likelihoods[p][i] {
				m.Likelihoods[p][i][v] = inc
			}
		}
	}

	for n, r := range training {
		if len(r.Votes) != attrs {
			return nil, errors.Errorf("record %d has %d votes, want %d", n, len(r.Votes), attrs)
		}
		m.Priors[r.Party] += inc
		for i, v := range r.Votes {
			m.Likelihoods[r.Party][i][v] += inc
		}
	}
	return m, nil
}

// LogScore returns log10 p(party) + sum_i log10 p(vote_i|party), the
// log-domain score of the record under the given party. Scores are
// only comparable across parties for the same record.
func (m *Model) LogScore(r votes.Record, p votes.Party) float64 {
	if len(r.Votes) != m.Attributes {
		panic("record has incorrect number of votes for this model")
	}
	score := math.Log10(m.Priors[p])
	for i, v := range r.Votes {
		score += math.Log10(m.Likelihoods[p][i][v])
	}
	return score
}

// Predict returns the party with the greatest score for the record.
// Parties are compared in ordinal order with a strict greater-than, so
// an exact tie resolves to the lowest ordinal (Republican).
func (m *Model) Predict(r votes.Record) votes.Party {
	best := votes.Party(0)
	bestScore := m.LogScore(r, best)
	for p := best + 1; p < votes.NumParties; p++ {
		if score := m.LogScore(r, p); score > bestScore {
			best, bestScore = p, score
		}
	}
	return best
}
