package naivebayes

import (
	"github.com/frostblooded/party-recogniser-naive-bayes/errors"
	"github.com/frostblooded/party-recogniser-naive-bayes/votes"
)

// Confusion tallies classifications by labeled and predicted party.
type Confusion struct {
	// Counts[actual][predicted] is the number of test records labeled
	// actual that the model classified as predicted.
	Counts [votes.NumParties][votes.NumParties]int
}

// Add accumulates another tally into c, for summing across folds.
func (c *Confusion) Add(other Confusion) {
	for a := range c.Counts {
		for p := range c.Counts[a] {
			c.Counts[a][p] += other.Counts[a][p]
		}
	}
}

// Total returns the number of classifications tallied.
func (c Confusion) Total() int {
	var n int
	for a := range c.Counts {
		for p := range c.Counts[a] {
			n += c.Counts[a][p]
		}
	}
	return n
}

// Correct returns the number of classifications on the diagonal.
func (c Confusion) Correct() int {
	var n int
	for a := range c.Counts {
		n += c.Counts[a][a]
	}
	return n
}

// Accuracy returns Correct/Total, or 0 for an empty tally.
func (c Confusion) Accuracy() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Correct()) / float64(total)
}

// Test classifies every record and returns the confusion tallies.
func (m *Model) Test(test []votes.Record) Confusion {
	var c Confusion
	for _, r := range test {
		c.Counts[r.Party][m.Predict(r)]++
	}
	return c
}

// Evaluate returns the fraction of records in [0,1] whose predicted
// party matches the label. Evaluating an empty set is an error: the
// accuracy would be 0/0, and a silent NaN must never escape.
func (m *Model) Evaluate(test []votes.Record) (float64, error) {
	if len(test) == 0 {
		return 0, errors.Errorf("cannot evaluate on an empty record set")
	}
	return m.Test(test).Accuracy(), nil
}
