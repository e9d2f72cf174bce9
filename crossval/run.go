// Package crossval runs k-fold cross-validation of the naive Bayes
// party classifier: shuffle the record store once, cut it into k folds,
// then train a fresh model per round on k-1 folds and score it against
// the held-out one.
package crossval

import (
	"math/rand"

	"github.com/frostblooded/party-recogniser-naive-bayes/errors"
	"github.com/frostblooded/party-recogniser-naive-bayes/naivebayes"
	"github.com/frostblooded/party-recogniser-naive-bayes/votes"
)

// DefaultFolds matches the original ten-round experiment.
const DefaultFolds = 10

// Result holds the outcome of one cross-validation run: per-round
// accuracies in fold order, their mean, and the confusion counts summed
// over all rounds. Every input record lands in Confusion exactly once,
// since each is held out in exactly one round.
type Result struct {
	Accuracies []float64
	Mean       float64
	Confusion  naivebayes.Confusion
}

// Run cross-validates on records with the given fold count. The fold
// partition is computed once and reused for every round. Each round
// trains on all folds but one, so models never see their test records.
func Run(records []votes.Record, folds int, rng *rand.Rand) (Result, error) {
	split, err := Split(records, folds, rng)
	if err != nil {
		return Result{}, err
	}

	res := Result{Accuracies: make([]float64, 0, folds)}
	for held := range split {
		training := make([]votes.Record, 0, len(records)-len(split[held]))
		for f, fold := range split {
			if f != held {
				training = append(training, fold...)
			}
		}

		model, err := naivebayes.Train(training)
		if err != nil {
			return Result{}, errors.Wrapf(err, "fold %d", held)
		}

		confusion := model.Test(split[held])
		res.Confusion.Add(confusion)

		acc := confusion.Accuracy()
		res.Accuracies = append(res.Accuracies, acc)
		res.Mean += acc / float64(folds)
	}
	return res, nil
}
