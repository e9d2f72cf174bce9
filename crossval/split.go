package crossval

import (
	"math/rand"

	"github.com/frostblooded/party-recogniser-naive-bayes/errors"
	"github.com/frostblooded/party-recogniser-naive-bayes/votes"
)

// Split partitions records into k disjoint folds for cross-validation.
// The records are shuffled with the caller's rng (inject a fixed seed
// for reproducible folds), so fold contents vary run to run but their
// union is always exactly the input: fold sizes differ by at most one.
// The input slice is left untouched.
func Split(records []votes.Record, k int, rng *rand.Rand) ([][]votes.Record, error) {
	if err := validate(records, k, rng); err != nil {
		return nil, err
	}

	shuffled := make([]votes.Record, len(records))
	copy(shuffled, records)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return partition(shuffled, k), nil
}

// partition cuts an already-ordered sequence into k folds: k contiguous
// chunks of len/k records, then the len%k leftover tail records handed
// out one each to the leading folds.
func partition(ordered []votes.Record, k int) [][]votes.Record {
	base := len(ordered) / k
	remainder := len(ordered) % k

	folds := make([][]votes.Record, k)
	for f := range folds {
		start := f * base
		// cap the chunk so the remainder append below reallocates
		// instead of writing into the next chunk
		folds[f] = ordered[start : start+base : start+base]
	}
	for i := 0; i < remainder; i++ {
		folds[i] = append(folds[i], ordered[k*base+i])
	}
	return folds
}

// validate reports every configuration problem at once. Empty folds are
// rejected outright: k > len(records) would leave some fold with no
// records and a later evaluation dividing by zero.
func validate(records []votes.Record, k int, rng *rand.Rand) error {
	var errs errors.Errors
	if len(records) == 0 {
		errs = errors.Append(errs, errors.Errorf("record store is empty"))
	}
	if k <= 0 {
		errs = errors.Append(errs, errors.Errorf("fold count must be positive, got %d", k))
	} else if len(records) > 0 && k > len(records) {
		errs = errors.Append(errs, errors.Errorf("fold count %d exceeds record count %d", k, len(records)))
	}
	if rng == nil {
		errs = errors.Append(errs, errors.Errorf("random source is nil"))
	}
	if errs != nil {
		return errs
	}
	return nil
}
