package votes

import (
	"strings"

	"github.com/dgryski/go-spooky"
)

// DatasetType names one shard of a deterministic dataset split.
type DatasetType string

const (
	// TrainDataset holds the records a model is fitted on.
	TrainDataset = DatasetType("train")

	// ValidateDataset holds records reserved for tuning.
	ValidateDataset = DatasetType("validate")

	// TestDataset holds the held-out records used for final evaluation.
	TestDataset = DatasetType("test")
)

// DatasetOptions configures a percentage-based train/validate/test
// split. Assignment is by content hash, so the same record lands in the
// same shard on every run with the same seed regardless of input order.
type DatasetOptions struct {
	Train    int
	Validate int
	Test     int
	Seed     uint64
}

// NewDatasetOptions builds DatasetOptions from shard percentages and a seed.
func NewDatasetOptions(train, validate, test int, seed uint64) DatasetOptions {
	return DatasetOptions{
		Train:    train,
		Validate: validate,
		Test:     test,
		Seed:     seed,
	}
}

// CheckValid reports whether the percentages are non-negative and sum
// to 100.
func (d DatasetOptions) CheckValid() bool {
	return d.Train >= 0 && d.Validate >= 0 && d.Test >= 0 &&
		d.Train+d.Validate+d.Test == 100
}

// shardKey serializes the record content that shard assignment hashes.
func shardKey(r Record) []byte {
	toks := make([]string, 0, len(r.Votes)+1)
	toks = append(toks, r.Party.Name())
	for _, v := range r.Votes {
		toks = append(toks, v.Name())
	}
	return []byte(strings.Join(toks, ","))
}

// ShardRecord assigns r to a shard by content hash. Panics if opts is
// not valid.
func ShardRecord(r Record, opts DatasetOptions) DatasetType {
	if !opts.CheckValid() {
		panic("invalid DatasetOptions: percentages must be non-negative and sum to 100")
	}
	shard := int(spooky.Hash64Seed(shardKey(r), opts.Seed) % 100)
	if shard < opts.Train {
		return TrainDataset
	} else if shard < opts.Train+opts.Validate {
		return ValidateDataset
	}
	return TestDataset
}

// ShardSplit partitions records into train/validate/test shards using
// ShardRecord. Shards may be empty when the percentages or the dataset
// are small; callers that need non-empty shards must check.
func ShardSplit(records []Record, opts DatasetOptions) (train, validate, test []Record) {
	for _, r := range records {
		switch ShardRecord(r, opts) {
		case TrainDataset:
			train = append(train, r)
		case ValidateDataset:
			validate = append(validate, r)
		default:
			test = append(test, r)
		}
	}
	return train, validate, test
}
