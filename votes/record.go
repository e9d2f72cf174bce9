package votes

import (
	"strings"

	"github.com/frostblooded/party-recogniser-naive-bayes/errors"
)

// Defaults for the UCI congressional voting records dataset.
const (
	// DefaultDataPath is the conventional filename of the dataset.
	DefaultDataPath = "house-votes-84.data"
	// DefaultAttributeCount is the number of roll calls per record.
	DefaultAttributeCount = 16
)

// Record is one labeled observation: a party and its positions on a
// fixed number of roll calls. Records are treated as immutable once
// parsed; the slice is never modified by this package or its consumers.
type Record struct {
	Party Party
	Votes []Vote
}

// ParseRecord parses one comma-delimited dataset line into a Record.
// The first field is the class token, the next attributes fields are
// vote tokens; surplus trailing fields are ignored. A line with too few
// fields or an unrecognized class token is an error.
func ParseRecord(line string, attributes int) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) < attributes+1 {
		return Record{}, errors.Errorf("expected %d fields, got %d", attributes+1, len(fields))
	}

	party, err := PartyFromToken(fields[0])
	if err != nil {
		return Record{}, err
	}

	vs := make([]Vote, attributes)
	for i, tok := range fields[1 : attributes+1] {
		vs[i] = VoteFromToken(tok)
	}
	return Record{Party: party, Votes: vs}, nil
}
