package votes

import "fmt"

// Party is an identifier for a class label in the voting-record dataset.
type Party int

// The class labels identified by Party. Republican is first so that
// score ties between the two parties resolve to it deterministically.
const (
	Republican Party = iota
	Democrat
)

// NumParties is the number of distinct class labels. Probability tables
// are dense arrays of this size indexed by Party.
const NumParties = 2

// Name returns the dataset token for this party ("republican", "democrat").
func (p Party) Name() string {
	switch p {
	case Republican:
		return "republican"
	case Democrat:
		return "democrat"
	default:
		return "invalid"
	}
}

// PartyFromToken maps a raw class token to a Party. Unlike attribute
// tokens there is no fallback: a token that names no known party is a
// fatal parse error.
func PartyFromToken(tok string) (Party, error) {
	switch tok {
	case "republican":
		return Republican, nil
	case "democrat":
		return Democrat, nil
	default:
		return 0, fmt.Errorf("unrecognized class token %q", tok)
	}
}

// Vote is a single recorded position on one roll call.
type Vote int

// The positions identified by Vote. Unknown is a category in its own
// right, not a missing-data marker: undisclosed positions carry signal
// and are counted like any other value.
const (
	Yes Vote = iota
	No
	Unknown
)

// NumVotes is the number of distinct vote values. Probability tables
// are dense arrays of this size indexed by Vote.
const NumVotes = 3

// Name returns the dataset token for this vote ("y", "n", "?").
func (v Vote) Name() string {
	switch v {
	case Yes:
		return "y"
	case No:
		return "n"
	default:
		return "?"
	}
}

// VoteFromToken maps a raw attribute token to a Vote. Anything that is
// not "y" or "n" becomes Unknown; the dataset marks undisclosed
// positions with "?" but any unrecognized token folds into the same
// category.
func VoteFromToken(tok string) Vote {
	switch tok {
	case "y":
		return Yes
	case "n":
		return No
	default:
		return Unknown
	}
}
