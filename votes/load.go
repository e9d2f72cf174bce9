package votes

import (
	"bufio"
	"os"

	"github.com/frostblooded/party-recogniser-naive-bayes/errors"
)

// Load reads a comma-delimited voting-record dataset from path, one
// record per line with the given number of attribute fields. The whole
// file is parsed or the load fails: a malformed line aborts with its
// line number rather than producing a partial record store.
func Load(path string, attributes int) (records []Record, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer errors.Defer(&err, file.Close)

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		r, err := ParseRecord(scanner.Text(), attributes)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, line)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("no records in %s", path)
	}
	return records, nil
}
