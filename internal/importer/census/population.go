package census

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var errNotAPopulation = errors.New("not a population count")

// populationPattern accepts a head count with '.' or ',' thousands groups and an optional zero
// decimal part left over from spreadsheet exports: "82.227", "82,227", "1.000,00", "900.0".
var populationPattern = regexp.MustCompile(`^(\d{1,3}(?:[.,]\d{3})+|\d+)(?:[.,]0{1,2})?$`)

func parsePopulation(s string) (int, error) {
	clean := strings.NewReplacer(" ", "", " ", "").Replace(s)

	m := populationPattern.FindStringSubmatch(clean)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", errNotAPopulation, s)
	}

	n, err := strconv.Atoi(strings.NewReplacer(".", "", ",", "").Replace(m[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotAPopulation, s)
	}

	return n, nil
}
