package ndp

import (
	"bufio"
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Problem is the result of parsing a Purdom-Sabry DIMACS file: the clause
// set in the fixed-width encoding Clause uses, plus the header metadata
// needed to decode a satisfying assignment back into factors.
type Problem struct {
	Clauses     ClauseSet
	InputNumber *big.Int
	NumVars     int
	NumClauses  int
	NumBits     int
	V1, V2      []int
}

var (
	reProduct  = regexp.MustCompile(`Circuit for product = ([0-9]+) \[`)
	reProblem  = regexp.MustCompile(`p cnf ([0-9]+) ([0-9]+)`)
	reFirstIn  = regexp.MustCompile(`Variables for first input \[msb,\.\.\.,lsb\]: \[(.*?)\]`)
	reSecondIn = regexp.MustCompile(`Variables for second input \[msb,\.\.\.,lsb\]: \[(.*?)\]`)
)

// ParseDIMACS parses a Purdom-Sabry DIMACS CNF file.
//
// Lines beginning with 'c', 'p', or empty lines are ignored for clause
// extraction. A lone "%" trailer line, a DIMACS convention some generators
// emit as an end-of-file marker, ends clause extraction: lines after it are
// not read as clauses. A clause line is a
// whitespace-separated list of nonzero integers terminated by 0. Clauses of
// arity 1 become {0, 0, x}; clauses of arity 3 become {x, y, z}; every other
// arity is logged at debug level and dropped.
//
// Header metadata (input_number, num_vars, num_clauses, v1, v2, num_bits) is
// extracted by regex from comment text anywhere in the file, not just the
// preamble.
func ParseDIMACS(r io.Reader) (*Problem, error) {
	text, err := readAll(r)
	if err != nil {
		return nil, wrapf(err, "ndp: reading DIMACS input")
	}
	if len(strings.TrimSpace(text)) == 0 {
		return nil, ErrEmptyInput
	}

	clauses, err := parseClauses(text)
	if err != nil {
		return nil, err
	}
	if len(clauses) == 0 {
		return nil, ErrEmptyClauseSet
	}

	m := reProduct.FindStringSubmatch(text)
	if m == nil {
		return nil, ErrMissingProductLine
	}
	inputNumber, ok := new(big.Int).SetString(m[1], 10)
	if !ok {
		return nil, wrapf(ErrMissingProductLine, "malformed product value %q", m[1])
	}

	pm := reProblem.FindStringSubmatch(text)
	if pm == nil {
		return nil, ErrMissingProblemLine
	}
	numVars, err := strconv.Atoi(pm[1])
	if err != nil {
		return nil, wrapf(err, "ndp: malformed num_vars in problem line")
	}
	numClauses, err := strconv.Atoi(pm[2])
	if err != nil {
		return nil, wrapf(err, "ndp: malformed num_clauses in problem line")
	}

	v1 := extractVarList(text, reFirstIn)
	v2 := extractVarList(text, reSecondIn)
	numBits := 0
	if len(v2) > 0 {
		numBits = v2[len(v2)-1]
	}

	return &Problem{
		Clauses:     clauses,
		InputNumber: inputNumber,
		NumVars:     numVars,
		NumClauses:  numClauses,
		NumBits:     numBits,
		V1:          v1,
		V2:          v2,
	}, nil
}

func extractVarList(text string, re *regexp.Regexp) []int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		logrus.WithField("pattern", re.String()).Warn("ndp: DIMACS header is missing an input-variable list; factor decoding will return zero for it")
		return nil
	}
	fields := strings.Split(m[1], ",")
	vars := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			logrus.WithError(err).WithField("field", f).Warn("ndp: skipping malformed entry in input-variable list")
			continue
		}
		vars = append(vars, n)
	}
	return vars
}

func parseClauses(text string) (ClauseSet, error) {
	var clauses ClauseSet
	s := bufio.NewScanner(strings.NewReader(text))
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' || line[0] == 'p' {
			continue
		}
		if strings.TrimSpace(line) == "%" {
			break
		}
		lits, err := parseLiteralLine(line)
		if err != nil {
			return nil, wrapf(err, "ndp: line %d", lineNo)
		}
		if lits == nil {
			continue
		}
		switch len(lits) {
		case 1:
			clauses = append(clauses, Clause{L: [3]int{0, 0, lits[0]}})
		case 3:
			clauses = append(clauses, Clause{L: [3]int{lits[0], lits[1], lits[2]}})
		default:
			logrus.WithFields(logrus.Fields{
				"line":  lineNo,
				"arity": len(lits),
			}).Debug("ndp: dropping clause of unrecognized arity")
		}
	}
	if err := s.Err(); err != nil {
		return nil, wrapf(err, "ndp: scanning DIMACS input")
	}
	return clauses, nil
}

// parseLiteralLine returns the literals of a single clause line up to but
// not including its terminating 0, or nil if the line has no literals at all
// (e.g. it is blank after trimming).
func parseLiteralLine(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	var lits []int
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, wrapf(err, "invalid literal %q", f)
		}
		if n == 0 {
			break
		}
		lits = append(lits, n)
	}
	return lits, nil
}

func readAll(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
		}
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}
