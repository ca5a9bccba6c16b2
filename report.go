package ndp

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Version is the engine version string embedded in every report, kept as a
// package variable so cmd/ndp (or a test) can override it without a build
// flag.
var Version = "ndp-1.0.0"

// RunStats carries the timing and sizing figures a report needs, gathered
// by cmd/ndp around the calls to Expand and Solve.
type RunStats struct {
	InputFile       string
	InputNumber     *big.Int
	NumBits         int
	NumVars         int
	NumClauses      int
	TotalCores      int
	UsableCores     int
	Threads         int
	QueueSize       int
	Depth           int
	Tasks           int
	BFSDuration     time.Duration
	DFSDuration     time.Duration
	Result          Result
	Fact1, Fact2    *big.Int
	ReserveCores    int
	Flag            string
}

// Report renders the human-readable plain-text result report: the factors
// (or "Prime!"), a timing breakdown with percentages and human-readable
// durations, core counts, frontier size, depth, task count, a UTC
// timestamp, the 16-hex problem ID, and the version string.
func Report(s RunStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n        Bits: %d", s.NumBits)
	fmt.Fprintf(&b, "\n        VARs: %d", s.NumVars)
	fmt.Fprintf(&b, "\n     Clauses: %d", s.NumClauses)
	fmt.Fprintf(&b, "\n\nInput Number: %s\n", s.InputNumber.String())

	if s.Result.Satisfiable {
		fmt.Fprintf(&b, "      FACT 1: %s\n", s.Fact1.String())
		fmt.Fprintf(&b, "      FACT 2: %s\n", s.Fact2.String())
		product := new(big.Int).Mul(s.Fact1, s.Fact2)
		if product.Cmp(s.InputNumber) == 0 {
			b.WriteString("              verified.\n")
		} else {
			b.WriteString("              FALSE\n")
		}
	} else {
		b.WriteString("              Prime!\n\n")
	}

	total := s.BFSDuration + s.DFSDuration
	utcTime := time.Now().UTC()
	problemID := ProblemID(s.InputNumber, s.NumBits, s.Threads, utcTime)

	tbl := tablewriter.NewWriter(&b)
	tbl.SetHeader([]string{"Metric", "Value"})
	tbl.SetAutoWrapText(false)
	tbl.SetBorder(false)
	tbl.Append([]string{"BFS time", fmt.Sprintf("%s (%s)", formatDuration(s.BFSDuration), formatPercentage(s.BFSDuration, total))})
	tbl.Append([]string{"DFS time", fmt.Sprintf("%s (%s)", formatDuration(s.DFSDuration), formatPercentage(s.DFSDuration, total))})
	tbl.Append([]string{"NDP time", formatDuration(total)})
	tbl.Append([]string{"Total Cores", strconv.Itoa(s.TotalCores)})
	tbl.Append([]string{"NDP Cores", strconv.Itoa(s.UsableCores)})
	tbl.Append([]string{"DFS Threads", strconv.Itoa(s.Threads)})
	tbl.Append([]string{"Queue Size", strconv.Itoa(s.QueueSize)})
	tbl.Append([]string{"Depth", strconv.Itoa(s.Depth)})
	tbl.Append([]string{"Tasks", strconv.Itoa(s.Tasks)})
	tbl.Append([]string{"Version", Version})
	tbl.Append([]string{"DIMACS", s.InputFile})
	tbl.Append([]string{"Zulu time", utcTime.Format("2006-01-02 15:04:05 UTC")})
	tbl.Append([]string{"Problem ID", problemID})
	tbl.Render()

	return b.String()
}

// formatDuration renders d as a human-readable breakdown of
// months/days/hours/minutes/seconds, omitting every zero unit except seconds.
func formatDuration(d time.Duration) string {
	seconds := d.Seconds()
	months := int(seconds / (60 * 60 * 24 * 30))
	seconds -= float64(months) * 60 * 60 * 24 * 30
	days := int(seconds / (60 * 60 * 24))
	seconds -= float64(days) * 60 * 60 * 24
	hours := int(seconds / (60 * 60))
	seconds -= float64(hours) * 60 * 60
	minutes := int(seconds / 60)
	seconds -= float64(minutes) * 60

	var b strings.Builder
	if months > 0 {
		fmt.Fprintf(&b, "%d months ", months)
	}
	if days > 0 {
		fmt.Fprintf(&b, "%d days ", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%d hours ", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%d minutes ", minutes)
	}
	fmt.Fprintf(&b, "%.0f seconds", seconds)
	return b.String()
}

func formatPercentage(part, total time.Duration) string {
	if total <= 0 {
		return "0.00%"
	}
	pct := float64(part) / float64(total) * 100
	return fmt.Sprintf("%.2f%%", pct)
}

var numericPrefixRe = regexp.MustCompile(`(\d{5})(\d+)`)

// FormatFilename builds the result report's output filename:
//
//	<program>_<sanitized-stem>_<5-hex-id>_<flag>_r<reserve>.txt
//
// The stem's numeric substrings are collapsed: a five-digit prefix followed
// by more digits becomes "<prefix>e<suffix>": an "e" is inserted after the
// first five digits and all remaining digits are kept.
func FormatFilename(program, inputStem, problemID, flag string, reserveCores int) string {
	sanitized := strings.TrimSuffix(inputStem, ".dimacs")
	sanitized = numericPrefixRe.ReplaceAllString(sanitized, "${1}e${2}")
	shortID := problemID
	if len(shortID) > 5 {
		shortID = shortID[:5]
	}
	return fmt.Sprintf("%s_%s_%s_%s_r%d.txt", program, sanitized, shortID, flag, reserveCores)
}
