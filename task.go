package ndp

// Assignment is an ordered sequence of signed variable indices recording
// branch decisions. It never contains both v and -v for any v.
type Assignment []int

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)
	return out
}

// extended returns a copy of a with lit appended, leaving a untouched.
func (a Assignment) extended(lit int) Assignment {
	out := make(Assignment, len(a)+1)
	copy(out, a)
	out[len(a)] = lit
	return out
}

// key returns a comparable representation of a suitable for use as a map
// key when deduplicating assignments, independent of slice identity.
func (a Assignment) key() string {
	buf := make([]byte, 0, len(a)*4)
	for _, lit := range a {
		buf = appendInt(buf, lit)
		buf = append(buf, ',')
	}
	return string(buf)
}

func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		buf = append(buf, '-')
		n = -n
	}
	if n == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// Task pairs a clause set with the partial assignment that produced it from
// the root. BFS produces tasks; DFS workers consume them.
type Task struct {
	Clauses    ClauseSet
	Assignment Assignment
}
