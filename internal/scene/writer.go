package scene

import (
	"bufio"
	"io"
	"strconv"
)

// Write prints one index per line, preceded by the pair count when
// withPairs is set.
func Write(w io.Writer, res Result, withPairs bool) error {
	bw := bufio.NewWriter(w)
	if withPairs {
		bw.WriteString("pairs: ")
		bw.WriteString(strconv.FormatInt(res.Pairs, 10))
		bw.WriteByte('\n')
	}
	for _, i := range res.Indices {
		bw.WriteString(strconv.Itoa(i))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
