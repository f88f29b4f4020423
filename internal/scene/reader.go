package scene

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/lukaszgryglicki/triangles3d/internal/geometry"
)

// maxPrealloc caps the triangle slice capacity reserved up front.
const maxPrealloc = 1 << 16

// ErrFormat marks input that does not follow the triangle soup format.
var ErrFormat = errors.New("malformed input")

// Read parses a triangle soup: a count N followed by N groups of nine
// whitespace separated numbers, ax ay az bx by bz cx cy cz.
func Read(r io.Reader) ([]geometry.Triangle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", io.ErrUnexpectedEOF
	}

	tok, err := next()
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "triangle count: %v", err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return nil, errors.Wrapf(ErrFormat, "triangle count %q", tok)
	}

	// the count is untrusted until that many triangles are actually read
	tris := make([]geometry.Triangle, 0, min(n, maxPrealloc))
	var c [9]geometry.Real
	for i := 0; i < n; i++ {
		for j := range c {
			tok, err := next()
			if err != nil {
				return nil, errors.Wrapf(ErrFormat, "triangle %d coordinate %d: %v", i, j, err)
			}
			c[j], err = strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrFormat, "triangle %d coordinate %d: %q", i, j, tok)
			}
		}
		t, err := geometry.NewTriangle(
			geometry.V(c[0], c[1], c[2]),
			geometry.V(c[3], c[4], c[5]),
			geometry.V(c[6], c[7], c[8]),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "triangle %d", i)
		}
		tris = append(tris, t)
	}
	DebugLog("read %d triangles", len(tris))
	return tris, nil
}
