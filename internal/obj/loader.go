package obj

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alchy/Head1919/internal/mathutil"
)

// ParseError describes a malformed line in an OBJ file.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: %s:%d: %s", e.Path, e.Line, e.Msg)
}

// Load reads the minimal OBJ subset: `v x y z` vertex lines and
// `f i1 i2 ... iN` face lines (1-based indices, anything after a `/` in a
// field is ignored). All other lines are skipped. Face indices are
// validated against the final vertex count; an out-of-range index is a
// load error, not something deferred to render time.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	m := &Mesh{}
	var faceLines []int // source line of each face, for late index checks

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, &ParseError{path, lineNo, fmt.Sprintf("vertex has %d coordinates, need 3", len(fields)-1)}
			}
			var v mathutil.Vec3
			for k := 0; k < 3; k++ {
				v[k], err = strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, &ParseError{path, lineNo, fmt.Sprintf("bad vertex coordinate %q", fields[k+1])}
				}
			}
			m.Verts = append(m.Verts, v)

		case "f":
			if len(fields) < 4 {
				return nil, &ParseError{path, lineNo, fmt.Sprintf("face has %d vertices, need at least 3", len(fields)-1)}
			}
			face := make([]int, 0, len(fields)-1)
			for _, fld := range fields[1:] {
				// Only the part before the first '/' is a vertex index;
				// texture/normal refs after it are ignored.
				idxStr, _, _ := strings.Cut(fld, "/")
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, &ParseError{path, lineNo, fmt.Sprintf("bad face index %q", fld)}
				}
				face = append(face, idx-1) // OBJ indices are 1-based
			}
			m.Faces = append(m.Faces, face)
			faceLines = append(faceLines, lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", path, err)
	}

	// Faces may reference vertices defined later in the file, so range
	// checks run against the final vertex count.
	for i, face := range m.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Verts) {
				return nil, &ParseError{path, faceLines[i], fmt.Sprintf("face index %d out of range [1, %d]", idx+1, len(m.Verts))}
			}
		}
	}

	return m, nil
}
