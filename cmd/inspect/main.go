package main

import (
	"fmt"
	"os"

	"github.com/alchy/Head1919/internal/mesh"
	"github.com/alchy/Head1919/internal/obj"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect model.obj [...]")
		os.Exit(1)
	}

	exit := 0
	for _, arg := range os.Args[1:] {
		m, err := obj.Load(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Load error %s: %v\n", arg, err)
			exit = 1
			continue
		}

		tris := mesh.Triangulate(m, nil)
		min, max := m.Bounds()

		fmt.Printf("\n=== %s ===\n", arg)
		fmt.Printf("Vertices:  %d\n", len(m.Verts))
		fmt.Printf("Faces:     %d\n", len(m.Faces))
		fmt.Printf("Triangles: %d\n", len(tris))
		fmt.Printf("Bounds:    x=[%.3f..%.3f] y=[%.3f..%.3f] z=[%.3f..%.3f]\n",
			min[0], max[0], min[1], max[1], min[2], max[2])

		// Face arity histogram: how much fan triangulation will happen.
		arity := map[int]int{}
		maxArity := 0
		for _, f := range m.Faces {
			arity[len(f)]++
			if len(f) > maxArity {
				maxArity = len(f)
			}
		}
		for n := 3; n <= maxArity; n++ {
			if count := arity[n]; count > 0 {
				fmt.Printf("  %d-gons: %d\n", n, count)
			}
		}
	}
	os.Exit(exit)
}
