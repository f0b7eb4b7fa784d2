package meshing

import "testing"

func TestCaseTableUniformConfigurationsEmpty(t *testing.T) {
	if len(CaseTable[0]) != 0 {
		t.Fatalf("CaseTable[0] has %d triangles, want 0", len(CaseTable[0]))
	}
	if len(CaseTable[255]) != 0 {
		t.Fatalf("CaseTable[255] has %d triangles, want 0", len(CaseTable[255]))
	}
}

func TestCaseTableEdgesCrossSurface(t *testing.T) {
	for config := 1; config < 255; config++ {
		outside := func(corner int) bool { return config&(1<<corner) != 0 }

		crossed := map[int]bool{}
		for e, c := range EdgeConnections {
			if outside(c[0]) != outside(c[1]) {
				crossed[e] = true
			}
		}

		used := map[int]bool{}
		for ti, tri := range CaseTable[config] {
			if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
				t.Fatalf("config %d triangle %d repeats an edge: %v", config, ti, tri)
			}
			for _, e := range tri {
				if int(e) >= len(EdgeConnections) {
					t.Fatalf("config %d triangle %d has edge %d out of range", config, ti, e)
				}
				if !crossed[int(e)] {
					c := EdgeConnections[e]
					t.Fatalf("config %d triangle %d uses edge %d whose corners %d,%d agree", config, ti, e, c[0], c[1])
				}
				used[int(e)] = true
			}
		}
		if len(used) != len(crossed) {
			t.Fatalf("config %d: triangles touch %d of %d crossed edges", config, len(used), len(crossed))
		}
	}
}

func TestCaseTableTriangleBudget(t *testing.T) {
	for config, tris := range CaseTable {
		if len(tris) > 5 {
			t.Fatalf("config %d has %d triangles, want at most 5", config, len(tris))
		}
	}
}

func TestEdgeConnectionsAreUnitEdges(t *testing.T) {
	for e, c := range EdgeConnections {
		a, b := CornerOffsets[c[0]], CornerOffsets[c[1]]
		diff := 0
		for axis := 0; axis < 3; axis++ {
			if a[axis] != b[axis] {
				diff++
			}
		}
		if diff != 1 {
			t.Fatalf("edge %d joins corners %v and %v which differ on %d axes", e, a, b, diff)
		}
	}
}
