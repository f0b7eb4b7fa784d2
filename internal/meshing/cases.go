package meshing

// CornerOffsets are the unit-cube corner positions. Bit i of a cube
// configuration refers to corner i.
var CornerOffsets = [8][3]int{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

// EdgeConnections lists the two corners joined by each of the 12 cube edges.
var EdgeConnections = [12][2]int{
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// EdgeTriangle is a triangle given as three cube edge identifiers.
type EdgeTriangle [3]uint8

// CaseTable maps a cube configuration (bit i set when corner i is outside)
// to the triangles approximating the surface inside that cube.
//
// Faces with two diagonal outside corners are resolved by cutting off each
// inside corner, so neighbouring cubes always agree on the shared face.
// No triangle edge inside a polygon lies on a cube face, so every surface
// edge on a face is shared by exactly two triangles.
// Triangles are listed facing toward the inside; Extract emits them in
// reverse order.
var CaseTable = [256][]EdgeTriangle{
	// 0-15
	{},
	{{0, 3, 8}},
	{{0, 9, 1}},
	{{1, 8, 9}, {1, 3, 8}},
	{{1, 10, 2}},
	{{8, 2, 3}, {8, 10, 2}, {8, 1, 10}, {8, 0, 1}},
	{{0, 10, 2}, {0, 9, 10}},
	{{2, 9, 10}, {2, 8, 9}, {2, 3, 8}},
	{{2, 11, 3}},
	{{0, 11, 8}, {0, 2, 11}},
	{{11, 1, 2}, {11, 9, 1}, {11, 0, 9}, {11, 3, 0}},
	{{1, 8, 9}, {1, 11, 8}, {1, 2, 11}},
	{{1, 11, 3}, {1, 10, 11}},
	{{0, 11, 8}, {0, 10, 11}, {0, 1, 10}},
	{{0, 11, 3}, {0, 10, 11}, {0, 9, 10}},
	{{8, 10, 11}, {8, 9, 10}},
	// 16-31
	{{4, 8, 7}},
	{{0, 7, 4}, {0, 3, 7}},
	{{1, 4, 9}, {1, 7, 4}, {1, 8, 7}, {1, 0, 8}},
	{{1, 4, 9}, {1, 7, 4}, {1, 3, 7}},
	{{1, 10, 2}, {4, 8, 7}},
	{{4, 3, 7}, {4, 2, 3}, {4, 10, 2}, {4, 1, 10}, {4, 0, 1}},
	{{2, 9, 10}, {2, 4, 9}, {2, 7, 4}, {2, 8, 7}, {2, 0, 8}},
	{{2, 9, 10}, {2, 4, 9}, {2, 7, 4}, {2, 3, 7}},
	{{2, 8, 3}, {2, 4, 8}, {2, 7, 4}, {2, 11, 7}},
	{{0, 7, 4}, {0, 11, 7}, {0, 2, 11}},
	{{0, 8, 3}, {1, 4, 9}, {1, 7, 4}, {1, 11, 7}, {1, 2, 11}},
	{{1, 4, 9}, {1, 7, 4}, {1, 11, 7}, {1, 2, 11}},
	{{1, 8, 3}, {1, 4, 8}, {1, 7, 4}, {1, 11, 7}, {1, 10, 11}},
	{{0, 7, 4}, {0, 11, 7}, {0, 10, 11}, {0, 1, 10}},
	{{0, 8, 3}, {4, 11, 7}, {4, 10, 11}, {4, 9, 10}},
	{{4, 11, 7}, {4, 10, 11}, {4, 9, 10}},
	// 32-47
	{{4, 5, 9}},
	{{5, 8, 4}, {5, 3, 8}, {5, 0, 3}, {5, 9, 0}},
	{{0, 5, 1}, {0, 4, 5}},
	{{1, 4, 5}, {1, 8, 4}, {1, 3, 8}},
	{{2, 5, 10}, {2, 4, 5}, {2, 9, 4}, {2, 1, 9}},
	{{0, 1, 9}, {2, 5, 10}, {2, 4, 5}, {2, 8, 4}, {2, 3, 8}},
	{{0, 10, 2}, {0, 5, 10}, {0, 4, 5}},
	{{2, 5, 10}, {2, 4, 5}, {2, 8, 4}, {2, 3, 8}},
	{{2, 11, 3}, {4, 5, 9}},
	{{5, 8, 4}, {5, 11, 8}, {5, 2, 11}, {5, 0, 2}, {5, 9, 0}},
	{{11, 1, 2}, {11, 5, 1}, {11, 4, 5}, {11, 0, 4}, {11, 3, 0}},
	{{1, 4, 5}, {1, 8, 4}, {1, 11, 8}, {1, 2, 11}},
	{{3, 10, 11}, {3, 5, 10}, {3, 4, 5}, {3, 9, 4}, {3, 1, 9}},
	{{0, 1, 9}, {4, 11, 8}, {4, 10, 11}, {4, 5, 10}},
	{{0, 11, 3}, {0, 10, 11}, {0, 5, 10}, {0, 4, 5}},
	{{4, 11, 8}, {4, 10, 11}, {4, 5, 10}},
	// 48-63
	{{5, 8, 7}, {5, 9, 8}},
	{{0, 5, 9}, {0, 7, 5}, {0, 3, 7}},
	{{0, 5, 1}, {0, 7, 5}, {0, 8, 7}},
	{{1, 7, 5}, {1, 3, 7}},
	{{2, 5, 10}, {2, 7, 5}, {2, 8, 7}, {2, 9, 8}, {2, 1, 9}},
	{{0, 1, 9}, {2, 5, 10}, {2, 7, 5}, {2, 3, 7}},
	{{0, 10, 2}, {0, 5, 10}, {0, 7, 5}, {0, 8, 7}},
	{{2, 5, 10}, {2, 7, 5}, {2, 3, 7}},
	{{2, 8, 3}, {2, 9, 8}, {2, 5, 9}, {2, 7, 5}, {2, 11, 7}},
	{{0, 5, 9}, {0, 7, 5}, {0, 11, 7}, {0, 2, 11}},
	{{0, 8, 3}, {1, 7, 5}, {1, 11, 7}, {1, 2, 11}},
	{{1, 7, 5}, {1, 11, 7}, {1, 2, 11}},
	{{1, 8, 3}, {1, 9, 8}, {5, 11, 7}, {5, 10, 11}},
	{{0, 1, 9}, {5, 11, 7}, {5, 10, 11}},
	{{0, 8, 3}, {5, 11, 7}, {5, 10, 11}},
	{{5, 11, 7}, {5, 10, 11}},
	// 64-79
	{{5, 6, 10}},
	{{0, 3, 8}, {5, 6, 10}},
	{{0, 10, 1}, {0, 6, 10}, {0, 5, 6}, {0, 9, 5}},
	{{6, 9, 5}, {6, 8, 9}, {6, 3, 8}, {6, 1, 3}, {6, 10, 1}},
	{{1, 6, 2}, {1, 5, 6}},
	{{8, 2, 3}, {8, 6, 2}, {8, 5, 6}, {8, 1, 5}, {8, 0, 1}},
	{{0, 6, 2}, {0, 5, 6}, {0, 9, 5}},
	{{2, 5, 6}, {2, 9, 5}, {2, 8, 9}, {2, 3, 8}},
	{{3, 6, 11}, {3, 5, 6}, {3, 10, 5}, {3, 2, 10}},
	{{0, 11, 8}, {0, 6, 11}, {0, 5, 6}, {0, 10, 5}, {0, 2, 10}},
	{{0, 11, 3}, {0, 6, 11}, {0, 5, 6}, {0, 9, 5}, {1, 2, 10}},
	{{1, 2, 10}, {5, 8, 9}, {5, 11, 8}, {5, 6, 11}},
	{{1, 11, 3}, {1, 6, 11}, {1, 5, 6}},
	{{0, 11, 8}, {0, 6, 11}, {0, 5, 6}, {0, 1, 5}},
	{{0, 11, 3}, {0, 6, 11}, {0, 5, 6}, {0, 9, 5}},
	{{5, 8, 9}, {5, 11, 8}, {5, 6, 11}},
	// 80-95
	{{10, 7, 6}, {10, 8, 7}, {10, 4, 8}, {10, 5, 4}},
	{{0, 5, 4}, {0, 10, 5}, {0, 6, 10}, {0, 7, 6}, {0, 3, 7}},
	{{0, 10, 1}, {0, 6, 10}, {0, 7, 6}, {0, 8, 7}, {4, 9, 5}},
	{{1, 6, 10}, {1, 7, 6}, {1, 3, 7}, {4, 9, 5}},
	{{1, 6, 2}, {1, 7, 6}, {1, 8, 7}, {1, 4, 8}, {1, 5, 4}},
	{{0, 5, 4}, {0, 1, 5}, {2, 7, 6}, {2, 3, 7}},
	{{0, 6, 2}, {0, 7, 6}, {0, 8, 7}, {4, 9, 5}},
	{{2, 7, 6}, {2, 3, 7}, {4, 9, 5}},
	{{2, 8, 3}, {2, 4, 8}, {2, 5, 4}, {2, 10, 5}, {6, 11, 7}},
	{{0, 5, 4}, {0, 10, 5}, {0, 2, 10}, {6, 11, 7}},
	{{0, 8, 3}, {1, 2, 10}, {4, 9, 5}, {6, 11, 7}},
	{{1, 2, 10}, {4, 9, 5}, {6, 11, 7}},
	{{1, 8, 3}, {1, 4, 8}, {1, 5, 4}, {6, 11, 7}},
	{{0, 5, 4}, {0, 1, 5}, {6, 11, 7}},
	{{0, 8, 3}, {4, 9, 5}, {6, 11, 7}},
	{{4, 9, 5}, {6, 11, 7}},
	// 96-111
	{{4, 10, 9}, {4, 6, 10}},
	{{10, 4, 6}, {10, 8, 4}, {10, 3, 8}, {10, 0, 3}, {10, 9, 0}},
	{{0, 10, 1}, {0, 6, 10}, {0, 4, 6}},
	{{1, 6, 10}, {1, 4, 6}, {1, 8, 4}, {1, 3, 8}},
	{{1, 6, 2}, {1, 4, 6}, {1, 9, 4}},
	{{0, 1, 9}, {2, 4, 6}, {2, 8, 4}, {2, 3, 8}},
	{{0, 6, 2}, {0, 4, 6}},
	{{2, 4, 6}, {2, 8, 4}, {2, 3, 8}},
	{{3, 6, 11}, {3, 4, 6}, {3, 9, 4}, {3, 10, 9}, {3, 2, 10}},
	{{0, 10, 9}, {0, 2, 10}, {4, 11, 8}, {4, 6, 11}},
	{{0, 11, 3}, {0, 6, 11}, {0, 4, 6}, {1, 2, 10}},
	{{1, 2, 10}, {4, 11, 8}, {4, 6, 11}},
	{{1, 11, 3}, {1, 6, 11}, {1, 4, 6}, {1, 9, 4}},
	{{0, 1, 9}, {4, 11, 8}, {4, 6, 11}},
	{{0, 11, 3}, {0, 6, 11}, {0, 4, 6}},
	{{4, 11, 8}, {4, 6, 11}},
	// 112-127
	{{6, 8, 7}, {6, 9, 8}, {6, 10, 9}},
	{{0, 10, 9}, {0, 6, 10}, {0, 7, 6}, {0, 3, 7}},
	{{0, 10, 1}, {0, 6, 10}, {0, 7, 6}, {0, 8, 7}},
	{{1, 6, 10}, {1, 7, 6}, {1, 3, 7}},
	{{1, 6, 2}, {1, 7, 6}, {1, 8, 7}, {1, 9, 8}},
	{{0, 1, 9}, {2, 7, 6}, {2, 3, 7}},
	{{0, 6, 2}, {0, 7, 6}, {0, 8, 7}},
	{{2, 7, 6}, {2, 3, 7}},
	{{2, 8, 3}, {2, 9, 8}, {2, 10, 9}, {6, 11, 7}},
	{{0, 10, 9}, {0, 2, 10}, {6, 11, 7}},
	{{0, 8, 3}, {1, 2, 10}, {6, 11, 7}},
	{{1, 2, 10}, {6, 11, 7}},
	{{1, 8, 3}, {1, 9, 8}, {6, 11, 7}},
	{{0, 1, 9}, {6, 11, 7}},
	{{0, 8, 3}, {6, 11, 7}},
	{{6, 11, 7}},
	// 128-143
	{{6, 7, 11}},
	{{0, 7, 8}, {0, 6, 7}, {0, 11, 6}, {0, 3, 11}},
	{{0, 9, 1}, {6, 7, 11}},
	{{1, 8, 9}, {1, 7, 8}, {1, 6, 7}, {1, 11, 6}, {1, 3, 11}},
	{{1, 11, 2}, {1, 7, 11}, {1, 6, 7}, {1, 10, 6}},
	{{0, 7, 8}, {0, 6, 7}, {0, 10, 6}, {0, 1, 10}, {2, 3, 11}},
	{{0, 11, 2}, {0, 7, 11}, {0, 6, 7}, {0, 10, 6}, {0, 9, 10}},
	{{2, 3, 11}, {6, 9, 10}, {6, 8, 9}, {6, 7, 8}},
	{{2, 7, 3}, {2, 6, 7}},
	{{0, 7, 8}, {0, 6, 7}, {0, 2, 6}},
	{{7, 2, 6}, {7, 1, 2}, {7, 9, 1}, {7, 0, 9}, {7, 3, 0}},
	{{1, 8, 9}, {1, 7, 8}, {1, 6, 7}, {1, 2, 6}},
	{{1, 7, 3}, {1, 6, 7}, {1, 10, 6}},
	{{0, 7, 8}, {0, 6, 7}, {0, 10, 6}, {0, 1, 10}},
	{{0, 7, 3}, {0, 6, 7}, {0, 10, 6}, {0, 9, 10}},
	{{6, 9, 10}, {6, 8, 9}, {6, 7, 8}},
	// 144-159
	{{4, 11, 6}, {4, 8, 11}},
	{{0, 6, 4}, {0, 11, 6}, {0, 3, 11}},
	{{1, 4, 9}, {1, 6, 4}, {1, 11, 6}, {1, 8, 11}, {1, 0, 8}},
	{{1, 4, 9}, {1, 6, 4}, {1, 11, 6}, {1, 3, 11}},
	{{1, 11, 2}, {1, 8, 11}, {1, 4, 8}, {1, 6, 4}, {1, 10, 6}},
	{{0, 6, 4}, {0, 10, 6}, {0, 1, 10}, {2, 3, 11}},
	{{0, 11, 2}, {0, 8, 11}, {4, 10, 6}, {4, 9, 10}},
	{{2, 3, 11}, {4, 10, 6}, {4, 9, 10}},
	{{2, 8, 3}, {2, 4, 8}, {2, 6, 4}},
	{{0, 6, 4}, {0, 2, 6}},
	{{0, 8, 3}, {1, 4, 9}, {1, 6, 4}, {1, 2, 6}},
	{{1, 4, 9}, {1, 6, 4}, {1, 2, 6}},
	{{1, 8, 3}, {1, 4, 8}, {1, 6, 4}, {1, 10, 6}},
	{{0, 6, 4}, {0, 10, 6}, {0, 1, 10}},
	{{0, 8, 3}, {4, 10, 6}, {4, 9, 10}},
	{{4, 10, 6}, {4, 9, 10}},
	// 160-175
	{{9, 6, 5}, {9, 11, 6}, {9, 7, 11}, {9, 4, 7}},
	{{0, 5, 9}, {0, 6, 5}, {0, 11, 6}, {0, 3, 11}, {4, 7, 8}},
	{{0, 5, 1}, {0, 6, 5}, {0, 11, 6}, {0, 7, 11}, {0, 4, 7}},
	{{1, 6, 5}, {1, 11, 6}, {1, 3, 11}, {4, 7, 8}},
	{{1, 11, 2}, {1, 7, 11}, {1, 4, 7}, {1, 9, 4}, {5, 10, 6}},
	{{0, 1, 9}, {2, 3, 11}, {4, 7, 8}, {5, 10, 6}},
	{{0, 11, 2}, {0, 7, 11}, {0, 4, 7}, {5, 10, 6}},
	{{2, 3, 11}, {4, 7, 8}, {5, 10, 6}},
	{{2, 7, 3}, {2, 4, 7}, {2, 9, 4}, {2, 5, 9}, {2, 6, 5}},
	{{0, 5, 9}, {0, 6, 5}, {0, 2, 6}, {4, 7, 8}},
	{{0, 7, 3}, {0, 4, 7}, {1, 6, 5}, {1, 2, 6}},
	{{1, 6, 5}, {1, 2, 6}, {4, 7, 8}},
	{{1, 7, 3}, {1, 4, 7}, {1, 9, 4}, {5, 10, 6}},
	{{0, 1, 9}, {4, 7, 8}, {5, 10, 6}},
	{{0, 7, 3}, {0, 4, 7}, {5, 10, 6}},
	{{4, 7, 8}, {5, 10, 6}},
	// 176-191
	{{5, 11, 6}, {5, 8, 11}, {5, 9, 8}},
	{{0, 5, 9}, {0, 6, 5}, {0, 11, 6}, {0, 3, 11}},
	{{0, 5, 1}, {0, 6, 5}, {0, 11, 6}, {0, 8, 11}},
	{{1, 6, 5}, {1, 11, 6}, {1, 3, 11}},
	{{1, 11, 2}, {1, 8, 11}, {1, 9, 8}, {5, 10, 6}},
	{{0, 1, 9}, {2, 3, 11}, {5, 10, 6}},
	{{0, 11, 2}, {0, 8, 11}, {5, 10, 6}},
	{{2, 3, 11}, {5, 10, 6}},
	{{2, 8, 3}, {2, 9, 8}, {2, 5, 9}, {2, 6, 5}},
	{{0, 5, 9}, {0, 6, 5}, {0, 2, 6}},
	{{0, 8, 3}, {1, 6, 5}, {1, 2, 6}},
	{{1, 6, 5}, {1, 2, 6}},
	{{1, 8, 3}, {1, 9, 8}, {5, 10, 6}},
	{{0, 1, 9}, {5, 10, 6}},
	{{0, 8, 3}, {5, 10, 6}},
	{{5, 10, 6}},
	// 192-207
	{{5, 11, 10}, {5, 7, 11}},
	{{0, 7, 8}, {0, 5, 7}, {0, 10, 5}, {0, 11, 10}, {0, 3, 11}},
	{{0, 10, 1}, {0, 11, 10}, {0, 7, 11}, {0, 5, 7}, {0, 9, 5}},
	{{1, 11, 10}, {1, 3, 11}, {5, 8, 9}, {5, 7, 8}},
	{{1, 11, 2}, {1, 7, 11}, {1, 5, 7}},
	{{0, 7, 8}, {0, 5, 7}, {0, 1, 5}, {2, 3, 11}},
	{{0, 11, 2}, {0, 7, 11}, {0, 5, 7}, {0, 9, 5}},
	{{2, 3, 11}, {5, 8, 9}, {5, 7, 8}},
	{{2, 7, 3}, {2, 5, 7}, {2, 10, 5}},
	{{0, 7, 8}, {0, 5, 7}, {0, 10, 5}, {0, 2, 10}},
	{{0, 7, 3}, {0, 5, 7}, {0, 9, 5}, {1, 2, 10}},
	{{1, 2, 10}, {5, 8, 9}, {5, 7, 8}},
	{{1, 7, 3}, {1, 5, 7}},
	{{0, 7, 8}, {0, 5, 7}, {0, 1, 5}},
	{{0, 7, 3}, {0, 5, 7}, {0, 9, 5}},
	{{5, 8, 9}, {5, 7, 8}},
	// 208-223
	{{4, 10, 5}, {4, 11, 10}, {4, 8, 11}},
	{{0, 5, 4}, {0, 10, 5}, {0, 11, 10}, {0, 3, 11}},
	{{0, 10, 1}, {0, 11, 10}, {0, 8, 11}, {4, 9, 5}},
	{{1, 11, 10}, {1, 3, 11}, {4, 9, 5}},
	{{1, 11, 2}, {1, 8, 11}, {1, 4, 8}, {1, 5, 4}},
	{{0, 5, 4}, {0, 1, 5}, {2, 3, 11}},
	{{0, 11, 2}, {0, 8, 11}, {4, 9, 5}},
	{{2, 3, 11}, {4, 9, 5}},
	{{2, 8, 3}, {2, 4, 8}, {2, 5, 4}, {2, 10, 5}},
	{{0, 5, 4}, {0, 10, 5}, {0, 2, 10}},
	{{0, 8, 3}, {1, 2, 10}, {4, 9, 5}},
	{{1, 2, 10}, {4, 9, 5}},
	{{1, 8, 3}, {1, 4, 8}, {1, 5, 4}},
	{{0, 5, 4}, {0, 1, 5}},
	{{0, 8, 3}, {4, 9, 5}},
	{{4, 9, 5}},
	// 224-239
	{{4, 10, 9}, {4, 11, 10}, {4, 7, 11}},
	{{0, 10, 9}, {0, 11, 10}, {0, 3, 11}, {4, 7, 8}},
	{{0, 10, 1}, {0, 11, 10}, {0, 7, 11}, {0, 4, 7}},
	{{1, 11, 10}, {1, 3, 11}, {4, 7, 8}},
	{{1, 11, 2}, {1, 7, 11}, {1, 4, 7}, {1, 9, 4}},
	{{0, 1, 9}, {2, 3, 11}, {4, 7, 8}},
	{{0, 11, 2}, {0, 7, 11}, {0, 4, 7}},
	{{2, 3, 11}, {4, 7, 8}},
	{{2, 7, 3}, {2, 4, 7}, {2, 9, 4}, {2, 10, 9}},
	{{0, 10, 9}, {0, 2, 10}, {4, 7, 8}},
	{{0, 7, 3}, {0, 4, 7}, {1, 2, 10}},
	{{1, 2, 10}, {4, 7, 8}},
	{{1, 7, 3}, {1, 4, 7}, {1, 9, 4}},
	{{0, 1, 9}, {4, 7, 8}},
	{{0, 7, 3}, {0, 4, 7}},
	{{4, 7, 8}},
	// 240-255
	{{8, 10, 9}, {8, 11, 10}},
	{{0, 10, 9}, {0, 11, 10}, {0, 3, 11}},
	{{0, 10, 1}, {0, 11, 10}, {0, 8, 11}},
	{{1, 11, 10}, {1, 3, 11}},
	{{1, 11, 2}, {1, 8, 11}, {1, 9, 8}},
	{{0, 1, 9}, {2, 3, 11}},
	{{0, 11, 2}, {0, 8, 11}},
	{{2, 3, 11}},
	{{2, 8, 3}, {2, 9, 8}, {2, 10, 9}},
	{{0, 10, 9}, {0, 2, 10}},
	{{0, 8, 3}, {1, 2, 10}},
	{{1, 2, 10}},
	{{1, 8, 3}, {1, 9, 8}},
	{{0, 1, 9}},
	{{0, 8, 3}},
	{},
}
