package mesh

// Triangle returns a single-triangle mesh on the Z=0 plane. Useful as
// a minimal scene for smoke-testing the render pipeline without any
// asset files.
func Triangle() *Data {
	return &Data{
		Vertices: []Vertex{
			{-0.5, -0.5, 0},
			{-0.5, 0.5, 0},
			{0.5, 0.5, 0},
		},
		Indices: []uint32{2, 1, 0},
	}
}

// Cube returns a unit cube centered at the origin: 8 vertices and 12
// triangles with counter-clockwise outward winding.
func Cube() *Data {
	return &Data{
		Vertices: []Vertex{
			{-0.5, -0.5, 0.5},  // 0: front bottom left
			{0.5, -0.5, 0.5},   // 1: front bottom right
			{0.5, 0.5, 0.5},    // 2: front top right
			{-0.5, 0.5, 0.5},   // 3: front top left
			{-0.5, -0.5, -0.5}, // 4: back bottom left
			{0.5, -0.5, -0.5},  // 5: back bottom right
			{0.5, 0.5, -0.5},   // 6: back top right
			{-0.5, 0.5, -0.5},  // 7: back top left
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3, // front
			1, 5, 6, 1, 6, 2, // right
			5, 4, 7, 5, 7, 6, // back
			4, 0, 3, 4, 3, 7, // left
			3, 2, 6, 3, 6, 7, // top
			4, 5, 1, 4, 1, 0, // bottom
		},
	}
}
