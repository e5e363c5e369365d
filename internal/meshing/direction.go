package meshing

import "voxcraft/internal/world"

// faceDeltas gives the neighbor-cell offset per face direction, indexed
// by world.BlockFace.
var faceDeltas = [world.FaceCount][3]int{
	world.FaceTop:    {0, +1, 0},
	world.FaceBottom: {0, -1, 0},
	world.FaceFront:  {0, 0, +1},
	world.FaceBack:   {0, 0, -1},
	world.FaceLeft:   {-1, 0, 0},
	world.FaceRight:  {+1, 0, 0},
}

// faceTemplate is the static per-direction emission data. Corners are
// unit-cube offsets already in emission order; the shared quad index
// buffer (0,1,2, 2,3,0) triangulates them with outward winding. Shade is
// the default ambient constant for the face. reverseUV marks faces whose
// atlas pairs are assigned in reverse corner order to keep the texture
// upright.
type faceTemplate struct {
	corners   [4][3]uint8
	shade     uint8
	reverseUV bool
}

var faceTemplates = [world.FaceCount]faceTemplate{
	world.FaceTop: {
		corners: [4][3]uint8{{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}},
		shade:   10,
	},
	world.FaceBottom: {
		corners:   [4][3]uint8{{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0}},
		shade:     3,
		reverseUV: true,
	},
	world.FaceFront: {
		corners:   [4][3]uint8{{0, 1, 1}, {1, 1, 1}, {1, 0, 1}, {0, 0, 1}},
		shade:     6,
		reverseUV: true,
	},
	world.FaceBack: {
		corners: [4][3]uint8{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		shade:   7,
	},
	world.FaceLeft: {
		corners:   [4][3]uint8{{0, 0, 1}, {0, 0, 0}, {0, 1, 0}, {0, 1, 1}},
		shade:     6,
		reverseUV: true,
	},
	world.FaceRight: {
		corners: [4][3]uint8{{1, 1, 1}, {1, 1, 0}, {1, 0, 0}, {1, 0, 1}},
		shade:   7,
	},
}
