package main

import (
	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/glrotate/mat"
)

const (
	textWidth  = 524
	textHeight = 32
)

var triangleVertices = []mat.Vec3{
	{-0.5, -0.5, 0}, // left
	{0, 0.5, 0},     // center
	{0.5, -0.5, 0},  // right
}

var triangleColors = []float32{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Position and texture coordinate of the text quad, drawn as a triangle strip.
var textVertices = []float32{
	0, textHeight, 0, 1,
	0, 0, 0, 0,
	textWidth, textHeight, 1, 1,
	textWidth, 0, 1, 0,
}

// newTriangleCloud stores the triangle vertices as an xyz point cloud,
// whose Data can be uploaded to a vertex buffer as is.
func newTriangleCloud() (*pc.PointCloud, error) {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Fields: []string{"x", "y", "z"},
			Size:   []int{4, 4, 4},
			Type:   []string{"F", "F", "F"},
			Count:  []int{1, 1, 1},
			Width:  len(triangleVertices),
			Height: 1,
		},
		Points: len(triangleVertices),
		Data:   make([]byte, 4*3*len(triangleVertices)),
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for _, v := range triangleVertices {
		it.SetVec3(pcmat.Vec3(v))
		it.Incr()
	}
	return pp, nil
}

// triangleProjection keeps the triangle undistorted by scaling y with the
// aspect ratio of the canvas.
func triangleProjection(width, height int) mat.Mat4 {
	m := mat.Identity()
	m[5] = float32(width) / float32(height)
	return m
}

// textProjection maps canvas pixels, origin at the top left, to clip space.
func textProjection(width, height int) mat.Mat4 {
	return mat.Orthographic(0, float32(width), 0, float32(height))
}

func textModel(offset []float32) mat.Mat4 {
	return mat.Translate(offset[0], offset[1], 0)
}

// uniform converts to the matrix type taken by the WebGL binding.
func uniform(m mat.Mat4) pcmat.Mat4 {
	return pcmat.Mat4(m)
}
