package heuristic

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"estimator/pkg/domain"
	"fmt"
)

const (
	// ModelFormat is the format tag stored on parts with a preview.
	ModelFormat = "gltf"
	// ModelContentType is served with preview downloads.
	ModelContentType = "model/gltf+json"

	glFloat         = 5126
	glUnsignedShort = 5123
	glArrayBuffer   = 34962
	glElementArray  = 34963
)

// Model is an encoded preview mesh.
type Model struct {
	Format      string
	ContentType string
	Data        []byte
}

// boxIndices are the 12 triangles of a cuboid over the corner order used by
// boxCorners, wound counter-clockwise when seen from outside.
var boxIndices = [36]uint16{
	0, 2, 1, 0, 3, 2, // -z
	4, 5, 6, 4, 6, 7, // +z
	0, 1, 5, 0, 5, 4, // -y
	3, 7, 6, 3, 6, 2, // +y
	0, 4, 7, 0, 7, 3, // -x
	1, 2, 6, 1, 6, 5, // +x
}

func boxCorners(bbox domain.BoundingBox) [8][3]float32 {
	// glTF units are metres.
	hx, hy, hz := float32(bbox.XMM/2000), float32(bbox.YMM/2000), float32(bbox.ZMM/2000)

	return [8][3]float32{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
}

// Preview builds a self-contained glTF 2.0 document showing the bounding
// box of geometry. It stands in for a tessellated mesh.
func Preview(geometry domain.Geometry) (Model, error) {
	corners := boxCorners(geometry.BBox)

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, corners); err != nil {
		return Model{}, fmt.Errorf("could not encode vertices: %w", err)
	}
	positionsLen := buf.Len()
	if err := binary.Write(&buf, binary.LittleEndian, boxIndices); err != nil {
		return Model{}, fmt.Errorf("could not encode indices: %w", err)
	}
	indicesLen := buf.Len() - positionsLen

	c := corners[6]
	doc := gltf{
		Asset:  gltfAsset{Version: "2.0", Generator: "estimator"},
		Scene:  0,
		Scenes: []gltfScene{{Nodes: []int{0}}},
		Nodes:  []gltfNode{{Mesh: 0}},
		Meshes: []gltfMesh{{Primitives: []gltfPrimitive{{
			Attributes: map[string]int{"POSITION": 0},
			Indices:    1,
		}}}},
		Buffers: []gltfBuffer{{
			ByteLength: buf.Len(),
			URI:        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		}},
		BufferViews: []gltfBufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: positionsLen, Target: glArrayBuffer},
			{Buffer: 0, ByteOffset: positionsLen, ByteLength: indicesLen, Target: glElementArray},
		},
		Accessors: []gltfAccessor{
			{
				BufferView:    0,
				ComponentType: glFloat,
				Count:         len(corners),
				Type:          "VEC3",
				Min:           []float32{-c[0], -c[1], -c[2]},
				Max:           []float32{c[0], c[1], c[2]},
			},
			{BufferView: 1, ComponentType: glUnsignedShort, Count: len(boxIndices), Type: "SCALAR"},
		},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return Model{}, fmt.Errorf("could not encode preview: %w", err)
	}

	return Model{Format: ModelFormat, ContentType: ModelContentType, Data: data}, nil
}

type gltf struct {
	Asset       gltfAsset        `json:"asset"`
	Scene       int              `json:"scene"`
	Scenes      []gltfScene      `json:"scenes"`
	Nodes       []gltfNode       `json:"nodes"`
	Meshes      []gltfMesh       `json:"meshes"`
	Buffers     []gltfBuffer     `json:"buffers"`
	BufferViews []gltfBufferView `json:"bufferViews"`
	Accessors   []gltfAccessor   `json:"accessors"`
}

type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

type gltfScene struct {
	Nodes []int `json:"nodes"`
}

type gltfNode struct {
	Mesh int `json:"mesh"`
}

type gltfMesh struct {
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
}

type gltfBuffer struct {
	ByteLength int    `json:"byteLength"`
	URI        string `json:"uri"`
}

type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target"`
}

type gltfAccessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}
