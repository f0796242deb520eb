package boundary

import (
	"fmt"
	"sort"

	"github.com/notargets/DGMesh/element"
	"github.com/notargets/DGMesh/utils"
)

// Face is one element face as produced by a voxel
type Face struct {
	Vertices  []int // Global vertex indices in the voxel's local face order
	Voxel     int   // Voxel that produced the face
	LocalFace int   // Local face index within the voxel
}

// FaceKey is the canonical form of a face: its vertex indices sorted
// ascending, padded with -1. Two faces with the same vertex set share a key
// regardless of orientation.
type FaceKey [element.MaxFaceVertices]int

// NewFaceKey canonicalizes a face vertex list
func NewFaceKey(verts []int) (FaceKey, error) {
	var key FaceKey
	if len(verts) == 0 || len(verts) > len(key) {
		return key, fmt.Errorf("face with %d vertices: %w", len(verts), utils.ErrUnsupportedElementType)
	}
	sorted := make([]int, len(verts))
	copy(sorted, verts)
	sort.Ints(sorted)
	for i := range key {
		key[i] = -1
	}
	copy(key[:], sorted)
	return key, nil
}

// FaceRef locates a face within a voxel
type FaceRef struct {
	Voxel     int
	LocalFace int
}

// FaceRecord accumulates the occurrences of one canonical face
type FaceRecord struct {
	Count  int       // Number of voxel faces mapping to this key
	First  Face      // Face as produced by the first voxel that mentioned it
	Owners []FaceRef // Every (voxel, local face) mentioning it, in scan order
}

// FaceTable maps canonical keys to records kept in discovery order
type FaceTable struct {
	index    map[FaceKey]int
	records  []FaceRecord
	mentions int
}

func newFaceTable(capacity int) *FaceTable {
	return &FaceTable{
		index:   make(map[FaceKey]int, capacity),
		records: make([]FaceRecord, 0, capacity),
	}
}

// add counts one mention of face; the first mention is recorded verbatim
func (ft *FaceTable) add(face Face) error {
	key, err := NewFaceKey(face.Vertices)
	if err != nil {
		return err
	}
	ft.mentions++
	ref := FaceRef{Voxel: face.Voxel, LocalFace: face.LocalFace}
	if id, exists := ft.index[key]; exists {
		ft.records[id].Count++
		ft.records[id].Owners = append(ft.records[id].Owners, ref)
		return nil
	}
	ft.index[key] = len(ft.records)
	ft.records = append(ft.records, FaceRecord{Count: 1, First: face, Owners: []FaceRef{ref}})
	return nil
}

// Len returns the number of distinct faces
func (ft *FaceTable) Len() int { return len(ft.records) }

// Mentions returns the number of voxel faces scanned
func (ft *FaceTable) Mentions() int { return ft.mentions }

// Record returns the i-th distinct face in discovery order
func (ft *FaceTable) Record(i int) (FaceRecord, error) {
	if i < 0 || i >= len(ft.records) {
		return FaceRecord{}, fmt.Errorf("face record %d of %d: %w", i, len(ft.records), utils.ErrIndexOutOfRange)
	}
	return ft.records[i].clone(), nil
}

// Lookup finds the record of a face given in any vertex order
func (ft *FaceTable) Lookup(verts []int) (FaceRecord, bool) {
	key, err := NewFaceKey(verts)
	if err != nil {
		return FaceRecord{}, false
	}
	id, ok := ft.index[key]
	if !ok {
		return FaceRecord{}, false
	}
	return ft.records[id].clone(), true
}

func (rec FaceRecord) clone() FaceRecord {
	rec.First.Vertices = append([]int(nil), rec.First.Vertices...)
	rec.Owners = append([]FaceRef(nil), rec.Owners...)
	return rec
}
