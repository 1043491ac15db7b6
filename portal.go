package retro3d

// maxPortalDepth bounds how many nested portals a single frame's
// traversal will follow. Without a limit, a sector graph with a portal
// cycle (a window facing back through itself, directly or via other
// sectors) would grow the node list without end (§10).
const maxPortalDepth = 64

// PortalNode describes one sector drawn during traversal: which sector,
// the screen-column range it owns, and the view-space depth range of
// the portal that exposed it (§4.6). DepthMax is also raised to the
// farthest view depth of the walls drawn for the node's own sector.
// Nodes carry no parent/child index;
// the tree is processed breadth-first by walking the flat node slice in
// order, with new nodes appended as later sectors are discovered.
type PortalNode struct {
	TreeDepth   int
	SectorIndex int
	XMin, XMax int
	DepthMin   float64
	DepthMax   float64
}

// PortalTree holds the per-depth column clip bounds and the flat,
// append-only node list that drives breadth-first sector traversal
// (§4.6). Bounds for nodes at the same tree depth share one buffer pair,
// since sibling nodes never overlap in column range; a portal nested
// inside another moves to the next depth and gets its own buffer.
type PortalTree struct {
	width, height int

	Nodes []PortalNode

	boundsMin [][]uint16
	boundsMax [][]uint16
}

// NewPortalTree builds a PortalTree sized for a width x height
// framebuffer, with one initial depth layer (§4.6).
func NewPortalTree(width, height int) *PortalTree {
	t := &PortalTree{width: width, height: height}
	t.addLayer()
	return t
}

// ResizeBounds adjusts every depth layer's column count to width,
// resetting the height bound used to fill newly-added columns (§4.6).
func (t *PortalTree) ResizeBounds(width, height int) {
	t.width = width
	t.height = height

	for i := range t.boundsMin {
		t.boundsMin[i] = resizeUint16(t.boundsMin[i], width, 0)
		t.boundsMax[i] = resizeUint16(t.boundsMax[i], width, uint16(height))
	}
}

func resizeUint16(s []uint16, n int, fill uint16) []uint16 {
	if n <= len(s) {
		return s[:n]
	}
	grown := make([]uint16, n)
	copy(grown, s)
	for i := len(s); i < n; i++ {
		grown[i] = fill
	}
	return grown
}

// Reset clears the node list and restores the depth-0 bounds to the
// full [0,height) range, ready for a new frame's traversal (§4.6).
// Deeper layers are not reset: rasterisePortalWall writes a child
// node's columns when the node is pushed.
func (t *PortalTree) Reset() {
	t.Nodes = t.Nodes[:0]

	for x := range t.boundsMin[0] {
		t.boundsMin[0][x] = 0
		t.boundsMax[0][x] = uint16(t.height)
	}
}

// PushNode appends a node to the traversal, growing the bounds storage
// with a fresh layer if the node's depth has not been seen before
// (§4.6). It reports false, without appending, if node.TreeDepth has
// hit maxPortalDepth, truncating traversal through that portal (§10).
func (t *PortalTree) PushNode(node PortalNode) bool {
	if node.TreeDepth >= maxPortalDepth {
		Logger().Warn("portal traversal truncated at max depth", "depth", node.TreeDepth, "sector", node.SectorIndex)
		return false
	}
	for node.TreeDepth > len(t.boundsMin)-1 {
		t.addLayer()
	}
	t.Nodes = append(t.Nodes, node)
	return true
}

func (t *PortalTree) addLayer() {
	min := make([]uint16, t.width)
	max := make([]uint16, t.width)
	for x := range max {
		max[x] = uint16(t.height)
	}
	t.boundsMin = append(t.boundsMin, min)
	t.boundsMax = append(t.boundsMax, max)
	Logger().Debug("portal tree depth grown", "depth", len(t.boundsMin)-1)
}

// Bounds returns the min/max column-bound slices for a single depth
// (§4.6).
func (t *PortalTree) Bounds(depth int) (min, max []uint16) {
	return t.boundsMin[depth], t.boundsMax[depth]
}

// TwoDepthBounds returns the min/max bound slices for two distinct
// depths at once (§4.6). Since each depth is backed by its own slice,
// this needs no unsafe aliasing; it exists purely so callers clipping a
// child portal against its parent's bounds don't have to juggle two
// separate Bounds calls.
func (t *PortalTree) TwoDepthBounds(depth1, depth2 int) (min1, max1, min2, max2 []uint16) {
	min1, max1 = t.Bounds(depth1)
	min2, max2 = t.Bounds(depth2)
	return
}
