package retro3d

import "testing"

func TestNewPortalTreeInitialBounds(t *testing.T) {
	pt := NewPortalTree(4, 10)
	min, max := pt.Bounds(0)
	for x := 0; x < 4; x++ {
		if min[x] != 0 || max[x] != 10 {
			t.Fatalf("column %d bounds = [%d,%d), want [0,10)", x, min[x], max[x])
		}
	}
}

func TestPortalTreePushNodeGrowsLayers(t *testing.T) {
	pt := NewPortalTree(4, 10)
	pt.PushNode(PortalNode{TreeDepth: 2, XMin: 0, XMax: 4})

	min, max := pt.Bounds(2)
	if len(min) != 4 || len(max) != 4 {
		t.Fatalf("depth 2 bounds not allocated: len(min)=%d len(max)=%d", len(min), len(max))
	}
}

func TestPortalTreeResetRestoresBounds(t *testing.T) {
	pt := NewPortalTree(2, 6)
	min, _ := pt.Bounds(0)
	min[0] = 3
	pt.PushNode(PortalNode{TreeDepth: 0})

	pt.Reset()

	if len(pt.Nodes) != 0 {
		t.Errorf("Reset should clear nodes, got %d", len(pt.Nodes))
	}
	min, max := pt.Bounds(0)
	if min[0] != 0 || max[0] != 6 {
		t.Errorf("Reset should restore bounds, got [%d,%d)", min[0], max[0])
	}
}

func TestPortalTreeTwoDepthBoundsAreIndependent(t *testing.T) {
	pt := NewPortalTree(3, 5)
	pt.PushNode(PortalNode{TreeDepth: 1})

	min0, max0, min1, max1 := pt.TwoDepthBounds(0, 1)
	min0[0] = 1
	max1[0] = 2

	if min1[0] == 1 {
		t.Error("depth 1 min bounds should not alias depth 0's")
	}
	if max0[0] == 2 {
		t.Error("depth 0 max bounds should not alias depth 1's")
	}
}

func TestPortalTreePushNodeRejectsBeyondMaxDepth(t *testing.T) {
	pt := NewPortalTree(2, 5)
	if ok := pt.PushNode(PortalNode{TreeDepth: maxPortalDepth}); ok {
		t.Error("PushNode at maxPortalDepth should report false")
	}
	if len(pt.Nodes) != 0 {
		t.Errorf("rejected node should not be appended, got %d nodes", len(pt.Nodes))
	}

	if ok := pt.PushNode(PortalNode{TreeDepth: maxPortalDepth - 1}); !ok {
		t.Error("PushNode just under maxPortalDepth should report true")
	}
}

func TestPortalTreeResizeBoundsGrowsColumns(t *testing.T) {
	pt := NewPortalTree(2, 5)
	pt.ResizeBounds(6, 8)

	min, max := pt.Bounds(0)
	if len(min) != 6 || len(max) != 6 {
		t.Fatalf("expected 6 columns, got %d/%d", len(min), len(max))
	}
	if max[5] != 8 {
		t.Errorf("new column max = %d, want 8", max[5])
	}
}
