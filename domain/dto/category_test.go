package dto

import (
	"testing"

	"github.com/google/uuid"

	"shop-backend/domain/models"
)

func newCategory(name string, parentID *uuid.UUID, sortOrder int) *models.Category {
	return &models.Category{
		ID:        uuid.New(),
		Name:      name,
		Slug:      name,
		Type:      models.CategoryTypeProducts,
		ParentID:  parentID,
		SortOrder: sortOrder,
		IsActive:  true,
	}
}

func TestBuildCategoryTree(t *testing.T) {
	root := newCategory("flowers", nil, 1)
	childA := newCategory("roses", &root.ID, 1)
	childB := newCategory("tulips", &root.ID, 2)
	grandchild := newCategory("red-roses", &childA.ID, 1)
	otherRoot := newCategory("gifts", nil, 2)

	roots := BuildCategoryTree([]*models.Category{root, childA, childB, grandchild, otherRoot})

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].ID != root.ID || roots[1].ID != otherRoot.ID {
		t.Fatal("root order not preserved")
	}
	if len(roots[0].Children) != 2 {
		t.Fatalf("expected 2 children under flowers, got %d", len(roots[0].Children))
	}
	if roots[0].Children[0].ID != childA.ID || roots[0].Children[1].ID != childB.ID {
		t.Fatal("sibling order not preserved")
	}
	if len(roots[0].Children[0].Children) != 1 {
		t.Fatalf("grandchild not linked, got %d", len(roots[0].Children[0].Children))
	}
	if roots[0].Children[0].Children[0].ID != grandchild.ID {
		t.Fatal("wrong grandchild")
	}
	if len(roots[1].Children) != 0 {
		t.Fatal("gifts should have no children")
	}
}

func TestBuildCategoryTreeDropsOrphanedBranch(t *testing.T) {
	// the parent was filtered out of the input, e.g. it is inactive; its
	// whole subtree must disappear rather than get promoted to root
	hiddenParentID := uuid.New()
	orphan := newCategory("orphan", &hiddenParentID, 1)
	orphanChild := newCategory("orphan-child", &orphan.ID, 1)
	visible := newCategory("visible", nil, 1)

	roots := BuildCategoryTree([]*models.Category{visible, orphan, orphanChild})

	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].ID != visible.ID {
		t.Fatal("wrong surviving root")
	}
}

func TestBuildCategoryTreeEmptyInput(t *testing.T) {
	if roots := BuildCategoryTree(nil); len(roots) != 0 {
		t.Fatalf("expected empty result, got %d roots", len(roots))
	}
}

func TestCategoryToResponseLowercasesType(t *testing.T) {
	category := newCategory("balloons", nil, 1)
	category.Type = models.CategoryTypeBalloons

	resp := CategoryToResponse(category)
	if resp.Type != "balloons" {
		t.Errorf("expected lowercased type, got %q", resp.Type)
	}
}

func TestCategoryToResponseRecursesPopulatedChildrenOnly(t *testing.T) {
	root := newCategory("flowers", nil, 1)
	child := newCategory("roses", &root.ID, 1)
	root.Children = []models.Category{*child}
	root.ProductCount = 7

	resp := CategoryToResponse(root)
	if resp.ChildrenCount != 1 {
		t.Errorf("expected childrenCount 1, got %d", resp.ChildrenCount)
	}
	if len(resp.Children) != 1 || resp.Children[0].ID != child.ID {
		t.Fatal("child not formatted")
	}
	if resp.ProductCount != 7 {
		t.Errorf("expected productCount 7, got %d", resp.ProductCount)
	}

	// a node fetched without children formats as a leaf, it never queries
	leaf := CategoryToResponse(child)
	if leaf.ChildrenCount != 0 || leaf.Children != nil {
		t.Error("unpopulated node must format as a leaf")
	}
}

func TestCategoryToResponseIdempotent(t *testing.T) {
	root := newCategory("flowers", nil, 1)
	child := newCategory("roses", &root.ID, 1)
	root.Children = []models.Category{*child}

	first := CategoryToResponse(root)
	second := CategoryToResponse(root)

	if first.ID != second.ID || first.Type != second.Type ||
		first.ChildrenCount != second.ChildrenCount ||
		len(first.Children) != len(second.Children) {
		t.Error("formatting the same input twice diverged")
	}
}

func TestCategoryToResponseNil(t *testing.T) {
	if CategoryToResponse(nil) != nil {
		t.Error("nil input must map to nil")
	}
}
