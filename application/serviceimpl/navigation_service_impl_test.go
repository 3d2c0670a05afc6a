package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/services"
	"shop-backend/pkg/apperrors"
)

func newNavigationService(t *testing.T) (services.NavigationService, *fakeNavigationRepo, *fakeCategoryRepo) {
	t.Helper()
	navRepo := newFakeNavigationRepo()
	categoryRepo := newFakeCategoryRepo()
	svc := NewNavigationService(navRepo, categoryRepo, nil)
	return svc, navRepo, categoryRepo
}

func TestNavigationCreateLinkRequiresURL(t *testing.T) {
	svc, _, _ := newNavigationService(t)

	_, err := svc.Create(context.Background(), &dto.CreateNavigationItemRequest{
		Title: "Delivery",
		Type:  string(models.NavigationItemTypeLink),
	})

	var refErr *apperrors.ReferenceError
	require.ErrorAs(t, err, &refErr)
}

func TestNavigationCreateCategoryRequiresExistingCategory(t *testing.T) {
	svc, _, categories := newNavigationService(t)
	ctx := context.Background()

	missing := uuid.New()
	_, err := svc.Create(ctx, &dto.CreateNavigationItemRequest{
		Title:      "Flowers",
		Type:       string(models.NavigationItemTypeCategory),
		CategoryID: &missing,
	})
	var refErr *apperrors.ReferenceError
	require.ErrorAs(t, err, &refErr)

	category := seedCategory(categories, "flowers", nil, 1)
	item, err := svc.Create(ctx, &dto.CreateNavigationItemRequest{
		Title:      "Flowers",
		Type:       string(models.NavigationItemTypeCategory),
		CategoryID: &category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, item.SortOrder)
}

func TestNavigationDeleteWithChildrenNeedsForce(t *testing.T) {
	svc, repo, _ := newNavigationService(t)
	ctx := context.Background()

	parent := repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "parent", Type: models.NavigationItemTypeLink,
		URL: "/p", SortOrder: 1, IsActive: true,
	})
	child := repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "child", Type: models.NavigationItemTypeLink,
		URL: "/c", ParentID: &parent.ID, SortOrder: 1, IsActive: true,
	})

	err := svc.Delete(ctx, parent.ID, false)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(1), conflict.Count)

	require.NoError(t, svc.Delete(ctx, parent.ID, true))
	survivor, err := repo.GetByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.ParentID, "child climbs to root when its parent goes")
}

func TestNavigationPublicTreeHidesUnavailableTargets(t *testing.T) {
	svc, repo, _ := newNavigationService(t)

	visibleCategory := &models.Category{
		ID: uuid.New(), Name: "flowers", Slug: "flowers",
		IsActive: true, ShowInNavigation: true,
	}
	hiddenCategory := &models.Category{
		ID: uuid.New(), Name: "archive", Slug: "archive",
		IsActive: false, ShowInNavigation: true,
	}
	optedOutCategory := &models.Category{
		ID: uuid.New(), Name: "internal", Slug: "internal",
		IsActive: true, ShowInNavigation: false,
	}

	repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "Flowers", Type: models.NavigationItemTypeCategory,
		CategoryID: &visibleCategory.ID, Category: visibleCategory,
		SortOrder: 1, IsActive: true, ShowInNavigation: true,
	})
	repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "Archive", Type: models.NavigationItemTypeCategory,
		CategoryID: &hiddenCategory.ID, Category: hiddenCategory,
		SortOrder: 2, IsActive: true, ShowInNavigation: true,
	})
	repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "Internal", Type: models.NavigationItemTypeCategory,
		CategoryID: &optedOutCategory.ID, Category: optedOutCategory,
		SortOrder: 3, IsActive: true, ShowInNavigation: true,
	})
	repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "Delivery", Type: models.NavigationItemTypeLink,
		URL: "/delivery", SortOrder: 4, IsActive: true, ShowInNavigation: true,
	})
	repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "Draft", Type: models.NavigationItemTypeLink,
		URL: "/draft", SortOrder: 5, IsActive: false, ShowInNavigation: true,
	})
	// active but withdrawn from the menu, stays reachable by direct URL
	repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "Promo Landing", Type: models.NavigationItemTypeLink,
		URL: "/promo", SortOrder: 6, IsActive: true, ShowInNavigation: false,
	})

	tree, err := svc.PublicTree(context.Background())
	require.NoError(t, err)

	titles := make([]string, len(tree))
	for i, node := range tree {
		titles[i] = node.Title
	}
	assert.Equal(t, []string{"Flowers", "Delivery"}, titles)
}

func TestNavigationShowInNavigationIndependentOfActive(t *testing.T) {
	svc, repo, _ := newNavigationService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, &dto.CreateNavigationItemRequest{
		Title: "Delivery",
		Type:  string(models.NavigationItemTypeLink),
		URL:   "/delivery",
	})
	require.NoError(t, err)
	assert.True(t, item.ShowInNavigation, "defaults to visible")

	hide := false
	updated, err := svc.Update(ctx, item.ID, &dto.UpdateNavigationItemRequest{
		ShowInNavigation: &hide,
	})
	require.NoError(t, err)
	assert.False(t, updated.ShowInNavigation)
	assert.True(t, updated.IsActive, "hiding from the menu does not deactivate")

	stored, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, stored.ShowInNavigation)
}

func TestNavigationReorderRejectsMixedParents(t *testing.T) {
	svc, repo, _ := newNavigationService(t)
	ctx := context.Background()

	root := repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "root", Type: models.NavigationItemTypeLink,
		URL: "/r", SortOrder: 1, IsActive: true,
	})
	sibling := repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "sibling", Type: models.NavigationItemTypeLink,
		URL: "/s", SortOrder: 2, IsActive: true,
	})
	child := repo.add(&models.NavigationItem{
		ID: uuid.New(), Title: "child", Type: models.NavigationItemTypeLink,
		URL: "/c", ParentID: &root.ID, SortOrder: 1, IsActive: true,
	})

	err := svc.Reorder(ctx, &dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: sibling.ID, SortOrder: 1},
		{ID: child.ID, SortOrder: 2},
	}})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)

	stored, _ := repo.GetByID(ctx, sibling.ID)
	assert.Equal(t, 2, stored.SortOrder)
}
