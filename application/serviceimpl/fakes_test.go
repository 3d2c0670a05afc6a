package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/pkg/apperrors"
)

// In-memory repository fakes. They mirror the contract of the Postgres
// implementations closely enough for service-level tests: not-found errors
// are typed, reorder batches are all-or-nothing, list reads are sort-ordered.

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
	// seq records insertion order, the tie-break below sort_order
	seq  map[uuid.UUID]int
	next int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uuid.UUID]*models.Category),
		seq:        make(map[uuid.UUID]int),
	}
}

func (r *fakeCategoryRepo) add(c *models.Category) *models.Category {
	cp := *c
	r.categories[c.ID] = &cp
	r.next++
	r.seq[c.ID] = r.next
	return c
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	for _, existing := range r.categories {
		if existing.Slug == category.Slug {
			return apperrors.NewConflict("category", "slug already exists: "+category.Slug)
		}
	}
	r.add(category)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, apperrors.NewNotFound("category", id.String())
	}
	cp := *category
	return &cp, nil
}

func (r *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, category := range r.categories {
		if category.Slug == slug {
			cp := *category
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("category", slug)
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return apperrors.NewNotFound("category", category.ID.String())
	}
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return apperrors.NewNotFound("category", id.String())
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) DeleteReparenting(_ context.Context, id uuid.UUID, newParentID *uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return apperrors.NewNotFound("category", id.String())
	}
	for _, category := range r.categories {
		if category.ParentID != nil && *category.ParentID == id {
			category.ParentID = newParentID
		}
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ListAll(_ context.Context, filter repositories.CategoryFilter) ([]*models.Category, error) {
	var out []*models.Category
	for _, category := range r.categories {
		if filter.IsActive != nil && category.IsActive != *filter.IsActive {
			continue
		}
		if filter.ShowInNavigation != nil && category.ShowInNavigation != *filter.ShowInNavigation {
			continue
		}
		if filter.Type != nil && category.Type != *filter.Type {
			continue
		}
		cp := *category
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return r.seq[out[i].ID] < r.seq[out[j].ID]
	})
	return out, nil
}

func (r *fakeCategoryRepo) ListChildren(ctx context.Context, parentID *uuid.UUID, filter repositories.CategoryFilter) ([]*models.Category, error) {
	all, _ := r.ListAll(ctx, filter)
	var out []*models.Category
	for _, category := range all {
		if sameParent(category.ParentID, parentID) {
			out = append(out, category)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) CountChildren(_ context.Context, id uuid.UUID) (int64, error) {
	var count int64
	for _, category := range r.categories {
		if category.ParentID != nil && *category.ParentID == id {
			count++
		}
	}
	return count, nil
}

func (r *fakeCategoryRepo) GetMaxSortOrder(_ context.Context, parentID *uuid.UUID) (int, error) {
	max := 0
	for _, category := range r.categories {
		if sameParent(category.ParentID, parentID) && category.SortOrder > max {
			max = category.SortOrder
		}
	}
	return max, nil
}

func (r *fakeCategoryRepo) UpdateSortOrders(_ context.Context, items []repositories.SortOrderItem) error {
	for _, item := range items {
		if _, ok := r.categories[item.ID]; !ok {
			return apperrors.NewNotFound("category", item.ID.String())
		}
	}
	for _, item := range items {
		r.categories[item.ID].SortOrder = item.SortOrder
	}
	return nil
}

type fakeProductRepo struct {
	products     map[uuid.UUID]*models.Product
	activeCounts map[uuid.UUID]int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:     make(map[uuid.UUID]*models.Product),
		activeCounts: make(map[uuid.UUID]int64),
	}
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NewNotFound("product", id.String())
	}
	cp := *product
	return &cp, nil
}

func (r *fakeProductRepo) GetBySlug(_ context.Context, slug string) (*models.Product, error) {
	for _, product := range r.products {
		if product.Slug == slug {
			cp := *product
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("product", slug)
}

func (r *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return apperrors.NewNotFound("product", product.ID.String())
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return apperrors.NewNotFound("product", id.String())
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ repositories.ProductFilter, _, _ int) ([]*models.Product, int64, error) {
	var out []*models.Product
	for _, product := range r.products {
		cp := *product
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) CountActiveByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	return r.activeCounts[categoryID], nil
}

func (r *fakeProductRepo) CountActivePerCategory(_ context.Context) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(r.activeCounts))
	for id, count := range r.activeCounts {
		out[id] = count
	}
	return out, nil
}

type fakeNavigationRepo struct {
	items map[uuid.UUID]*models.NavigationItem
	seq   map[uuid.UUID]int
	next  int
}

func newFakeNavigationRepo() *fakeNavigationRepo {
	return &fakeNavigationRepo{
		items: make(map[uuid.UUID]*models.NavigationItem),
		seq:   make(map[uuid.UUID]int),
	}
}

func (r *fakeNavigationRepo) add(item *models.NavigationItem) *models.NavigationItem {
	cp := *item
	r.items[item.ID] = &cp
	r.next++
	r.seq[item.ID] = r.next
	return item
}

func (r *fakeNavigationRepo) Create(_ context.Context, item *models.NavigationItem) error {
	r.add(item)
	return nil
}

func (r *fakeNavigationRepo) GetByID(_ context.Context, id uuid.UUID) (*models.NavigationItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("navigation item", id.String())
	}
	cp := *item
	return &cp, nil
}

func (r *fakeNavigationRepo) Update(_ context.Context, item *models.NavigationItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return apperrors.NewNotFound("navigation item", item.ID.String())
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeNavigationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFound("navigation item", id.String())
	}
	delete(r.items, id)
	return nil
}

func (r *fakeNavigationRepo) DeleteReparenting(_ context.Context, id uuid.UUID, newParentID *uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFound("navigation item", id.String())
	}
	for _, item := range r.items {
		if item.ParentID != nil && *item.ParentID == id {
			item.ParentID = newParentID
		}
	}
	delete(r.items, id)
	return nil
}

func (r *fakeNavigationRepo) ListAll(_ context.Context, filter repositories.NavigationFilter) ([]*models.NavigationItem, error) {
	var out []*models.NavigationItem
	for _, item := range r.items {
		if filter.IsActive != nil && item.IsActive != *filter.IsActive {
			continue
		}
		if filter.ShowInNavigation != nil && item.ShowInNavigation != *filter.ShowInNavigation {
			continue
		}
		if filter.Type != nil && item.Type != *filter.Type {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return r.seq[out[i].ID] < r.seq[out[j].ID]
	})
	return out, nil
}

func (r *fakeNavigationRepo) ListChildren(ctx context.Context, parentID *uuid.UUID, filter repositories.NavigationFilter) ([]*models.NavigationItem, error) {
	all, _ := r.ListAll(ctx, filter)
	var out []*models.NavigationItem
	for _, item := range all {
		if sameParent(item.ParentID, parentID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeNavigationRepo) CountChildren(_ context.Context, id uuid.UUID) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.ParentID != nil && *item.ParentID == id {
			count++
		}
	}
	return count, nil
}

func (r *fakeNavigationRepo) GetMaxSortOrder(_ context.Context, parentID *uuid.UUID) (int, error) {
	max := 0
	for _, item := range r.items {
		if sameParent(item.ParentID, parentID) && item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max, nil
}

func (r *fakeNavigationRepo) UpdateSortOrders(_ context.Context, items []repositories.SortOrderItem) error {
	for _, item := range items {
		if _, ok := r.items[item.ID]; !ok {
			return apperrors.NewNotFound("navigation item", item.ID.String())
		}
	}
	for _, item := range items {
		r.items[item.ID].SortOrder = item.SortOrder
	}
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("user", id.String())
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("user", email)
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.NewNotFound("user", user.ID.String())
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.NewNotFound("user", id.String())
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, user := range r.users {
		cp := *user
		out = append(out, &cp)
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*models.Order
	// failCreate makes the next Create return an error
	failCreate bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	for _, existing := range r.orders {
		if existing.Number == order.Number {
			return apperrors.NewConflict("order", "number already exists: "+order.Number)
		}
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NewNotFound("order", id.String())
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) GetByNumber(_ context.Context, number string) (*models.Order, error) {
	for _, order := range r.orders {
		if order.Number == number {
			cp := *order
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("order", number)
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return apperrors.NewNotFound("order", id.String())
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.orders[id]; !ok {
		return apperrors.NewNotFound("order", id.String())
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, filter repositories.OrderFilter, _, _ int) ([]*models.Order, int64, error) {
	var out []*models.Order
	for _, order := range r.orders {
		if filter.CustomerID != nil && order.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		cp := *order
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) CountCreatedSince(_ context.Context, _ time.Time) (int64, error) {
	return int64(len(r.orders)), nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*models.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, apperrors.NewNotFound("customer", id.String())
	}
	cp := *customer
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*models.Customer, error) {
	for _, customer := range r.customers {
		if customer.Phone == phone {
			cp := *customer
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("customer", phone)
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *models.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return apperrors.NewNotFound("customer", customer.ID.String())
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _, _ int) ([]*models.Customer, int64, error) {
	var out []*models.Customer
	for _, customer := range r.customers {
		cp := *customer
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

type fakePromotionRepo struct {
	promotions map[uuid.UUID]*models.Promotion
	// incrementDenied forces IncrementUsage to report a lost race
	incrementDenied bool
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{promotions: make(map[uuid.UUID]*models.Promotion)}
}

func (r *fakePromotionRepo) add(p *models.Promotion) *models.Promotion {
	cp := *p
	r.promotions[p.ID] = &cp
	return p
}

func (r *fakePromotionRepo) Create(_ context.Context, promotion *models.Promotion) error {
	cp := *promotion
	r.promotions[promotion.ID] = &cp
	return nil
}

func (r *fakePromotionRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Promotion, error) {
	promotion, ok := r.promotions[id]
	if !ok {
		return nil, apperrors.NewNotFound("promotion", id.String())
	}
	cp := *promotion
	return &cp, nil
}

func (r *fakePromotionRepo) GetByCode(_ context.Context, code string) (*models.Promotion, error) {
	for _, promotion := range r.promotions {
		if promotion.Code == code {
			cp := *promotion
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFound("promotion", code)
}

func (r *fakePromotionRepo) Update(_ context.Context, promotion *models.Promotion) error {
	if _, ok := r.promotions[promotion.ID]; !ok {
		return apperrors.NewNotFound("promotion", promotion.ID.String())
	}
	cp := *promotion
	r.promotions[promotion.ID] = &cp
	return nil
}

func (r *fakePromotionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.promotions[id]; !ok {
		return apperrors.NewNotFound("promotion", id.String())
	}
	delete(r.promotions, id)
	return nil
}

func (r *fakePromotionRepo) List(_ context.Context) ([]*models.Promotion, error) {
	var out []*models.Promotion
	for _, promotion := range r.promotions {
		cp := *promotion
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePromotionRepo) IncrementUsage(_ context.Context, id uuid.UUID) (bool, error) {
	promotion, ok := r.promotions[id]
	if !ok {
		return false, apperrors.NewNotFound("promotion", id.String())
	}
	if r.incrementDenied || !promotion.HasUsageLeft() {
		return false, nil
	}
	promotion.UsedCount++
	return true, nil
}

func (r *fakePromotionRepo) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, promotion := range r.promotions {
		if promotion.IsActive && promotion.EndsAt != nil && now.After(*promotion.EndsAt) {
			promotion.IsActive = false
			count++
		}
	}
	return count, nil
}
