// Package permissions holds the static role → permission-set catalog and the
// request-time authorization check. The catalog is a deployment-time security
// boundary: changing it means changing code, not data.
package permissions

import (
	"sort"

	"shop-backend/pkg/apperrors"
)

type Role string

const (
	RoleSuperAdmin    Role = "SUPER_ADMIN"
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleManager       Role = "MANAGER"
	RoleCRMManager    Role = "CRM_MANAGER"
)

// FullAccess short-circuits every permission check.
const FullAccess = "admin.full_access"

const (
	CategoriesView   = "categories.view"
	CategoriesCreate = "categories.create"
	CategoriesEdit   = "categories.edit"
	CategoriesDelete = "categories.delete"

	NavigationView   = "navigation.view"
	NavigationCreate = "navigation.create"
	NavigationEdit   = "navigation.edit"
	NavigationDelete = "navigation.delete"

	ProductsView   = "products.view"
	ProductsCreate = "products.create"
	ProductsEdit   = "products.edit"
	ProductsDelete = "products.delete"

	OrdersView   = "orders.view"
	OrdersCreate = "orders.create"
	OrdersEdit   = "orders.edit"
	OrdersDelete = "orders.delete"

	CustomersView = "customers.view"
	CustomersEdit = "customers.edit"

	CallbacksView = "callbacks.view"
	CallbacksEdit = "callbacks.edit"

	ReviewsView   = "reviews.view"
	ReviewsEdit   = "reviews.edit"
	ReviewsDelete = "reviews.delete"

	PromotionsView   = "promotions.view"
	PromotionsCreate = "promotions.create"
	PromotionsEdit   = "promotions.edit"
	PromotionsDelete = "promotions.delete"

	UsersView   = "users.view"
	UsersCreate = "users.create"
	UsersEdit   = "users.edit"
	UsersDelete = "users.delete"
)

// Set is a permission set keyed by permission string.
type Set map[string]struct{}

func NewSet(perms ...string) Set {
	s := make(Set, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

func (s Set) Has(perm string) bool {
	_, ok := s[perm]
	return ok
}

// Union returns a new set; neither receiver nor argument is modified.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// Sorted returns the permissions as a sorted slice, for stable serialization.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// rolePermissions is the catalog. Read-only after package init; call sites
// only reach it through ForRole/All/ResolveEffective, which copy.
var rolePermissions = map[Role]Set{
	RoleSuperAdmin: NewSet(
		FullAccess,
		CategoriesView, CategoriesCreate, CategoriesEdit, CategoriesDelete,
		NavigationView, NavigationCreate, NavigationEdit, NavigationDelete,
		ProductsView, ProductsCreate, ProductsEdit, ProductsDelete,
		OrdersView, OrdersCreate, OrdersEdit, OrdersDelete,
		CustomersView, CustomersEdit,
		CallbacksView, CallbacksEdit,
		ReviewsView, ReviewsEdit, ReviewsDelete,
		PromotionsView, PromotionsCreate, PromotionsEdit, PromotionsDelete,
		UsersView, UsersCreate, UsersEdit, UsersDelete,
	),
	RoleAdministrator: NewSet(
		CategoriesView, CategoriesCreate, CategoriesEdit, CategoriesDelete,
		NavigationView, NavigationCreate, NavigationEdit, NavigationDelete,
		ProductsView, ProductsCreate, ProductsEdit, ProductsDelete,
		OrdersView, OrdersCreate, OrdersEdit, OrdersDelete,
		CustomersView, CustomersEdit,
		CallbacksView, CallbacksEdit,
		ReviewsView, ReviewsEdit, ReviewsDelete,
		PromotionsView, PromotionsCreate, PromotionsEdit, PromotionsDelete,
		UsersView,
	),
	RoleManager: NewSet(
		CategoriesView, CategoriesCreate, CategoriesEdit,
		NavigationView,
		ProductsView, ProductsCreate, ProductsEdit,
		OrdersView, OrdersEdit,
		CustomersView,
		ReviewsView, ReviewsEdit,
		PromotionsView,
	),
	RoleCRMManager: NewSet(
		OrdersView, OrdersCreate, OrdersEdit,
		CustomersView, CustomersEdit,
		CallbacksView, CallbacksEdit,
		ReviewsView,
	),
}

// ParseRole validates a stored role string against the catalog.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := rolePermissions[r]; !ok {
		return "", apperrors.NewConfig("unknown role: " + s)
	}
	return r, nil
}

// Roles returns every role known to the catalog, sorted.
func Roles() []Role {
	out := make([]Role, 0, len(rolePermissions))
	for r := range rolePermissions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ForRole returns a copy of the role's base permission set. An unknown role is
// a configuration error, never a silent empty set.
func ForRole(role Role) (Set, error) {
	base, ok := rolePermissions[role]
	if !ok {
		return nil, apperrors.NewConfig("unknown role: " + string(role))
	}
	return base.Union(nil), nil
}

// All returns the union of every role's set. Used to validate permission
// strings supplied by API callers (custom permission grants).
func All() Set {
	all := Set{}
	for _, set := range rolePermissions {
		all = all.Union(set)
	}
	return all
}

// ResolveEffective is the role's base set unioned with the user's custom
// grants. The union never shrinks the base set; unknown roles fail loudly.
func ResolveEffective(role Role, custom []string) (Set, error) {
	base, err := ForRole(role)
	if err != nil {
		return nil, err
	}
	return base.Union(NewSet(custom...)), nil
}

// Authorize allows iff every required permission is present in the effective
// set, or the set carries the full-access wildcard. Pure function, no I/O.
func Authorize(effective Set, required ...string) error {
	if effective.Has(FullAccess) {
		return nil
	}
	var missing []string
	for _, perm := range required {
		if !effective.Has(perm) {
			missing = append(missing, perm)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewAuthorization(missing...)
	}
	return nil
}
