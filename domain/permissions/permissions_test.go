package permissions

import (
	"errors"
	"testing"

	"shop-backend/pkg/apperrors"
)

func TestForRoleKnownRoles(t *testing.T) {
	for _, role := range Roles() {
		set, err := ForRole(role)
		if err != nil {
			t.Fatalf("ForRole(%s) returned error: %v", role, err)
		}
		if len(set) == 0 {
			t.Errorf("ForRole(%s) returned an empty set", role)
		}
	}
}

func TestForRoleUnknownRole(t *testing.T) {
	_, err := ForRole(Role("INTERN"))
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
	var configErr *apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("expected ConfigError, got %T", err)
	}
}

func TestSuperAdminHasFullAccess(t *testing.T) {
	set, err := ForRole(RoleSuperAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if !set.Has(FullAccess) {
		t.Error("SUPER_ADMIN must carry the full-access wildcard")
	}
}

func TestResolveEffectiveIsSuperset(t *testing.T) {
	base, err := ForRole(RoleManager)
	if err != nil {
		t.Fatal(err)
	}
	effective, err := ResolveEffective(RoleManager, []string{OrdersDelete})
	if err != nil {
		t.Fatal(err)
	}
	for perm := range base {
		if !effective.Has(perm) {
			t.Errorf("effective set lost base permission %s", perm)
		}
	}
	if !effective.Has(OrdersDelete) {
		t.Error("effective set missing custom grant")
	}
}

func TestResolveEffectiveUnknownRole(t *testing.T) {
	if _, err := ResolveEffective(Role("GHOST"), nil); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		effective Set
		required  []string
		allowed   bool
		missing   int
	}{
		{
			name:      "exact permission present",
			effective: NewSet(CategoriesView),
			required:  []string{CategoriesView},
			allowed:   true,
		},
		{
			name:      "related permission does not satisfy",
			effective: NewSet(CategoriesView),
			required:  []string{CategoriesEdit},
			allowed:   false,
			missing:   1,
		},
		{
			name:      "wildcard satisfies everything",
			effective: NewSet(FullAccess),
			required:  []string{CategoriesDelete, UsersDelete},
			allowed:   true,
		},
		{
			name:      "all required must be present",
			effective: NewSet(OrdersView, OrdersEdit),
			required:  []string{OrdersView, OrdersDelete},
			allowed:   false,
			missing:   1,
		},
		{
			name:      "empty set denies",
			effective: NewSet(),
			required:  []string{ProductsView},
			allowed:   false,
			missing:   1,
		},
		{
			name:      "no requirements always allowed",
			effective: NewSet(),
			required:  nil,
			allowed:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.effective, tt.required...)
			if tt.allowed {
				if err != nil {
					t.Fatalf("expected allow, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected deny")
			}
			var authzErr *apperrors.AuthorizationError
			if !errors.As(err, &authzErr) {
				t.Fatalf("expected AuthorizationError, got %T", err)
			}
			if len(authzErr.Missing) != tt.missing {
				t.Errorf("expected %d missing permissions, got %v", tt.missing, authzErr.Missing)
			}
		})
	}
}

func TestRoleGrantsMatchResponsibilities(t *testing.T) {
	tests := []struct {
		role  Role
		has   []string
		lacks []string
	}{
		{
			role:  RoleManager,
			has:   []string{CategoriesView, OrdersEdit, ProductsEdit},
			lacks: []string{UsersCreate, UsersDelete},
		},
		{
			role:  RoleCRMManager,
			has:   []string{CustomersView, CallbacksEdit, OrdersView},
			lacks: []string{CategoriesDelete, UsersEdit},
		},
		{
			role:  RoleAdministrator,
			has:   []string{CategoriesDelete, UsersView},
			lacks: []string{FullAccess},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			set, err := ForRole(tt.role)
			if err != nil {
				t.Fatal(err)
			}
			for _, perm := range tt.has {
				if set.Has(perm) {
					continue
				}
				t.Errorf("%s should have %s", tt.role, perm)
			}
			for _, perm := range tt.lacks {
				if set.Has(perm) {
					t.Errorf("%s should not have %s", tt.role, perm)
				}
			}
		})
	}
}

func TestAllContainsEveryRoleGrant(t *testing.T) {
	all := All()
	for _, role := range Roles() {
		set, err := ForRole(role)
		if err != nil {
			t.Fatal(err)
		}
		for perm := range set {
			if !all.Has(perm) {
				t.Errorf("All() is missing %s granted to %s", perm, role)
			}
		}
	}
}

func TestSortedIsStable(t *testing.T) {
	set := NewSet(UsersView, CategoriesView, OrdersView)
	first := set.Sorted()
	second := set.Sorted()
	if len(first) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("Sorted() output is not stable")
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i-1] >= first[i] {
			t.Fatal("Sorted() output is not ordered")
		}
	}
}
