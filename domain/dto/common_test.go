package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestOptionalUUIDUnmarshal(t *testing.T) {
	id := uuid.New()

	type payload struct {
		ParentID OptionalUUID `json:"parentId"`
	}

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   *uuid.UUID
		wantErr     bool
	}{
		{"absent field", `{}`, false, nil, false},
		{"explicit null", `{"parentId": null}`, true, nil, false},
		{"valid id", `{"parentId": "` + id.String() + `"}`, true, &id, false},
		{"garbage id", `{"parentId": "not-a-uuid"}`, false, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := json.Unmarshal([]byte(tt.body), &p)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if p.ParentID.Present != tt.wantPresent {
				t.Errorf("Present = %v, want %v", p.ParentID.Present, tt.wantPresent)
			}
			if tt.wantValue == nil {
				if p.ParentID.Value != nil {
					t.Errorf("Value = %v, want nil", p.ParentID.Value)
				}
				return
			}
			if p.ParentID.Value == nil || *p.ParentID.Value != *tt.wantValue {
				t.Errorf("Value = %v, want %v", p.ParentID.Value, tt.wantValue)
			}
		})
	}
}

func TestPaginationQueryNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"limit capped", 2, 500, 2, 100},
		{"in range untouched", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := PaginationQuery{Page: tt.page, Limit: tt.limit}
			q.Normalize()
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					q.Page, q.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
