package repositories

import (
	"strings"
	"testing"

	"storefront-api/models"
)

func TestBuildProductFilterEmpty(t *testing.T) {
	where, args := BuildProductFilter(models.ProductListOptions{})
	if where != "WHERE p.is_active = TRUE" {
		t.Errorf("where = %q", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildProductFilterConjunctive(t *testing.T) {
	where, args := BuildProductFilter(models.ProductListOptions{
		Search:       "latte",
		CategorySlug: "drinks",
		CollectionID: 4,
		SpecialLabel: "sale",
	})

	for _, clause := range []string{
		"p.is_active = TRUE",
		"LOWER(p.name) LIKE LOWER($1)",
		"c.slug = $2",
		"pc.collection_id = $3",
		"p.special_label = $4",
	} {
		if !strings.Contains(where, clause) {
			t.Errorf("where missing %q: %s", clause, where)
		}
	}

	if strings.Contains(where, " OR ") {
		t.Errorf("filters must be conjunctive: %s", where)
	}
	if got := strings.Count(where, " AND "); got != 4 {
		t.Errorf("AND count = %d, want 4", got)
	}

	want := []interface{}{"%latte%", "drinks", 4, "sale"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
}

func TestBuildProductFilterSingleConstraint(t *testing.T) {
	where, args := BuildProductFilter(models.ProductListOptions{CategorySlug: "tea"})
	if !strings.Contains(where, "c.slug = $1") {
		t.Errorf("where = %q", where)
	}
	if len(args) != 1 || args[0] != "tea" {
		t.Errorf("args = %v", args)
	}
}

func TestSortClause(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{models.SortNewest, "ORDER BY p.created_at DESC"},
		{models.SortOldest, "ORDER BY p.created_at ASC"},
		{models.SortNameAsc, "ORDER BY LOWER(p.name) ASC"},
		{models.SortNameDesc, "ORDER BY LOWER(p.name) DESC"},
		{"", "ORDER BY p.created_at DESC"},
		{"drop table", "ORDER BY p.created_at DESC"},
	}

	for _, tt := range tests {
		if got := SortClause(tt.sortBy); got != tt.want {
			t.Errorf("SortClause(%q) = %q, want %q", tt.sortBy, got, tt.want)
		}
	}

	for _, key := range []string{models.SortPriceAsc, models.SortPriceDesc} {
		got := SortClause(key)
		if !strings.Contains(got, "MIN(v.price)") {
			t.Errorf("SortClause(%q) = %q, want variant-aware price ordering", key, got)
		}
	}
}
