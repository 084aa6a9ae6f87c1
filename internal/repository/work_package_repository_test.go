package repository

import (
	"strings"
	"testing"

	"github.com/unclebandit/bizdev-backend/internal/model"
)

func TestKindIDColumnCoversEveryKind(t *testing.T) {
	seen := map[string]bool{}
	for _, kind := range model.AllArtifactKinds {
		col, err := kindIDColumn(kind)
		if err != nil {
			t.Fatalf("kind %s: unexpected error: %v", kind, err)
		}
		if seen[col] {
			t.Errorf("kind %s: column %s already used by another kind", kind, col)
		}
		seen[col] = true
	}

	if _, err := kindIDColumn("whitepaper"); err == nil {
		t.Error("expected error for unknown kind, got nil")
	}
}

func TestAttachQueryGuardsNullColumn(t *testing.T) {
	// A never-attached item may hold a NULL array; `= ANY(NULL)` is NULL and
	// the WHERE clause would drop the row, so the membership check must
	// coalesce before testing.
	q := attachQuery("blog_ids")

	if !strings.Contains(q, "COALESCE(blog_ids, '{}')") {
		t.Errorf("attach query must coalesce the id column before the membership check:\n%s", q)
	}
	if strings.Contains(q, "= ANY(blog_ids)") {
		t.Errorf("attach query must not test membership against the raw column:\n%s", q)
	}
	if !strings.Contains(q, "array_append(blog_ids, $1)") {
		t.Errorf("attach query must append to the id column:\n%s", q)
	}
}
