package label_test

import (
	"testing"

	"github.com/daveycodez/better-auth-instantdb/pkg/label"
	"github.com/google/go-cmp/cmp"
)

func TestDeriveLinksSkipsBlankFields(t *testing.T) {
	refs := []label.Reference{
		{Field: "  ", Target: "User"},
		{Field: "userId", Target: "User"},
		{Field: "", Target: "Organization"},
	}
	got := label.DeriveLinks("account", refs)
	want := []label.Link{
		{Model: "account", Field: "userId", Target: "User", Label: "user"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DeriveLinks mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveLinksEmpty(t *testing.T) {
	got := label.DeriveLinks("user", nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
