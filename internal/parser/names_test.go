package parser

import "testing"

func TestDefaultQueryName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"2_get-user.sql", "getUser"},
		{"get-user.sql", "getUser"},
		{"queries/get_user.sql", "getUser"},
		{"/abs/path/ListOrders.sql", "listOrders"},
		{"users.sql", "users"},
		{"__9-2_mark-invoice-paid.sql", "markInvoicePaid"},
		{"user2email.sql", "user2email"},
		{"123.sql", "query"},
		{"", "query"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got := DefaultQueryName(tt.source)
			if got != tt.want {
				t.Errorf("DefaultQueryName(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestSynthesizeNames_SingleQuery(t *testing.T) {
	queries := []Query{{}}
	synthesizeNames(queries, "2_get-user.sql")
	if queries[0].Name != "getUser" {
		t.Errorf("name = %q, want %q", queries[0].Name, "getUser")
	}
}

func TestSynthesizeNames_MultiQueryIndexSuffix(t *testing.T) {
	queries := []Query{{}, {Name: "declared"}, {}}
	synthesizeNames(queries, "2_get-user.sql")

	if queries[0].Name != "getUser_0" {
		t.Errorf("first name = %q, want %q", queries[0].Name, "getUser_0")
	}
	if queries[1].Name != "declared" {
		t.Errorf("declared name altered to %q", queries[1].Name)
	}
	if queries[2].Name != "getUser_2" {
		t.Errorf("third name = %q, want %q", queries[2].Name, "getUser_2")
	}
}
