package postgres

import "testing"

func TestSetClause_Build(t *testing.T) {
	var set setClause
	set.add("name", "Relief Fund")
	set.add("balance", 500.0)

	query, args := set.build("funds", 3)

	wantQuery := "UPDATE funds SET name = $1, balance = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("query = %q, want %q", query, wantQuery)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[0] != "Relief Fund" || args[1] != 500.0 || args[2] != int64(3) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSetClause_ValuesNeverInSQL(t *testing.T) {
	var set setClause
	set.add("description", "'; DROP TABLE funds; --")

	query, _ := set.build("funds", 1)

	if query != "UPDATE funds SET description = $1 WHERE id = $2" {
		t.Fatalf("value leaked into SQL text: %q", query)
	}
}

func TestSetClause_Empty(t *testing.T) {
	var set setClause
	if !set.empty() {
		t.Fatal("fresh clause should be empty")
	}
	set.add("name", "x")
	if set.empty() {
		t.Fatal("clause with a column should not be empty")
	}
}
