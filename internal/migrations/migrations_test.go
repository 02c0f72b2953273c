package migrations

import (
	"strings"
	"testing"
)

func TestAllSortedAndNonEmpty(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("load migrations: %v", err)
	}
	if len(all) == 0 {
		t.Fatalf("expected at least one migration")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Fatalf("migrations out of order: %s before %s", all[i-1].Name, all[i].Name)
		}
	}
	if !strings.Contains(all[0].SQL, "CREATE TABLE IF NOT EXISTS tasks") {
		t.Fatalf("expected tasks table in %s", all[0].Name)
	}
}
