package helpers

import (
	"testing"
)

type tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestDecodeAggregate(t *testing.T) {
	structured := []interface{}{
		map[string]interface{}{"id": float64(3), "name": "Go"},
	}

	cases := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"nil", nil, 0},
		{"structured sequence", structured, 1},
		{"typed sequence", []tag{{ID: 1, Name: "SQL"}, {ID: 2, Name: "Go"}}, 2},
		{"json string", `[{"id":1,"name":"SQL"}]`, 1},
		{"json bytes", []byte(`[{"id":1,"name":"SQL"},{"id":2,"name":"Go"}]`), 2},
		{"json null", "null", 0},
		{"broken json", `[{"id":`, 0},
		{"json object instead of array", `{"id":1}`, 0},
		{"unexpected type", 42, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeAggregate[tag](tc.value)
			if got == nil {
				t.Fatalf("expected empty slice, got nil")
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d items, got %d (%v)", tc.want, len(got), got)
			}
		})
	}
}

func TestDecodeAggregateKeepsValues(t *testing.T) {
	got := DecodeAggregate[tag]([]interface{}{map[string]interface{}{"id": float64(3), "name": "Go"}})
	if got[0].ID != 3 || got[0].Name != "Go" {
		t.Fatalf("unexpected decode %+v", got[0])
	}
}

func TestPgDate(t *testing.T) {
	d, err := PgDate("2020-09-01")
	if err != nil || !d.Valid || d.Time.Year() != 2020 {
		t.Fatalf("unexpected date %+v, err %v", d, err)
	}
	empty, err := PgDate("")
	if err != nil || empty.Valid {
		t.Fatalf("expected NULL date for empty input")
	}
	if _, err := PgDate("2020-13-40"); err == nil {
		t.Fatalf("expected parse error")
	}
}
