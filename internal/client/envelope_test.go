package client

import "testing"

type row struct {
	ID string `json:"id"`
}

func TestNormalizeList_BareArray(t *testing.T) {
	items, err := NormalizeList[row]([]byte(`[{"id":"a"},{"id":"b"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestNormalizeList_Envelope(t *testing.T) {
	payload := []byte(`{"count":2,"next":null,"previous":null,"results":[{"id":"a"},{"id":"b"}]}`)
	items, err := NormalizeList[row](payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestNormalizeList_UnrecognisedShapes(t *testing.T) {
	cases := map[string]string{
		"null":            `null`,
		"empty":           ``,
		"object no list":  `{"count":3}`,
		"null results":    `{"results":null}`,
		"scalar":          `42`,
		"string":          `"nope"`,
		"empty envelope":  `{}`,
		"empty bare list": `[]`,
	}
	for name, payload := range cases {
		items, err := NormalizeList[row]([]byte(payload))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if items == nil {
			t.Fatalf("%s: expected non-nil empty slice", name)
		}
		if len(items) != 0 {
			t.Fatalf("%s: expected empty, got %+v", name, items)
		}
	}
}

func TestNormalizeList_MalformedArray(t *testing.T) {
	if _, err := NormalizeList[row]([]byte(`[{"id":`)); err == nil {
		t.Fatalf("expected decode error for malformed array")
	}
}
