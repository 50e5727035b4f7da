package types

import "testing"

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDecodeList_BareArray(t *testing.T) {
	t.Parallel()
	r := &Response{Data: []byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`)}
	var got []item
	if err := r.DecodeList(&got); err != nil {
		t.Fatalf("DecodeList: %v", err)
	}
	if len(got) != 2 || got[1].Name != "b" {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestDecodeList_Paginated(t *testing.T) {
	t.Parallel()
	r := &Response{Data: []byte(`{"count":1,"next":null,"previous":null,"results":[{"id":7,"name":"x"}]}`)}
	var got []item
	if err := r.DecodeList(&got); err != nil {
		t.Fatalf("DecodeList: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestDecode_EmptyBody(t *testing.T) {
	t.Parallel()
	r := &Response{}
	v := item{ID: 3}
	if err := r.Decode(&v); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v.ID != 3 {
		t.Fatalf("empty body must leave target untouched")
	}
}

func TestFormatID(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{7, "7", true}, {"abc", "abc", true}, {int64(12), "12", true}, {"", "", false}, {nil, "", false},
	}
	for _, c := range cases {
		got, err := FormatID(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("FormatID(%v) = %q, %v", c.in, got, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("expected error for %v", c.in)
		}
	}
}
