package utils

import "testing"

func TestContainsIgnoreCase(t *testing.T) {
	cases := []struct {
		str, substr string
		want        bool
	}{
		{"Soap Bar", "soap", true},
		{"Hand Soap", "SOAP", true},
		{"Shampoo", "soap", false},
		{"Soap", "", true},
		{"", "soap", false},
		{"Basmati Rice", "ati ri", true},
	}
	for _, c := range cases {
		if got := ContainsIgnoreCase(c.str, c.substr); got != c.want {
			t.Fatalf("ContainsIgnoreCase(%q, %q) = %v, want %v", c.str, c.substr, got, c.want)
		}
	}
}

func TestGetUUIDUnique(t *testing.T) {
	a, b := GetUUID(), GetUUID()
	if a == "" || a == b {
		t.Fatalf("got %q and %q", a, b)
	}
}

func TestToJSONFallsBackToNull(t *testing.T) {
	if got := string(ToJSON(map[string]string{"k": "v"})); got != `{"k":"v"}` {
		t.Fatalf("ToJSON = %s", got)
	}
	if got := string(ToJSON(make(chan int))); got != "null" {
		t.Fatalf("ToJSON on unmarshalable value = %s, want null", got)
	}
}
