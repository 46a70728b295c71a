package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Date  string `validate:"omitempty,ymd"`
	Clock string `validate:"omitempty,hhmm"`
	Phone string `validate:"omitempty,phone"`
}

func TestRules(t *testing.T) {
	v := validator.New()
	if err := RegisterOn(v); err != nil {
		t.Fatalf("RegisterOn: %v", err)
	}

	cases := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"empty", sample{}, true},
		{"date", sample{Date: "2026-03-10"}, true},
		{"date without padding", sample{Date: "2026-3-10"}, false},
		{"impossible date", sample{Date: "2026-02-30"}, false},
		{"clock", sample{Clock: "09:30"}, true},
		{"clock 24h", sample{Clock: "23:59"}, true},
		{"clock out of range", sample{Clock: "24:00"}, false},
		{"clock without padding", sample{Clock: "9:30"}, false},
		{"formatted phone", sample{Phone: "(11) 99999-0000"}, true},
		{"international phone", sample{Phone: "+5511999990000"}, true},
		{"short phone", sample{Phone: "1234"}, false},
		{"letters in phone", sample{Phone: "11 9999 abcd"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.in)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("(11) 9.9999-0000"); got != "11999990000" {
		t.Fatalf("NormalizePhone = %q", got)
	}
}
