package app

import (
	"errors"
	"strings"
	"testing"
)

func TestParseVerbs(t *testing.T) {
	cases := []struct {
		raw  string
		verb Verb
		args []string
	}{
		{"AddMember Jane Parents", VerbAddMember, []string{"Jane", "Parents"}},
		{"ADDMEMBER Jane Parents 400", VerbAddMember, []string{"Jane", "Parents", "400"}},
		{"markpaid Jane August", VerbMarkPaid, []string{"Jane", "August"}},
		{"Report August", VerbReport, []string{"August"}},
		{"addmonth September", VerbAddMonth, []string{"September"}},
		{"InitDB", VerbInitDB, nil},
		{"listmembers", VerbListMembers, nil},
		{"HELP", VerbHelp, nil},
		{"  MarkPaid   Jane   August  ", VerbMarkPaid, []string{"Jane", "August"}},
	}
	for _, tc := range cases {
		verb, args, err := Parse(tc.raw)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", tc.raw, err)
		}
		if verb != tc.verb {
			t.Errorf("Parse(%q): verb = %q, want %q", tc.raw, verb, tc.verb)
		}
		if len(args) != len(tc.args) {
			t.Fatalf("Parse(%q): args = %v, want %v", tc.raw, args, tc.args)
		}
		for i := range args {
			if args[i] != tc.args[i] {
				t.Errorf("Parse(%q): args[%d] = %q, want %q", tc.raw, i, args[i], tc.args[i])
			}
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if _, _, err := Parse("   "); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("want ErrEmptyCommand, got %v", err)
	}
}

func TestParseUnknownVerb(t *testing.T) {
	if _, _, err := Parse("frobnicate August"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("want ErrUnknownCommand, got %v", err)
	}
}

func TestParseMissingArgs(t *testing.T) {
	cases := []string{"AddMember Jane", "MarkPaid Jane", "Report", "AddMonth"}
	for _, raw := range cases {
		_, _, err := Parse(raw)
		var badArgs *BadArgsError
		if !errors.As(err, &badArgs) {
			t.Fatalf("Parse(%q): want BadArgsError, got %v", raw, err)
		}
		if !strings.HasPrefix(badArgs.Usage(), "Usage:") {
			t.Errorf("Parse(%q): usage = %q", raw, badArgs.Usage())
		}
	}
}

func TestIsMutating(t *testing.T) {
	for _, v := range []Verb{VerbAddMember, VerbMarkPaid, VerbAddMonth, VerbInitDB} {
		if !IsMutating(v) {
			t.Errorf("%s should be mutating", v)
		}
	}
	for _, v := range []Verb{VerbReport, VerbListMembers, VerbHelp} {
		if IsMutating(v) {
			t.Errorf("%s should not be mutating", v)
		}
	}
}
