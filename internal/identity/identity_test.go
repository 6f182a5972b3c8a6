package identity

import "testing"

func TestValidateNameDisallowedOnly(t *testing.T) {
	cases := []string{"...", "<>", ";;;", "\"\\'", "<<<>>>", ".,:;", "###"}
	for _, name := range cases {
		if msg := ValidateName(name); msg != InvalidNameMessage {
			t.Fatalf("expected %q to be invalid, got message %q", name, msg)
		}
	}
}

func TestValidateNameWhitespaceOnly(t *testing.T) {
	for _, name := range []string{" ", "   ", "\t", " \t "} {
		if msg := ValidateName(name); msg != InvalidNameMessage {
			t.Fatalf("expected whitespace name %q to be invalid", name)
		}
	}
}

func TestValidateNameControlCharacters(t *testing.T) {
	if msg := ValidateName("\x01\x02"); msg != InvalidNameMessage {
		t.Fatalf("expected control-only name to be invalid")
	}
}

func TestValidateNameAcceptsNormalContent(t *testing.T) {
	for _, name := range []string{"Jane Doe", "jane", "J.", "小林", "O'Brien"} {
		if msg := ValidateName(name); msg != "" {
			t.Fatalf("expected %q to be valid, got message %q", name, msg)
		}
	}
}

func TestValidateNameEmptyIsNotFlagged(t *testing.T) {
	if msg := ValidateName(""); msg != "" {
		t.Fatalf("empty name should not be flagged, got %q", msg)
	}
}

func TestFormat(t *testing.T) {
	got := Format("Jane Doe", "jane@example.com")
	if got != "Jane Doe <jane@example.com>" {
		t.Fatalf("unexpected ident format: %q", got)
	}
}
