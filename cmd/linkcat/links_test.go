package main

import (
	"io"
	"strings"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		url     string
		want    linkKey
		wantErr bool
	}{
		{"id", []string{"12"}, "", linkKey{id: 12}, false},
		{"url", nil, "https://example.com", linkKey{url: "https://example.com"}, false},
		{"neither", nil, "", linkKey{}, true},
		{"both", []string{"12"}, "https://example.com", linkKey{}, true},
		{"not a number", []string{"abc"}, "", linkKey{}, true},
		{"zero", []string{"0"}, "", linkKey{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseKey(tt.args, tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseKey err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseKey = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLinksCmd_Subcommands(t *testing.T) {
	cmd := newLinksCmd()
	for _, name := range []string{"create", "get", "list", "update", "delete", "search"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub.Name() != name {
			t.Errorf("links %s not registered (%v)", name, err)
		}
	}
}

func TestLinksCreateCmd_RequiresLanguage(t *testing.T) {
	cmd := newLinksCreateCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--url", "https://example.com", "--title", "Example"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), `"lang"`) {
		t.Errorf("Execute without --lang = %v, want required flag error naming lang", err)
	}
}
