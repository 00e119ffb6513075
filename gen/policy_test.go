package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReplacementPolicy(t *testing.T) {
	tests := []struct {
		name    string
		want    ReplacementPolicy
		wantErr bool
	}{
		{"with", WithReplacement, false},
		{"without", WithoutReplacement, false},
		{"", "", true},
		{"WITH", "", true}, // case-sensitive
		{"replace", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReplacementPolicy(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReplacementPolicy(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseReplacementPolicy(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestValidReplacementPolicyNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"with", "without"}, ValidReplacementPolicyNames())
}
