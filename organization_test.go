package zammad

import "testing"

func TestIsRelevantOrganization(t *testing.T) {
	tests := []struct {
		name string
		org  Organization
		want bool
	}{
		{
			name: "active organization",
			org:  Organization{Name: "ACME", Active: true},
			want: true,
		},
		{
			name: "inactive organization",
			org:  Organization{Name: "ACME", Active: false},
			want: false,
		},
		{
			name: "foundation excluded even when active",
			org:  Organization{Name: "Zammad Foundation", Active: true},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRelevantOrganization(tt.org); got != tt.want {
				t.Errorf("IsRelevantOrganization(%+v) = %v, want %v", tt.org, got, tt.want)
			}
		})
	}
}
