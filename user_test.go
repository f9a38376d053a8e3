package zammad

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsCustomer(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{
			name: "customer with external address",
			user: User{RoleIDs: []int{3}, Email: "a@other.com"},
			want: true,
		},
		{
			name: "customer role among others",
			user: User{RoleIDs: []int{2, 3}, Email: "a@other.com"},
			want: true,
		},
		{
			name: "customer with zammad.org address",
			user: User{RoleIDs: []int{3}, Email: "a@zammad.org"},
			want: false,
		},
		{
			name: "agent without customer role",
			user: User{RoleIDs: []int{2}, Email: "a@other.com"},
			want: false,
		},
		{
			name: "no roles at all",
			user: User{Email: "a@other.com"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCustomer(tt.user); got != tt.want {
				t.Errorf("IsCustomer(%+v) = %v, want %v", tt.user, got, tt.want)
			}
		})
	}
}

func TestClient_Me(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/me" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/v1/users/me")
		}

		w.Write([]byte(`{
			"id": 3,
			"login": "agent@company.com",
			"email": "agent@company.com",
			"role_ids": [2],
			"active": true,
			"last_login": null
		}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	got, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}

	want := &User{
		ID:      3,
		Login:   "agent@company.com",
		Email:   "agent@company.com",
		RoleIDs: []int{2},
		Active:  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Me() mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_AllUsers(t *testing.T) {
	var gotQueries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQueries = append(gotQueries, r.URL.RawQuery)

		switch r.URL.Query().Get("page") {
		case "1":
			w.Write(usersJSON(20))
		default:
			w.Write([]byte(`[{"id": 21, "login": "last"}]`))
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	users, err := c.AllUsers(context.Background(), 0)
	if err != nil {
		t.Fatalf("AllUsers() error = %v", err)
	}

	if len(users) != 21 {
		t.Errorf("expected 21 users, got %d", len(users))
	}

	wantQueries := []string{"page=1&per_page=20", "page=2&per_page=20"}
	if diff := cmp.Diff(wantQueries, gotQueries); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
}

// usersJSON renders a page of n minimal user objects.
func usersJSON(n int) []byte {
	users := make([]User, n)
	for i := range users {
		users[i].ID = i + 1
	}

	out, _ := json.Marshal(users)
	return out
}
