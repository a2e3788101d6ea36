package model

import "testing"

func TestLaundryClaimed(t *testing.T) {
	cases := []struct {
		name    string
		userID  int64
		claimed bool
	}{
		{"unclaimed", UnclaimedUserID, false},
		{"claimed", 42, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := Laundry{UserID: tc.userID}
			if l.Claimed() != tc.claimed {
				t.Fatalf("expected claimed=%v for user id %d", tc.claimed, tc.userID)
			}
		})
	}
}

func TestLaundryDetailOwnerOptional(t *testing.T) {
	detail := LaundryDetail{Laundry: Laundry{ID: 1}, Shop: Shop{ID: 2}}
	if detail.User != nil {
		t.Fatal("expected no owner on fresh detail")
	}

	detail.User = &User{ID: 3, Username: "alice"}
	if !detail.Claimed() && detail.User == nil {
		t.Fatal("expected owner to be attachable")
	}
}
