package user

import "testing"

func strPtr(s string) *string { return &s }

func TestProfileCompletion(t *testing.T) {
	full := User{
		FullName:   strPtr("Abebe Bikila"),
		Email:      strPtr("abebe@example.com"),
		Phone:      strPtr("+251911234567"),
		Profession: strPtr("Runner"),
		Experience: strPtr("10 years"),
		Education:  strPtr("BSc"),
		Skills:     strPtr("endurance"),
	}

	tests := []struct {
		name string
		user User
		want int
	}{
		{name: "empty profile", user: User{}, want: 0},
		{name: "full profile", user: full, want: 100},
		{name: "one of seven", user: User{FullName: strPtr("A")}, want: 14},
		{name: "three of seven", user: User{
			FullName: strPtr("A"), Email: strPtr("a@b"), Phone: strPtr("1"),
		}, want: 43},
		{name: "empty string not counted", user: User{
			FullName: strPtr(""), Email: strPtr("a@b"),
		}, want: 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.ProfileCompletion(); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
