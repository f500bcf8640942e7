package output

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Mercy General", "Mercy_General"},
		{"A/B\\C D", "A_B_C_D"},
		{"St. Mary's Hospital", "St._Mary's_Hospital"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNames_Single(t *testing.T) {
	folder, file := Names([]string{"Mercy General"})
	if folder != "Mercy_General" {
		t.Errorf("folder = %q", folder)
	}
	if file != "Mercy_General_aggregate.csv" {
		t.Errorf("file = %q", file)
	}
}

func TestNames_Multi(t *testing.T) {
	folder, file := Names([]string{"Alpha One", "Beta Two"})
	if folder != "Alpha_One_Beta_Two" {
		t.Errorf("folder = %q", folder)
	}
	if file != MultiFacilityFileName {
		t.Errorf("file = %q", file)
	}
}

func TestNames_MoreThanThree(t *testing.T) {
	folder, file := Names([]string{"A", "B", "C", "D", "E"})
	if folder != "A_B_C_and_2_others" {
		t.Errorf("folder = %q", folder)
	}
	if file != MultiFacilityFileName {
		t.Errorf("file = %q", file)
	}
}

func TestNames_ExactlyThree(t *testing.T) {
	folder, _ := Names([]string{"A", "B", "C"})
	if folder != "A_B_C" {
		t.Errorf("folder = %q", folder)
	}
}

func TestNames_Empty(t *testing.T) {
	folder, file := Names(nil)
	if folder != "" || file != "" {
		t.Errorf("got %q/%q, want empty", folder, file)
	}
}
