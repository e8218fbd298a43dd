package domain

import "testing"

func TestAvailabilityDecode(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"valid list", `["Monday","Wednesday"]`, []string{"Monday", "Wednesday"}},
		{"empty list", `[]`, nil},
		{"empty string", "", nil},
		{"malformed json", `{"Monday"`, nil},
		{"wrong shape", `{"days":["Monday"]}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tech := Technician{AvailabilityJSON: tc.raw}
			got := tech.Availability()
			if len(got) != len(tc.want) {
				t.Fatalf("Availability() = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Availability() = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestWorksOn(t *testing.T) {
	tech := Technician{AvailabilityJSON: `["Monday","Wednesday"]`}
	if !tech.WorksOn("Monday") {
		t.Fatalf("expected Monday to be a working day")
	}
	if tech.WorksOn("Tuesday") {
		t.Fatalf("Tuesday should not be a working day")
	}

	broken := Technician{AvailabilityJSON: `not json`}
	if broken.WorksOn("Monday") {
		t.Fatalf("malformed availability must mean never available")
	}
}

func TestQualifiedServiceIDs(t *testing.T) {
	tech := Technician{Services: []Service{{ID: 3}, {ID: 7}}}
	ids := tech.QualifiedServiceIDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 qualified services, got %d", len(ids))
	}
	if _, ok := ids[7]; !ok {
		t.Fatalf("expected service 7 in qualification set")
	}

	none := Technician{}
	if len(none.QualifiedServiceIDs()) != 0 {
		t.Fatalf("technician without qualifications must offer nothing")
	}
}

func TestCategoryOrDefault(t *testing.T) {
	if got := (Service{Category: "Manicure"}).CategoryOrDefault(); got != "Manicure" {
		t.Fatalf("expected Manicure, got %s", got)
	}
	if got := (Service{}).CategoryOrDefault(); got != "Other" {
		t.Fatalf("expected Other, got %s", got)
	}
}
