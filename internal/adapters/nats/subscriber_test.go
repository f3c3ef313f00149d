package natsadapter

import "testing"

func TestParseCatalogUpdated(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"25", 25, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"many", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseCatalogUpdated([]byte(tc.in))
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseCatalogUpdated(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCatalogUpdated(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestStreamsCoverSubjects(t *testing.T) {
	subjects := map[string]bool{}
	for _, s := range Streams() {
		for _, subj := range s.Subjects {
			subjects[subj] = true
		}
	}
	for _, want := range []string{"stayfinder.search.>", "stayfinder.listing.>", "stayfinder.catalog.>"} {
		if !subjects[want] {
			t.Errorf("no stream for %s", want)
		}
	}
}
