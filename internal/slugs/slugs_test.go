package slugs

import "testing"

func TestValidateName(t *testing.T) {
	valid := []string{"About", "about-us", "aboutUs", "Page2", "my_page"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "  ", "2fast", "-about", "about us", "about/us", "about.us"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"about", "About"},
		{"about-us", "AboutUs"},
		{"about_us", "AboutUs"},
		{"aboutUs", "AboutUs"},
		{"AboutUs", "AboutUs"},
		{"page2", "Page2"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := PascalCase(tt.in); got != tt.want {
				t.Fatalf("PascalCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"About", "about"},
		{"AboutUs", "aboutUs"},
		{"about-us", "aboutUs"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CamelCase(tt.in); got != tt.want {
				t.Fatalf("CamelCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRouteSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"About", "about"},
		{"AboutUs", "about-us"},
		{"about-us", "about-us"},
		{"ContactPage2", "contact-page2"},
		{"FAQ", "faq"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RouteSlug(tt.in); got != tt.want {
				t.Fatalf("RouteSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
