package slug

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMakeCharset(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"plain", "Intro to Go"},
		{"punctuation", "Hello, World! (Part 2)"},
		{"mixed case", "REST APIs & You"},
		{"extra whitespace", "  spaced   out \t title "},
		{"unicode symbols", "50% off — act now™"},
		{"han characters", "Go 语言入门"},
		{"symbols only", "!!! ???"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.title)
			if !slugPattern.MatchString(got) {
				t.Errorf("Make(%q) = %q, contains characters outside [a-z0-9-] or stray hyphens", tt.title, got)
			}
			if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
				t.Errorf("Make(%q) = %q, has leading/trailing hyphen", tt.title, got)
			}
		})
	}
}

func TestMakeUniqueForIdenticalTitles(t *testing.T) {
	first := Make("Intro to Go")
	time.Sleep(time.Millisecond)
	second := Make("Intro to Go")
	if first == second {
		t.Fatalf("two slugs for the same title collided: %q", first)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Intro to Go", "intro-to-go"},
		{"Hello, World!", "hello-world"},
		{"  spaced   out  ", "spaced-out"},
		{"C++ in 21 Days", "c-in-21-days"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.title); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestMakeAtAppendsBase36Timestamp(t *testing.T) {
	now := time.Unix(0, 1234567890)
	got := makeAt("Intro to Go", now)
	want := "intro-to-go-kf12oi"
	if got != want {
		t.Errorf("makeAt = %q, want %q", got, want)
	}
}
