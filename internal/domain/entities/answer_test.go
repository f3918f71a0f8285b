package entities

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "no spaces", in: "안전문", want: "안전문"},
		{name: "inner and outer spaces", in: " 고 유 어 ", want: "고유어"},
		{name: "tabs and newlines", in: "다음\t날\n", want: "다음날"},
		{name: "ideographic space", in: "새　일상", want: "새일상"},
		{name: "only whitespace", in: " \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAnswer(tt.in); got != tt.want {
				t.Errorf("NormalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		accepted []string
		want     bool
	}{
		{name: "exact", answer: "안전문", accepted: []string{"안전문"}, want: true},
		{name: "inner space", answer: "안전 문", accepted: []string{"안전문"}, want: true},
		{name: "spaces around", answer: " 고 유 어 ", accepted: []string{"고유어"}, want: true},
		{name: "accepted answer has space", answer: "다음날", accepted: []string{"다음 날", "이튿날"}, want: true},
		{name: "second accepted answer", answer: "이튿날", accepted: []string{"다음 날", "이튿날"}, want: true},
		{name: "wrong", answer: "안전망", accepted: []string{"안전문"}, want: false},
		{name: "partial", answer: "안전", accepted: []string{"안전문"}, want: false},
		{name: "case sensitive", answer: "abc", accepted: []string{"ABC"}, want: false},
		{name: "blank never matches", answer: "  ", accepted: []string{""}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.answer, tt.accepted); got != tt.want {
				t.Errorf("CheckAnswer(%q, %v) = %v, want %v", tt.answer, tt.accepted, got, tt.want)
			}
		})
	}
}
