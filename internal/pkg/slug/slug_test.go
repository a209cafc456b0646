package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Latest Jobs", "latest-jobs"},
		{"UP Police Constable Online Form 2026", "up-police-constable-online-form-2026"},
		{"  --Admit Card--  ", "admit-card"},
		{"SSC  GD /// Result", "ssc-gd-result"},
		{"Ünïcödé Title", "n-c-d-title"},
		{"", ""},
		{"---", ""},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyIdempotentAndWellFormed(t *testing.T) {
	inputs := []string{
		"Railway RRB Technician Exam Date 2026",
		"a__b__c",
		"-x-",
		"100% Free!!",
		"tab\tand\nnewline",
		"日本語 text",
		"MiXeD CaSe 42",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "not idempotent for %q", in)
		assert.NotContains(t, once, "--")
		if once != "" {
			assert.NotEqual(t, '-', rune(once[0]))
			assert.NotEqual(t, '-', rune(once[len(once)-1]))
		}
		for _, r := range once {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "unexpected rune %q in %q", r, once)
		}
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("latest-jobs"))
	assert.False(t, Valid("Latest Jobs"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("-lead"))
}
