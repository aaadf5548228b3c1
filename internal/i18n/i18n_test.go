package i18n

import "testing"

func TestNewDefaultsToEnglish(t *testing.T) {
	i := New("en")
	if i.Locale() != "en" {
		t.Fatalf("locale=%q", i.Locale())
	}
	if got := i.T("panel.todos"); got != "Todos" {
		t.Fatalf("panel.todos=%q", got)
	}
}

func TestNormalizeLocale(t *testing.T) {
	cases := []struct{ in, want string }{
		{"zh_CN.UTF-8", "zh-CN"},
		{"zh", "zh-CN"},
		{"zh-TW", "zh-CN"},
		{"en_US.UTF-8", "en"},
		{"EN", "en"},
	}
	for _, c := range cases {
		if got := New(c.in).Locale(); got != c.want {
			t.Fatalf("New(%q).Locale()=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestChineseCatalogOverlaysEnglish(t *testing.T) {
	i := New("zh_CN.UTF-8")
	if got := i.T("panel.todos"); got != "待办" {
		t.Fatalf("panel.todos=%q", got)
	}
	// Keys missing from the zh catalog would fall back to English; every key
	// present in en must resolve to something non-empty.
	for key := range enMessages {
		if i.T(key) == key {
			t.Fatalf("key %q unresolved", key)
		}
	}
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	if got := New("en").T("no.such.key"); got != "no.such.key" {
		t.Fatalf("got %q", got)
	}
}

func TestDetectLocaleFromEnv(t *testing.T) {
	t.Setenv("TODO_LANG", "zh_CN.UTF-8")
	if got := DetectLocale(); got != "zh-CN" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("TODO_LANG", "")
	t.Setenv("LANG", "en_US.UTF-8")
	if got := DetectLocale(); got != "en" {
		t.Fatalf("got %q", got)
	}
}
