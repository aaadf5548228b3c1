// Package i18n localizes UI chrome (tabs, sidebar headings, status text).
// Agent reply strings are deliberately NOT localized: the engine's response
// phrasing is a tested contract and stays English regardless of locale.
package i18n

import (
	"fmt"
	"os"
	"strings"
)

// I18n 界面文案目录 / I18n is a UI label catalog for one locale.
type I18n struct {
	locale   string
	messages map[string]string
}

// New 创建 i18n 实例 / New creates an i18n instance. An empty locale is
// auto-detected from the environment.
func New(locale string) *I18n {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DetectLocale()
	}
	locale = normalizeLocale(locale)

	i := &I18n{
		locale:   locale,
		messages: make(map[string]string, len(enMessages)),
	}

	// 先加载英文作为 fallback / Load English as fallback first
	for k, v := range enMessages {
		i.messages[k] = v
	}
	if locale == "zh-CN" || locale == "zh" {
		for k, v := range zhCNMessages {
			i.messages[k] = v
		}
	}
	return i
}

// T 翻译函数 / Translation function
func (i *I18n) T(key string, args ...any) string {
	tmpl, ok := i.messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Locale returns the normalized locale.
func (i *I18n) Locale() string {
	return i.locale
}

// DetectLocale 自动检测 locale / DetectLocale auto-detects the locale from
// the environment.
func DetectLocale() string {
	for _, env := range []string{"TODO_LANG", "LANG", "LC_ALL", "LC_MESSAGES"} {
		v := strings.TrimSpace(os.Getenv(env))
		if v == "" {
			continue
		}
		return normalizeLocale(v)
	}
	return "en"
}

func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "en"
	}
	// 去掉 .UTF-8 等后缀 / Remove .UTF-8 suffix
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.ReplaceAll(s, "_", "-")
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, "zh") {
		return "zh-CN"
	}
	if strings.HasPrefix(lower, "en") {
		return "en"
	}
	return s
}
