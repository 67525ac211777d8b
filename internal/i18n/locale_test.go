package i18n

import (
	"testing"
)

func TestChineseLocale(t *testing.T) {
	Init("zh-Hans")
	t.Cleanup(func() { Init("en") })

	tests := []struct {
		id     string
		def    string
		wantZh string
	}{
		{"table.turns", "Turns", "轮次"},
		{"resume.invalidSelection", "Invalid selection", "无效的选择"},
		{"picker.cancelled", "Cancelled.", "已取消。"},
		{"common.time.justNow", "just now", "刚刚"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := T(tt.id, tt.def)
			if got != tt.wantZh {
				t.Errorf("T(%q) = %q, want %q", tt.id, got, tt.wantZh)
			}
		})
	}
}

func TestEnglishDoesNotReturnChinese(t *testing.T) {
	Init("en")

	got := T("table.turns", "Turns")
	if got != "Turns" {
		t.Errorf("English T(table.turns) = %q, want %q", got, "Turns")
	}
}

func TestLocaleSwitch(t *testing.T) {
	Init("en")
	en := T("table.summary", "Summary")
	if en != "Summary" {
		t.Errorf("English table.summary = %q, want %q", en, "Summary")
	}

	Init("zh-Hans")
	zh := T("table.summary", "Summary")
	if zh != "摘要" {
		t.Errorf("Chinese table.summary = %q, want %q", zh, "摘要")
	}

	Init("en")
	en2 := T("table.summary", "Summary")
	if en2 != "Summary" {
		t.Errorf("English table.summary after switch = %q, want %q", en2, "Summary")
	}
}

func TestChinesePrompt(t *testing.T) {
	Init("zh-Hans")
	t.Cleanup(func() { Init("en") })

	got := Tf("resume.prompt", "\nResume which? (1-%d or 'q' to quit): ", 3)
	if got != "\n恢复哪个会话？(1-3，输入 'q' 退出): " {
		t.Errorf("Tf(resume.prompt) = %q", got)
	}
}

func TestUntranslatedKeyFallsBack(t *testing.T) {
	Init("zh-Hans")
	t.Cleanup(func() { Init("en") })

	got := T("some.untranslated.key", "English fallback")
	if got != "English fallback" {
		t.Errorf("untranslated key = %q, want %q", got, "English fallback")
	}
}
