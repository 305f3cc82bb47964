package phrase

import (
	"reflect"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"passthrough", "操作成功", []string{"操作成功"}},
		{"leading emoji", "✅ 操作成功", []string{"操作成功"}},
		{"celebration emoji", "🎉 恭喜你通过审核", []string{"恭喜你通过审核"}},
		{"boundary brackets", "【提示】", []string{"提示"}},
		{"clause split", "用户名为空，请重新输入。", []string{"用户名为空", "请重新输入"}},
		{"colon split", "错误：网络连接失败", []string{"错误", "网络连接失败"}},
		{"latin stripped", "实例aa数", []string{"实例数"}},
		{"interpolation remnant", "用户${name}不存在", []string{"用户不存在"}},
		{"dangling open bracket", "用户【", []string{"用户"}},
		{"no han", "hello world", nil},
		{"punct only", "！！！", nil},
		{"empty", "", nil},
	}
	for _, c := range cases {
		got := Clean(c.input)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: Clean(%q) = %v, want %v", c.name, c.input, got, c.want)
		}
	}
}

func TestCleanDropsOverlongSegments(t *testing.T) {
	if got := Clean(strings.Repeat("字", 21)); len(got) != 0 {
		t.Errorf("a 21-rune segment should be dropped, got %v", got)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"✅ 操作成功",
		"用户名为空，请重新输入。",
		"【提示】确认删除吗？",
		"错误：网络连接失败，请稍后重试",
	}
	for _, input := range inputs {
		for _, p := range Clean(input) {
			again := Clean(p)
			if len(again) != 1 || again[0] != p {
				t.Errorf("Clean(%q) = %v, want [%q]", p, again, p)
			}
		}
	}
}
