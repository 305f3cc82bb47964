package extract

import (
	"context"
	"reflect"
	"testing"
)

func treeExtract(t *testing.T, path, src string, opts Options) []string {
	t.Helper()
	got, err := NewTreeExtractor().Extract(context.Background(), SourceUnit{
		Path:    path,
		Content: []byte(src),
	}, opts)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	return got
}

func TestTreeStringLiterals(t *testing.T) {
	src := "const t = \"基本提示\";\nalert('第二条');\n"
	want := []string{"基本提示", "第二条"}
	if got := treeExtract(t, "app.js", src, DefaultOptions()); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTreeObjectKeysExcluded(t *testing.T) {
	src := "const m = { '确认': '确认操作', 取消: '取消操作' };\n"
	want := []string{"确认操作", "取消操作"}
	if got := treeExtract(t, "labels.ts", src, DefaultOptions()); !reflect.DeepEqual(got, want) {
		t.Errorf("keys must not be extracted, got %v, want %v", got, want)
	}
}

func TestTreeEnumMembers(t *testing.T) {
	src := "enum Status {\n  待处理 = '等待处理',\n  已完成 = '处理完成',\n}\n"

	want := []string{"等待处理", "处理完成"}
	if got := treeExtract(t, "status.ts", src, DefaultOptions()); !reflect.DeepEqual(got, want) {
		t.Errorf("default options: got %v, want values only %v", got, want)
	}

	opts := DefaultOptions()
	opts.EnumKeys = true
	want = []string{"待处理", "等待处理", "已完成", "处理完成"}
	if got := treeExtract(t, "status.ts", src, opts); !reflect.DeepEqual(got, want) {
		t.Errorf("with enum keys: got %v, want %v", got, want)
	}
}

func TestTreeConsoleArguments(t *testing.T) {
	src := "console.error(`保存失败${code}`);\nconst ok = '保存成功';\n"

	if got := treeExtract(t, "save.ts", src, DefaultOptions()); !reflect.DeepEqual(got, []string{"保存成功"}) {
		t.Errorf("console arguments should be excluded, got %v", got)
	}

	opts := DefaultOptions()
	opts.ConsoleArgs = true
	want := []string{"保存失败", "保存成功"}
	if got := treeExtract(t, "save.ts", src, opts); !reflect.DeepEqual(got, want) {
		t.Errorf("with console on: got %v, want %v", got, want)
	}
}

func TestTreeTemplateSegments(t *testing.T) {
	src := "const w = `用户${user}已在分支${branch}中存在`;\n"
	want := []string{"用户", "已在分支", "中存在"}
	if got := treeExtract(t, "warn.ts", src, DefaultOptions()); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTreeTemplateSubstitutionStrings(t *testing.T) {
	src := "const s = `状态${ok ? '成功' : '失败'}结束`;\n"
	want := []string{"状态", "成功", "失败", "结束"}
	if got := treeExtract(t, "state.ts", src, DefaultOptions()); !reflect.DeepEqual(got, want) {
		t.Errorf("substitution subtrees should be walked in source order, got %v, want %v", got, want)
	}
}

func TestTreeJSXText(t *testing.T) {
	src := "const C = () => <div title=\"悬停提示\">点击按钮</div>;\n"

	want := []string{"悬停提示", "点击按钮"}
	if got := treeExtract(t, "button.tsx", src, DefaultOptions()); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	opts := DefaultOptions()
	opts.JSXText = false
	if got := treeExtract(t, "button.tsx", src, opts); !reflect.DeepEqual(got, []string{"悬停提示"}) {
		t.Errorf("with jsx text off: got %v", got)
	}
}

func TestTreeComments(t *testing.T) {
	src := "// 中文注释说明\nconst x = '其他内容';\n"

	if got := treeExtract(t, "doc.ts", src, DefaultOptions()); !reflect.DeepEqual(got, []string{"其他内容"}) {
		t.Errorf("comments excluded by default, got %v", got)
	}

	opts := DefaultOptions()
	opts.Comments = true
	want := []string{"中文注释说明", "其他内容"}
	if got := treeExtract(t, "doc.ts", src, opts); !reflect.DeepEqual(got, want) {
		t.Errorf("with comments on: got %v, want %v", got, want)
	}
}

func TestTreeEscapedSequencesRejected(t *testing.T) {
	src := `const s = '第一行\n第二行';` + "\n"
	if got := treeExtract(t, "multi.ts", src, DefaultOptions()); len(got) != 0 {
		t.Errorf("literal escapes mark a code-shaped string, got %v", got)
	}
}
