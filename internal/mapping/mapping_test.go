package mapping

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestMappingPreservesInsertionOrder(t *testing.T) {
	m := New()
	m.Set("乙", "b")
	m.Set("甲", "a")
	m.Set("丙", "c")

	want := []string{"乙", "甲", "丙"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
}

func TestMappingUpdateKeepsPosition(t *testing.T) {
	m := New()
	m.Set("乙", "b")
	m.Set("甲", "a")
	m.Set("乙", "B")

	want := []string{"乙", "甲"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if v, _ := m.Get("乙"); v != "B" {
		t.Fatalf("Get(乙) = %q, want %q", v, "B")
	}
}

func TestMarshalJSONOrdered(t *testing.T) {
	m := New()
	m.Set("确定", "OK")
	m.Set("取消", "Cancel")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"确定":"OK","取消":"Cancel"}`
	if string(data) != want {
		t.Fatalf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(New())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("Marshal = %s, want {}", data)
	}
}

func TestWriteFile(t *testing.T) {
	m := New()
	m.Set("保存成功", "Saved successfully")
	m.Set("删除", "Delete")

	path := filepath.Join(t.TempDir(), "translations.json")
	if err := m.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(data)

	if !strings.HasSuffix(text, "}\n") {
		t.Errorf("file should end with a newline, got %q", text[len(text)-2:])
	}
	if !strings.Contains(text, "  \"保存成功\": \"Saved successfully\"") {
		t.Errorf("file missing two-space indented entry:\n%s", text)
	}

	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal written file: %v", err)
	}
	if len(parsed) != m.Len() {
		t.Fatalf("parsed %d entries, want %d", len(parsed), m.Len())
	}
	if parsed["删除"] != "Delete" {
		t.Errorf("parsed[删除] = %q, want %q", parsed["删除"], "Delete")
	}
}
