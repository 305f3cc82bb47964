package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBaiduSign(t *testing.T) {
	// Worked example from the API documentation.
	got := baiduSign("2015063000000001", "apple", "1435660288", "12345678")
	want := "f89f9594663708c1605f3d736d01d2d4"
	if got != want {
		t.Errorf("baiduSign = %q, want %q", got, want)
	}
}

func TestBaiduBatchTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.PostFormValue("appid") != "app-1" {
			t.Errorf("appid = %q", r.PostFormValue("appid"))
		}
		if r.PostFormValue("sign") == "" {
			t.Error("request must be signed")
		}
		if r.PostFormValue("q") != "确定\n取消" {
			t.Errorf("q = %q", r.PostFormValue("q"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"from":"zh","to":"en","trans_result":[{"src":"确定","dst":"OK"},{"src":"取消","dst":"Cancel"}]}`))
	}))
	defer srv.Close()

	c := NewBaiduClient(Config{BaiduAppID: "app-1", BaiduSecret: "secret", BatchSize: 10})
	c.http.SetBaseURL(srv.URL)

	got, err := c.BatchTranslate(context.Background(), []string{"确定", "取消"})
	if err != nil {
		t.Fatalf("BatchTranslate: %v", err)
	}
	if got["确定"] != "OK" || got["取消"] != "Cancel" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestBaiduErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error_code":"54001","error_msg":"Invalid Sign"}`))
	}))
	defer srv.Close()

	c := NewBaiduClient(Config{BaiduAppID: "app-1", BaiduSecret: "bad", BatchSize: 10})
	c.http.SetBaseURL(srv.URL)

	_, err := c.BatchTranslate(context.Background(), []string{"确定"})
	if err == nil {
		t.Fatal("expected an error for a rejected request")
	}
}

func TestBaiduLang(t *testing.T) {
	cases := map[string]string{
		"zh-CN": "zh",
		"zh":    "zh",
		"en-US": "en",
		"en":    "en",
		"jp":    "jp",
	}
	for in, want := range cases {
		if got := baiduLang(in); got != want {
			t.Errorf("baiduLang(%q) = %q, want %q", in, got, want)
		}
	}
}
