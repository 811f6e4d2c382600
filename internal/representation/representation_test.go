package representation

import (
	"encoding/json"
	"strings"
	"testing"

	"hypermedia-record-api/internal/record"
)

func testRequest() RequestInfo {
	return RequestInfo{
		Method:   "GET",
		URL:      "http://api.example.org:8484/list/",
		FullHost: "http://api.example.org:8484",
	}
}

func TestFilterForms(t *testing.T) {
	forms := []Form{
		{ID: "home", Tags: ""},
		{ID: "create", Tags: "list"},
		{ID: "edit", Tags: "item"},
		{ID: "both", Tags: "list item"},
	}

	t.Run("list keeps untagged and list-tagged", func(t *testing.T) {
		got := FilterForms(forms, "list")
		want := []string{"home", "create", "both"}
		if len(got) != len(want) {
			t.Fatalf("got %d forms, want %d", len(got), len(want))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("form %d = %q, want %q", i, got[i].ID, id)
			}
		}
	})

	t.Run("empty tag keeps everything", func(t *testing.T) {
		if got := FilterForms(forms, ""); len(got) != len(forms) {
			t.Errorf("got %d forms, want all %d", len(got), len(forms))
		}
	})

	t.Run("item excludes list-only forms", func(t *testing.T) {
		for _, f := range FilterForms(forms, "item") {
			if f.ID == "create" {
				t.Error("list-only form leaked into item responses")
			}
		}
	})
}

func TestExpand(t *testing.T) {
	req := testRequest()
	item := record.Record{"id": "q1w2e3", "email": "a@b.com"}

	t.Run("fullhost and field tokens", func(t *testing.T) {
		got := Expand("{fullhost}/status/{id}", item, req)
		want := "http://api.example.org:8484/status/q1w2e3"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("unknown tokens pass through", func(t *testing.T) {
		if got := Expand("{mystery}", item, req); got != "{mystery}" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("plain values untouched", func(t *testing.T) {
		if got := Expand("no tokens here", nil, req); got != "no tokens here" {
			t.Errorf("got %q", got)
		}
	})
}

func TestRenderAppJSON(t *testing.T) {
	out, err := renderAppJSON(Context{
		Type:    "record",
		Records: []record.Record{{"id": "abc", "href": "{fullhost}/abc"}},
		Request: testRequest(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc map[string][]map[string]string
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	items, ok := doc["record"]
	if !ok {
		t.Fatalf("document not keyed by type: %s", out)
	}
	if len(items) != 1 || items[0]["id"] != "abc" {
		t.Fatalf("unexpected items: %v", items)
	}
	if items[0]["href"] != "http://api.example.org:8484/abc" {
		t.Errorf("href not expanded: %q", items[0]["href"])
	}
}

func TestRenderTextCSV(t *testing.T) {
	t.Run("sorted union header with blanks for absent fields", func(t *testing.T) {
		out, err := renderTextCSV(Context{
			Type: "record",
			Records: []record.Record{
				{"id": "1", "email": "a@b.com"},
				{"id": "2", "givenName": "Alice"},
			},
			Request: testRequest(),
		})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus two rows, got %d lines", len(lines))
		}
		if lines[0] != "email,givenName,id" {
			t.Errorf("header = %q", lines[0])
		}
		if lines[1] != "a@b.com,,1" {
			t.Errorf("row 1 = %q", lines[1])
		}
		if lines[2] != ",Alice,2" {
			t.Errorf("row 2 = %q", lines[2])
		}
	})

	t.Run("no records means empty body", func(t *testing.T) {
		out, err := renderTextCSV(Context{Type: "record", Request: testRequest()})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if len(out) != 0 {
			t.Errorf("expected empty body, got %q", out)
		}
	})
}

func TestRenderFormsJSON(t *testing.T) {
	out, err := renderFormsJSON(Context{
		Type:    "record",
		Records: []record.Record{{"id": "abc", "email": "a@b.com"}},
		PageForms: []Form{
			{ID: "create", Href: "{fullhost}/", Method: "POST"},
		},
		ItemForms: []Form{
			{ID: "edit", Rel: "edit-form", Href: "{fullhost}/{id}", Method: "PUT"},
		},
		Metadata: []Metadata{{Name: "title", Value: "Records"}},
		Request:  testRequest(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc struct {
		Metadata []Metadata `json:"metadata"`
		Links    []Form     `json:"links"`
		Items    []struct {
			Rel   string        `json:"rel"`
			Href  string        `json:"href"`
			Data  record.Record `json:"data"`
			Forms []Form        `json:"forms"`
		} `json:"items"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(doc.Items))
	}
	item := doc.Items[0]
	if item.Href != "http://api.example.org:8484/abc" {
		t.Errorf("item href = %q", item.Href)
	}
	if len(item.Forms) != 1 || item.Forms[0].Href != "http://api.example.org:8484/abc" {
		t.Errorf("item form not expanded against the record: %+v", item.Forms)
	}
	if len(doc.Links) != 1 || doc.Links[0].Href != "http://api.example.org:8484/" {
		t.Errorf("page form not expanded: %+v", doc.Links)
	}
	if len(doc.Metadata) != 1 || doc.Metadata[0].Value != "Records" {
		t.Errorf("metadata missing: %+v", doc.Metadata)
	}
}
