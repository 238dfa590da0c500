package views

import (
	"strings"
	"testing"
)

func TestRenderTaskPanelGroupsByNote(t *testing.T) {
	out := RenderTaskPanel(TaskPanelData{
		Items: []TaskItemData{
			{ID: 0, Text: "milk", NoteTitle: "Shopping"},
			{ID: 1, Text: "eggs", Completed: true, NoteTitle: "Shopping"},
			{ID: 2, Text: "call", NoteTitle: "Todo"},
		},
		Cursor:   2,
		Focused:  true,
		Open:     2,
		Complete: 1,
	})
	if !strings.Contains(out, "tasks: 2 open, 1 done") {
		t.Fatalf("missing counts: %q", out)
	}
	if strings.Count(out, "Shopping:") != 1 || !strings.Contains(out, "Todo:") {
		t.Fatalf("expected one heading per note: %q", out)
	}
	if !strings.Contains(out, "> [ ] call") {
		t.Fatalf("expected cursor on third task: %q", out)
	}
	if !strings.Contains(out, "[x]") {
		t.Fatalf("expected completed box: %q", out)
	}
}

func TestRenderTaskPanelEmpty(t *testing.T) {
	out := RenderTaskPanel(TaskPanelData{})
	if !strings.Contains(out, "no tasks") {
		t.Fatalf("expected empty hint: %q", out)
	}
}

func TestRenderTabsMarksActive(t *testing.T) {
	out := RenderTabs(TabsData{Tabs: []string{"Notes", "Tasks"}, Active: "tasks"})
	if !strings.Contains(out, "[Tasks]") || strings.Contains(out, "[Notes]") {
		t.Fatalf("unexpected tabs: %q", out)
	}
}

func TestRenderAppIncludesPanes(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "noted",
		LeftPane:   "left side",
		RightPane:  "right side",
		StatusLine: "status: ok",
		Footer:     "keys",
	})
	for _, want := range []string{"noted", "left side", "right side", "status: ok", "keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestSwatch(t *testing.T) {
	if Swatch("default") != "" || Swatch("") != "" {
		t.Fatal("default color should have no swatch")
	}
	if !strings.Contains(Swatch("red"), "●") {
		t.Fatal("expected swatch for red")
	}
}
