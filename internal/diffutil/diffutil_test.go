package diffutil

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const before = "Copy (EditorPlugin) = Ctrl-C\n" +
	"Find (SearchPlugin) = Meta-Shift-F\n" +
	"Paste (EditorPlugin) = Ctrl-V\n"

func TestChanges_Identical(t *testing.T) {
	if got := Changes(before, before); got != nil {
		t.Errorf("Changes = %v, want nil", got)
	}
}

func TestChanges_OneRebinding(t *testing.T) {
	after := strings.Replace(before, "Ctrl-C", "Ctrl-Shift-C", 1)

	changes := Changes(before, after)

	var removed, added []string
	for _, c := range changes {
		switch c.Op {
		case diffmatchpatch.DiffDelete:
			removed = append(removed, c.Line)
		case diffmatchpatch.DiffInsert:
			added = append(added, c.Line)
		}
	}
	if len(removed) != 1 || removed[0] != "Copy (EditorPlugin) = Ctrl-C" {
		t.Errorf("removed = %v", removed)
	}
	if len(added) != 1 || added[0] != "Copy (EditorPlugin) = Ctrl-Shift-C" {
		t.Errorf("added = %v", added)
	}
}

func TestReport_Empty(t *testing.T) {
	if got := Report(before, before); got != "" {
		t.Errorf("Report = %q, want empty", got)
	}
}

func TestReport_Format(t *testing.T) {
	after := strings.Replace(before, "Ctrl-C", "Ctrl-Shift-C", 1)

	got := Report(before, after)

	if !strings.HasPrefix(got, "1 binding(s) removed, 1 binding(s) added or changed\n") {
		t.Errorf("unexpected header:\n%s", got)
	}
	if !strings.Contains(got, "- Copy (EditorPlugin) = Ctrl-C\n") {
		t.Errorf("missing removed line:\n%s", got)
	}
	if !strings.Contains(got, "+ Copy (EditorPlugin) = Ctrl-Shift-C\n") {
		t.Errorf("missing added line:\n%s", got)
	}
}

func TestReport_AddedEntryOnly(t *testing.T) {
	after := before + "Detach (WindowPlugin) = F9\n"

	got := Report(before, after)

	if !strings.HasPrefix(got, "0 binding(s) removed, 1 binding(s) added or changed\n") {
		t.Errorf("unexpected header:\n%s", got)
	}
	if strings.Contains(got, "- ") {
		t.Errorf("unexpected removed line:\n%s", got)
	}
}
