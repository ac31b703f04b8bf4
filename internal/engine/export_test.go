package engine

import (
	"encoding/json"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	svc, st, _ := newTestService(t)
	svc.StartTrial()
	svc.AddStars(7)
	svc.MarkPlayedToday()
	svc.SaveTimeSettings(true, 45)
	svc.GameLaunch("snake")
	if err := svc.SetPIN("1234"); err != nil {
		t.Fatalf("SetPIN: %v", err)
	}
	st.Set("other_app_key", "keep me")

	data, err := svc.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// Restore into a fresh store.
	svc2, st2, _ := newTestService(t)
	n, err := svc2.ImportState(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n == 0 {
		t.Fatalf("import applied 0 keys")
	}

	if got := svc2.StarsTotal(); got != 7 {
		t.Fatalf("stars after roundtrip = %d, want 7", got)
	}
	if got := svc2.Streak(); got != 1 {
		t.Fatalf("streak after roundtrip = %d, want 1", got)
	}
	if got := svc2.LoadTimeSettings(); !got.Enabled || got.LimitMinutes != 45 {
		t.Fatalf("settings after roundtrip = %+v", got)
	}
	if !svc2.TrialStatus().HasStarted {
		t.Fatalf("trial not started after roundtrip")
	}
	if err := svc2.VerifyPIN("1234"); err != nil {
		t.Fatalf("PIN after roundtrip: %v", err)
	}
	if svc2.MetricsAll().Games["snake"].Launches != 1 {
		t.Fatalf("metrics lost in roundtrip")
	}

	// Foreign keys never cross the boundary.
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if _, ok := payload["other_app_key"]; ok {
		t.Fatalf("export leaked a foreign key")
	}
	if got := st2.Get("other_app_key", ""); got != "" {
		t.Fatalf("import wrote a foreign key: %q", got)
	}
}

func TestImportRejectsBadPayloads(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, bad := range []string{
		"not json",
		`[1,2,3]`,
		`"just a string"`,
		`{"unrelated":"x"}`,
		`{}`,
	} {
		if _, err := svc.ImportState([]byte(bad)); err == nil {
			t.Fatalf("payload %q accepted, want error", bad)
		}
	}
}

func TestImportNullRemovesKey(t *testing.T) {
	svc, st, _ := newTestService(t)
	svc.AddStars(5)

	if _, err := svc.ImportState([]byte(`{"pp_stars_total":null}`)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := st.Get(keyStarsTotal, "absent"); got != "absent" {
		t.Fatalf("null import left %q stored", got)
	}
}

func TestImportIgnoresForeignKeysButCountsApplied(t *testing.T) {
	svc, st, _ := newTestService(t)

	n, err := svc.ImportState([]byte(`{"pp_stars_total":12,"themeColor":"red"}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 1 {
		t.Fatalf("applied=%d, want only the namespaced key", n)
	}
	if got := svc.StarsTotal(); got != 12 {
		t.Fatalf("stars=%d, want 12", got)
	}
	if got := st.Get("themeColor", ""); got != "" {
		t.Fatalf("foreign key written: %q", got)
	}
}

func TestClearAllRemovesOnlyNamespace(t *testing.T) {
	svc, st, _ := newTestService(t)
	svc.StartTrial()
	svc.AddStars(3)
	st.Set("other_app_key", "keep me")

	removed := svc.ClearAll()
	if removed == 0 {
		t.Fatalf("ClearAll removed nothing")
	}
	if got := svc.StarsTotal(); got != 0 {
		t.Fatalf("stars=%d after ClearAll", got)
	}
	if svc.TrialStatus().HasStarted {
		t.Fatalf("trial survives ClearAll")
	}
	if got := st.Get("other_app_key", ""); got != "keep me" {
		t.Fatalf("ClearAll touched a foreign key: %q", got)
	}
}
