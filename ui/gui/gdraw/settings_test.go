package gdraw

import (
	"testing"

	"clickchess/src/logx"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/gctx"
	"clickchess/ui/gui/ghelper"
)

func TestApplyBrowseResultCancelled(t *testing.T) {
	conf := &gconf.Config{AssetsDir: "assets", WindowW: 1000, WindowH: 700}
	ctx := &gctx.GUIGameContext{
		ConfigWorker: &gconf.GUIConfigWorker{Config: conf},
		Logx:         logx.NewNop(),
	}
	sd := &GUISettingsDrawer{
		buttons:      []*ghelper.Button{{Label: "Selecting..."}},
		btnBrowseIdx: 0,
		browseActive: true,
		msg:          &ghelper.MessageBox{},
	}

	sd.applyBrowseResult(ctx, "")

	if sd.browseActive {
		t.Fatal("browse should be inactive after the dialog returns")
	}
	if got := sd.buttons[0].Label; got != "assets" {
		t.Fatalf("browse label = %q, want the configured directory", got)
	}
	if conf.AssetsDir != "assets" {
		t.Fatalf("AssetsDir = %q, cancel must not change it", conf.AssetsDir)
	}
	if sd.msg.Open {
		t.Fatal("cancel must not raise the message box")
	}
}
