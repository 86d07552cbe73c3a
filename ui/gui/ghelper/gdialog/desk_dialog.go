package gdialog

import (
	"github.com/sqweek/dialog"
)

// ChooseDirectory opens the native directory picker. The error is
// dialog.ErrCancelled when the user backs out.
func ChooseDirectory(title string) (string, error) {
	return dialog.Directory().Title(title).Browse()
}
