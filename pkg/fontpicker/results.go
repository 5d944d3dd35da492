package fontpicker

import "github.com/BrandonKowalski/fontpicker/pkg/fontpicker/presenter"

// Result is the outcome of Present: the font selected when dismissal began,
// whether anything was selected, and what closed the picker.
type Result = presenter.Result

// Delegate receives selection changes and the final dismissal.
type Delegate = presenter.Delegate

// DismissReason identifies what closed the picker.
type DismissReason = presenter.DismissReason

const (
	DismissReasonDone       = presenter.DismissReasonDone       // Done button or Start
	DismissReasonOutsideTap = presenter.DismissReasonOutsideTap // Tap outside the toolbar and list
	DismissReasonBack       = presenter.DismissReasonBack       // B button
	DismissReasonPower      = presenter.DismissReasonPower      // Hardware power key
	DismissReasonQuit       = presenter.DismissReasonQuit       // Window closed
)
