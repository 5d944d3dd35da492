// Package constants defines shared constants, types, and configuration values
// used throughout the fontpicker widget.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the widget.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	DebugEnvVar        = "FONTPICKER_DEBUG"
	FlipFaceButtonsVar = "FLIP_FACE_BUTTONS"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Touch and mouse input are handled separately as taps.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Layout metrics in unscaled points.
const (
	ToolbarHeight      int32   = 50
	HairlineHeight     int32   = 1
	RowHeight          int32   = 44
	RowInset           int32   = 16
	DoneButtonWidth    int32   = 96
	CheckmarkSize      int32   = 20
	PreviewFontSize    int     = 17
	UIFontSize         int     = 17
	PartialHeightRatio float64 = 0.35
	ScrimOpacity       float64 = 0.4
	TapSlop            int32   = 10
)

// Default timing constants.
const (
	DefaultInputDelay  = 20 * time.Millisecond  // Debounce delay between input events
	ScrimFadeDuration  = 300 * time.Millisecond // Scrim fade in and out
	TransitionDuration = 300 * time.Millisecond // Panel slide on present and dismiss
	FrameInterval      = 16 * time.Millisecond
)
