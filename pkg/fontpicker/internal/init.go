// Package internal contains the SDL-facing infrastructure of the font picker.
// This includes SDL initialization, input processing, theming, font loading and
// rendering utilities. Types and functions in this package are not part of the
// public API.
package internal
