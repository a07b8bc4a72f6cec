package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It owns the download form, passes it to the controller on submit, and shows
// the outcome in a status line. All UI strings are localized via Localization.
