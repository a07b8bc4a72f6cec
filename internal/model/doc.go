package model

// Package model defines the data structures shared by the controller and the
// UI: the owned form state, the download request snapshot taken from it, and
// the outcome of a single downloader run.
