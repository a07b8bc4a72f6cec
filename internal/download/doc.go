package download

// Package download turns a submitted form into one synchronous run of the
// external downloader (yt-dlp). It validates the form, builds the argument
// list, runs the process and classifies the outcome.
