package platform

// Package platform contains OS integration glue: filesystem checks, opening
// folders in the system file manager, and locating the external downloader.
