package model

// Version is the current tserr release.
const Version = "0.2.0"
