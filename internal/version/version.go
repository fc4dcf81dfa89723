package version

// Version is the released tool version; bump alongside tags.
var Version = "0.2.0"
