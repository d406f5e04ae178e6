package context7

// Version is the c7 release. Overridden at build time with -ldflags.
var Version = "0.1.0"
