package scunit

// Version is the version reported by the -v/--version option.
const Version = "0.2.1"
