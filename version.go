package azalea

// Version is the interpreter release string reported by the CLI.
const Version = "1.0.0"
