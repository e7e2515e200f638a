package util

import (
	"os"
	"strings"
)

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func HasArg(name string) bool {
	for _, a := range os.Args[1:] {
		if a == name {
			return true
		}
	}
	return false
}

// ArgValue finds --name=value or "--name value" on the command line.
func ArgValue(name string, fallback string) string {
	args := os.Args[1:]
	for i, a := range args {
		if strings.HasPrefix(a, name+"=") {
			return strings.TrimPrefix(a, name+"=")
		}
		if a == name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}

// Positional returns the command line arguments that are neither flags nor flag values.
func Positional() (out []string) {
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case valueFlags[a]:
			i++
		case strings.HasPrefix(a, "--"):
			// boolean flag or --name=value
		default:
			out = append(out, a)
		}
	}
	return out
}

// flags that may take their value as the following argument
var valueFlags = map[string]bool{
	"--config": true,
	"--out":    true,
}
