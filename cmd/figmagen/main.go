package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "generate":
		err = runGenerate(args)
	case "validate":
		err = runValidate(args)
	case "tokens":
		err = runTokens(args)
	case "watch":
		err = runWatch(args)
	case "serve":
		err = runServe(args)
	case "version":
		fmt.Printf("figmagen %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: figmagen <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate   Generate components from the configured Figma nodes")
	fmt.Println("  validate   Validate a generated component file")
	fmt.Println("  tokens     Print the design tokens discovered in the project theme")
	fmt.Println("  watch      Regenerate when theme or config files change")
	fmt.Println("  serve      Start the MCP server")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
