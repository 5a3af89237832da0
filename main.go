// Package main is the entry point for the fourd CLI.
package main

import "github.com/e-marchand/fourd/cmd"

func main() {
	cmd.Execute()
}
