// main.go - CLI entry point
package main

import "github.com/tilegen/tilegen/cmd"

func main() {
	cmd.Execute()
}
