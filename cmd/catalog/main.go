// Command catalog is a command-line client for the catalog HTTP API.
package main

import "catalog/cmd/catalog/cmd"

func main() {
	cmd.Execute()
}
