package main

import "github.com/danakotech/osintwalletonline/internal/cli"

func main() {
	cli.Execute()
}
