package main

import "github.com/jonandersen/folio/cmd"

func main() {
	cmd.Execute()
}
