package main

import "github.com/simivar/gremlin-converter/src/cmd"

func main() {
	cmd.Execute()
}
