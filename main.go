package main

import (
	"fmt"
	"os"

	"charm/source/hub"
	"charm/source/repl"
	"charm/source/text"
)

func main() {
	fmt.Print(text.Logo())
	h := hub.New(os.Stdin, os.Stdout)
	h.Open()
	defer h.Close()
	repl.Start(h)
}
