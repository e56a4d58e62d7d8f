package main

import (
	"os"

	"github.com/sevanssp/avm/internal/avm"
)

func main() {
	os.Exit(avm.Main())
}
