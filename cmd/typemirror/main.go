package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
	"github.com/viant/typemirror"
	"github.com/viant/typemirror/cmd"
)

func main() {
	if err := cmd.New(typemirror.Version, os.Args[1:]); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		log.Fatal(err)
	}
}
