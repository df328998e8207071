package cmd

import (
	"log"

	"github.com/fatih/color"
)

func init() {
	// Send log output to standard error without timestamps. Standard output is
	// reserved for rendered trees.
	log.SetFlags(0)
	log.SetOutput(color.Error)
}
