// cmd/seqmatch/main.go
package main

import (
	"seqmatch/internal/app"
	"seqmatch/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
