// cmd/seqcheck/main.go
package main

import (
	"seqcheck/internal/app"
	"seqcheck/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
