package main

import "github.com/TheOutlierDev/UppbeatApi/internal/cli/cmd"

func main() {
	cmd.Execute()
}
