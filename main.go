package main

import "github.com/sehyunchoi/timecheck/cmd"

func main() {
	cmd.Execute()
}
