package main

import "github.com/adimStrong/Juan365-Socmed-Mainpage/internal/cmd"

func main() {
	cmd.Execute()
}
