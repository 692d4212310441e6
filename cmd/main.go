package main

import "go_flashcard_study/internal/cli"

func main() {
	cli.Execute()
}
