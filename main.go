package main

import "github.com/ytget/recipebook/cmd/recipebook"

func main() {
	recipebook.Execute()
}
