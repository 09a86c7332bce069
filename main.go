package main

import "github.com/varalys/luhnkit/cmd/luhnkit"

func main() { luhnkit.Execute() }
