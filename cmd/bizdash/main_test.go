package main

import (
	"testing"

	_ "github.com/bizdash/bizdash/testing"
)

func TestMainSkipsInTestMode(t *testing.T) {
	main()
}
