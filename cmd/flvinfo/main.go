// Command flvinfo loads an FLV capture into memory and prints its header.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
