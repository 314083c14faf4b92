package utils

import "log"

// Must aborts startup on an unrecoverable bootstrap error.
func Must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
