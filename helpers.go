package pdu

/*
this file contains some utility functions
*/

import "fmt"

func checkPanic(to string, val int, max int) {
	if val < 0 {
		panic(fmt.Sprintf("Unable to convert %v to %v - negative", val, to))
	}
	if val > max {
		panic(fmt.Sprintf("Unable to convert %v to %v - exceeds max value %v", val, to, max))
	}
}

func bytePanic(val int) byte {
	checkPanic("byte", val, 255)
	return byte(val)
}

// storeCheckAddress validates that an address and length is covered by the available data
func storeCheckAddress(name string, address, count, limit int) error {
	if address+count <= limit {
		return nil
	}
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Errorf("%v: unable to access %v item%v from %v with limit of %v", name, count, plural, address, limit)
}
